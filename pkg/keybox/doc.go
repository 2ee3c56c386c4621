/*
Package keybox implements password-based protection containers for two kinds of sensitive payloads:
a raw private signing/agreement key, and one share of a threshold secret-sharing scheme.

# How it works:

A container is a fixed-length byte string whose length depends only on the container kind and the
security level (128, 192, or 256 bits). It starts with a clear header carrying a kind marker, a
parameter-set identifier for the level, an 8-octet salt, and the PBKDF2 iteration count. The
protection key is derived from the password with PBKDF2, and the payload is sealed with
AES-256-GCM using the header as associated data, so the header cannot be modified without failing
authentication.

Because the header is self-describing, decoding needs only the container bytes and the password.
The level is recovered from the container length alone, before any cryptographic work is done.

# General guidelines:
  - Use at least MinIterations (10000) PBKDF2 iterations; lower counts are rejected on both encode
    and decode. Raise the count well above the floor when the container protects long-lived keys.
  - A wrong password and a tampered container are indistinguishable on purpose: both surface as
    ErrAuthFail. Treat ErrBadInput as a usage error instead, never as a retry signal.
  - Salts do not need to be secret, only fresh. Use NewSalt unless an external protocol fixes the
    salt for you.
  - Derived keys and rejected plaintexts are wiped before any call returns. Callers own the wiping
    of their passwords and of successfully recovered payloads; Wipe is exported for that.
*/
package keybox
