package keybox

import (
	"runtime"

	"github.com/tink-crypto/tink-go/v2/aead/subtle"
)

const (
	nonceSize = 12
	tagSize   = 16

	// sealedOverhead is the fixed growth of a sealed payload: nonce ‖ ciphertext ‖ tag.
	sealedOverhead = nonceSize + tagSize
)

// seal protects plaintext under key with AES-256-GCM, binding the container header as
// associated data. The result is nonce ‖ ciphertext ‖ tag.
func seal(key, header, plaintext []byte) ([]byte, error) {
	gcm, err := subtle.NewAESGCM(key)
	if err != nil {
		return nil, err
	}
	return gcm.Encrypt(plaintext, header)
}

// unseal reverses seal. Every failure mode — wrong key, modified sealed bytes, modified
// header — collapses into ErrAuthFail with no further detail, so callers cannot be used
// as a padding or password oracle.
func unseal(key, header, sealed []byte) ([]byte, error) {
	gcm, err := subtle.NewAESGCM(key)
	if err != nil {
		return nil, err
	}
	plaintext, err := gcm.Decrypt(sealed, header)
	if err != nil {
		return nil, ErrAuthFail
	}
	return plaintext, nil
}

// Wipe overwrites b with zeros. Derived keys and rejected plaintexts pass through here
// on every exit path; callers should do the same with passwords and recovered payloads
// once they are done with them.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
