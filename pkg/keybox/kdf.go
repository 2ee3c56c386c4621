package keybox

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// MinIterations is the brute-force floor for the password KDF. Encoding rejects lower
	// counts, and decoding rejects containers whose embedded count is lower, so a
	// tampered header cannot downgrade the work factor.
	MinIterations = 10000

	// protectionKeySize matches the AES-256 key consumed by the seal engine.
	protectionKeySize = 32
)

// deriveKey computes the protection key for a password with PBKDF2-HMAC-SHA-256.
// Same password, salt, and iteration count always yield the same key. The caller
// owns the returned key and must Wipe it.
func deriveKey(password []byte, salt Salt, iter uint32) ([]byte, error) {
	if iter < MinIterations {
		return nil, fmt.Errorf("%w: iteration count %d below the minimum of %d", ErrBadInput, iter, MinIterations)
	}
	return pbkdf2.Key(password, salt[:], int(iter), protectionKeySize, sha256.New), nil
}
