package keybox

import (
	"crypto/rand"
	"fmt"
)

// NewSalt draws a fresh key-derivation salt from the OS entropy pool.
func NewSalt() (Salt, error) {
	var s Salt
	if _, err := rand.Read(s[:]); err != nil {
		return Salt{}, fmt.Errorf("failed to read salt bytes: %v", err)
	}
	return s, nil
}

// NewPrivateKey generates a raw private key of the right length for the level,
// ready to be protected with EncodePrivateKey.
func NewPrivateKey(l Level) ([]byte, error) {
	length, err := PayloadSize(KindPrivateKey, l)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, length)
	n, err := rand.Read(buf)
	if n < length {
		return nil, fmt.Errorf("failed to read requested bytes: %v", err)
	}
	return buf, nil
}
