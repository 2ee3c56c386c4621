package keybox

import "fmt"

// EncodePrivateKey protects a raw private key under a password, returning a container
// of exactly ContainerSize(KindPrivateKey, level) octets, where level = 4 × len(privkey).
// The private key must be 32, 48, or 64 octets and iterations must be at least
// MinIterations. The key bytes are not retained beyond the call.
func EncodePrivateKey(privkey, password []byte, iterations uint32, salt Salt) ([]byte, error) {
	var level Level
	switch len(privkey) {
	case 32, 48, 64:
		level = Level(4 * len(privkey))
	default:
		return nil, fmt.Errorf("%w: private key must be 32, 48, or 64 octets, got %d", ErrBadInput, len(privkey))
	}
	return encode(KindPrivateKey, level, privkey, password, iterations, salt)
}

// DecodePrivateKey recovers the private key from a container produced by
// EncodePrivateKey. All protection parameters are read back from the container itself;
// only the password is external. Returns ErrBadInput for a length that matches no
// level, and ErrAuthFail when the password is wrong or the container was modified.
func DecodePrivateKey(container, password []byte) ([]byte, error) {
	return decode(KindPrivateKey, container, password)
}
