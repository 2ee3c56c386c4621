package keybox

import "fmt"

// Share index bounds for the threshold secret-sharing scheme. The index is carried as
// the first payload octet; reconstruction of the shared secret is external to keybox.
const (
	MinShareIndex = 1
	MaxShareIndex = 16
)

// EncodeSecretShare protects one secret share under a password, returning a container
// of exactly ContainerSize(KindSecretShare, level) octets, where
// level = 8 × (len(share) − 1). The share must be 17, 25, or 33 octets, its first octet
// is the share index and must lie in [MinShareIndex, MaxShareIndex], and iterations
// must be at least MinIterations.
func EncodeSecretShare(share, password []byte, iterations uint32, salt Salt) ([]byte, error) {
	var level Level
	switch len(share) {
	case 17, 25, 33:
		level = Level(8 * (len(share) - 1))
	default:
		return nil, fmt.Errorf("%w: secret share must be 17, 25, or 33 octets, got %d", ErrBadInput, len(share))
	}
	if share[0] < MinShareIndex || share[0] > MaxShareIndex {
		return nil, fmt.Errorf("%w: share index %d outside [%d,%d]", ErrBadInput, share[0], MinShareIndex, MaxShareIndex)
	}
	return encode(KindSecretShare, level, share, password, iterations, salt)
}

// DecodeSecretShare recovers the share, index octet included, from a container produced
// by EncodeSecretShare. A verified tag already guarantees the share came from a valid
// encode, but the index is re-checked as a sanity bound; a violation wipes the share
// before returning.
func DecodeSecretShare(container, password []byte) ([]byte, error) {
	share, err := decode(KindSecretShare, container, password)
	if err != nil {
		return nil, err
	}
	if share[0] < MinShareIndex || share[0] > MaxShareIndex {
		Wipe(share)
		return nil, fmt.Errorf("%w: recovered share index outside [%d,%d]", ErrBadInput, MinShareIndex, MaxShareIndex)
	}
	return share, nil
}
