package keybox

import "fmt"

// SealShares protects each dealt share of a threshold secret under its custodian's own
// password. Shares and passwords correspond by position, every container gets a fresh
// salt, and all containers use the same iteration count. Share indexes must be unique
// within the set. Recombining the shares into the secret is external to keybox;
// each returned container opens independently with DecodeSecretShare.
func SealShares(shares, passwords [][]byte, iterations uint32) ([][]byte, error) {
	if len(shares) == 0 {
		return nil, fmt.Errorf("%w: no shares to seal", ErrBadInput)
	}
	if len(shares) != len(passwords) {
		return nil, fmt.Errorf("%w: %d shares but %d passwords", ErrBadInput, len(shares), len(passwords))
	}
	var (
		containers = make([][]byte, len(shares))
		seen       [MaxShareIndex + 1]bool
	)
	for i, share := range shares {
		salt, err := NewSalt()
		if err != nil {
			return nil, err
		}
		cont, err := EncodeSecretShare(share, passwords[i], iterations, salt)
		if err != nil {
			return nil, fmt.Errorf("share %d: %w", i, err)
		}
		// Index validity is established by EncodeSecretShare above.
		idx := share[0]
		if seen[idx] {
			return nil, fmt.Errorf("%w: duplicate share index %d", ErrBadInput, idx)
		}
		seen[idx] = true
		containers[i] = cont
	}
	return containers, nil
}
