package keybox

import "fmt"

// encode assembles a container: clear header, then the payload sealed under the
// password-derived key with the header as associated data. The payload length has
// already been validated against the kind and level by the caller.
func encode(k Kind, l Level, payload, password []byte, iterations uint32, salt Salt) ([]byte, error) {
	if iterations < MinIterations {
		return nil, fmt.Errorf("%w: iteration count %d below the minimum of %d", ErrBadInput, iterations, MinIterations)
	}
	hdr, err := newHeader(k, l, salt, iterations).encode()
	if err != nil {
		return nil, err
	}
	key, err := deriveKey(password, salt, iterations)
	if err != nil {
		return nil, err
	}
	defer Wipe(key)
	sealed, err := seal(key, hdr, payload)
	if err != nil {
		return nil, err
	}
	return append(hdr, sealed...), nil
}

// decode recovers the payload from a container. The level comes from the container
// length alone; every structural check happens before the key derivation so that
// ErrBadInput never costs KDF time. Header tampering, including the kind marker and
// parameter-set identifier, surfaces as ErrAuthFail through the associated data.
func decode(k Kind, container, password []byte) ([]byte, error) {
	if _, err := LevelOfSize(k, len(container)); err != nil {
		return nil, err
	}
	h, err := parseHeader(container)
	if err != nil {
		return nil, err
	}
	// Downgrade resistance: the embedded count is held to the same floor as encoding.
	if h.iter < MinIterations {
		return nil, fmt.Errorf("%w: embedded iteration count %d below the minimum of %d", ErrBadInput, h.iter, MinIterations)
	}
	key, err := deriveKey(password, h.saltBytes(), h.iter)
	if err != nil {
		return nil, err
	}
	defer Wipe(key)
	return unseal(key, container[:headerSize], container[headerSize:])
}
