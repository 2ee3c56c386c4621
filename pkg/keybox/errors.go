package keybox

import "errors"

var (
	// ErrBadInput reports a precondition violation detected before any cryptographic work:
	// a wrong payload or container size, an iteration count below MinIterations, or a share
	// index outside [MinShareIndex, MaxShareIndex].
	ErrBadInput = errors.New("keybox: bad input")

	// ErrAuthFail reports that the container's authentication tag did not verify.
	// A wrong password and a tampered container are indistinguishable on purpose.
	ErrAuthFail = errors.New("keybox: authentication failed")
)
