package keybox

import "fmt"

// Level is a security level in bits. Exactly three values are valid; anything else is
// rejected with ErrBadInput by every function that takes a Level.
type Level int

const (
	Level128 Level = 128
	Level192 Level = 192
	Level256 Level = 256
)

// Kind selects one of the two container formats. The kind value doubles as the marker
// octet at the start of every container.
type Kind byte

const (
	// KindPrivateKey marks a container protecting a raw private key of 32, 48, or 64 octets.
	KindPrivateKey Kind = 0x4B
	// KindSecretShare marks a container protecting one indexed share of a threshold
	// secret-sharing scheme, 17, 25, or 33 octets.
	KindSecretShare Kind = 0x53
)

var levels = [3]Level{Level128, Level192, Level256}

func (l Level) valid() bool {
	return l == Level128 || l == Level192 || l == Level256
}

func (k Kind) String() string {
	switch k {
	case KindPrivateKey:
		return "private key"
	case KindSecretShare:
		return "secret share"
	default:
		return fmt.Sprintf("unknown kind 0x%02X", byte(k))
	}
}

// paramsID is the identifier of the standard long-term parameter set for the level,
// stored in the second header octet.
func (l Level) paramsID() byte {
	switch l {
	case Level128:
		return 0x01
	case Level192:
		return 0x02
	case Level256:
		return 0x03
	default:
		return 0
	}
}

func levelOfParamsID(id byte) (Level, error) {
	switch id {
	case 0x01:
		return Level128, nil
	case 0x02:
		return Level192, nil
	case 0x03:
		return Level256, nil
	default:
		return 0, fmt.Errorf("%w: unknown parameter set identifier 0x%02X", ErrBadInput, id)
	}
}

// PayloadSize returns the payload length in octets protected by a container of the
// given kind and level: level/4 for private keys, level/8+1 for secret shares.
func PayloadSize(k Kind, l Level) (int, error) {
	if !l.valid() {
		return 0, fmt.Errorf("%w: invalid security level %d", ErrBadInput, l)
	}
	switch k {
	case KindPrivateKey:
		return int(l) / 4, nil
	case KindSecretShare:
		return int(l)/8 + 1, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrBadInput, k)
	}
}

// ContainerSize returns the exact container length for a kind and level. For each kind
// it is strictly increasing in the level, so LevelOfSize can invert it.
func ContainerSize(k Kind, l Level) (int, error) {
	n, err := PayloadSize(k, l)
	if err != nil {
		return 0, err
	}
	return headerSize + sealedOverhead + n, nil
}

// LevelOfSize recovers the level from a container length. It is the exact inverse of
// ContainerSize: any length that is not one of the three valid sizes for the kind
// fails with ErrBadInput.
func LevelOfSize(k Kind, size int) (Level, error) {
	for _, l := range levels {
		n, err := ContainerSize(k, l)
		if err != nil {
			return 0, err
		}
		if n == size {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: no level yields a %s container of %d octets", ErrBadInput, k, size)
}
