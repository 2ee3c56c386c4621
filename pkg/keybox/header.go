package keybox

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bin "github.com/saylorsolutions/binmap"
)

const (
	// SaltSize is the length of the key-derivation salt embedded in every container.
	SaltSize = 8

	// headerSize covers the kind marker, parameter-set identifier, salt, and iteration count.
	headerSize = 1 + 1 + SaltSize + 4
)

// Salt is the key-derivation salt carried in clear in the container header.
// It does not need to be secret, only fresh per container.
type Salt [SaltSize]byte

// header is the clear, authenticated prefix of every container. It carries everything
// needed to re-derive the protection key except the password itself. All header bytes
// are bound into the authentication tag as associated data.
type header struct {
	kind   byte
	params byte
	salt   uint64
	iter   uint32
}

func newHeader(k Kind, l Level, salt Salt, iter uint32) *header {
	return &header{
		kind:   byte(k),
		params: l.paramsID(),
		salt:   binary.BigEndian.Uint64(salt[:]),
		iter:   iter,
	}
}

func (h *header) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Byte(&h.kind),
		bin.Byte(&h.params),
		bin.Int(&h.salt),
		bin.Int(&h.iter),
	)
}

func (h *header) encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := h.mapper().Write(&buf, binary.BigEndian); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// parseHeader reads the clear header from the front of a container. Length has already
// been validated by the caller, so a short read here is a genuine malformation.
func parseHeader(cont []byte) (*header, error) {
	h := new(header)
	if err := h.mapper().Read(bytes.NewReader(cont), binary.BigEndian); err != nil {
		return nil, fmt.Errorf("%w: truncated container header", ErrBadInput)
	}
	return h, nil
}

func (h *header) saltBytes() Salt {
	var s Salt
	binary.BigEndian.PutUint64(s[:], h.salt)
	return s
}
