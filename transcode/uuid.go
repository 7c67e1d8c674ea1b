package transcode

import (
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/anirudhraja/mcwire/codec"
)

// UUID is stored as four big-endian int32 words, most significant first.
type UUID struct {
	uuid.UUID
}

// UUIDFromInts joins four words into a UUID.
func UUIDFromInts(words [4]int32) UUID {
	var u uuid.UUID
	for i, w := range words {
		binary.BigEndian.PutUint32(u[i*4:], uint32(w))
	}
	return UUID{u}
}

// Ints splits u into four words.
func (u UUID) Ints() [4]int32 {
	var words [4]int32
	for i := range words {
		words[i] = int32(binary.BigEndian.Uint32(u.UUID[i*4:]))
	}
	return words
}

// MarshalCBOR writes the int array.
func (u UUID) MarshalCBOR() ([]byte, error) {
	return codec.Marshal(u.Ints())
}

// UnmarshalCBOR reads the int array.
func (u *UUID) UnmarshalCBOR(data []byte) error {
	var words [4]int32
	if err := decodeArray(data, "UUID", words[:]); err != nil {
		return err
	}
	*u = UUIDFromInts(words)
	return nil
}
