package transcode

import (
	"fmt"

	"github.com/anirudhraja/mcwire/codec"
	"github.com/anirudhraja/mcwire/wire"
)

// decodeArray decodes an array of exactly len(dst) elements into dst.
// Decoding straight into a Go array would zero-fill short input and drop
// extra elements.
func decodeArray[T any](data []byte, typ string, dst []T) error {
	var vals []T
	if err := codec.Unmarshal(data, &vals); err != nil {
		return err
	}
	if len(vals) != len(dst) {
		return wire.InvalidDataError(typ, fmt.Sprintf("expected %d elements, got %d", len(dst), len(vals)))
	}
	copy(dst, vals)
	return nil
}

func decodeFloats3(data []byte, typ string) ([3]float32, error) {
	var v [3]float32
	err := decodeArray(data, typ, v[:])
	return v, err
}

func decodeFloats4(data []byte, typ string) ([4]float32, error) {
	var v [4]float32
	err := decodeArray(data, typ, v[:])
	return v, err
}

func decodeFloats16(data []byte, typ string) ([16]float32, error) {
	var v [16]float32
	err := decodeArray(data, typ, v[:])
	return v, err
}

// missingField reports a required document key that was absent.
func missingField(typ, key string) error {
	return wire.WithField(wire.InvalidDataError(typ, "missing required field"), key)
}
