package transcode

import (
	"github.com/anirudhraja/mcwire/codec"
	"github.com/anirudhraja/mcwire/oneof"
)

// ARGB is a colour with channels normalised to [0, 1].
type ARGB struct {
	A, R, G, B float32
}

// ARGBFromPacked splits a packed 0xAARRGGBB colour.
func ARGBFromPacked(v uint32) ARGB {
	return ARGB{
		A: float32(uint8(v>>24)) / 255,
		R: float32(uint8(v>>16)) / 255,
		G: float32(uint8(v>>8)) / 255,
		B: float32(uint8(v)) / 255,
	}
}

// ARGBFromFloats takes [a, r, g, b] positionally.
func ARGBFromFloats(f [4]float32) ARGB {
	return ARGB{A: f[0], R: f[1], G: f[2], B: f[3]}
}

// Floats returns [a, r, g, b].
func (c ARGB) Floats() [4]float32 {
	return [4]float32{c.A, c.R, c.G, c.B}
}

// ARGBFrom collapses either document shape to an ARGB.
func ARGBFrom(v oneof.OneOf[uint32, [4]float32]) ARGB {
	return oneof.Match(v, ARGBFromPacked, ARGBFromFloats)
}

// MarshalCBOR always writes the float array.
func (c ARGB) MarshalCBOR() ([]byte, error) {
	return codec.Marshal(c.Floats())
}

// UnmarshalCBOR accepts a packed integer or a float array.
func (c *ARGB) UnmarshalCBOR(data []byte) error {
	v, err := oneof.Resolve(oneof.TypeName[uint32, [4]float32](),
		func() (uint32, error) {
			var packed uint32
			err := codec.Unmarshal(data, &packed)
			return packed, err
		},
		func() ([4]float32, error) { return decodeFloats4(data, "ARGB") })
	if err != nil {
		return err
	}
	*c = ARGBFrom(v)
	return nil
}
