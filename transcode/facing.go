package transcode

import (
	"math"

	"github.com/anirudhraja/mcwire/codec"
)

// Facing is an entity's look direction in degrees.
type Facing struct {
	Yaw   float32
	Pitch float32
}

// FacingFromArray reads [yaw, pitch]. Yaw is wrapped into (-180, 180]
// and pitch is clamped to [-90, 90].
func FacingFromArray(v [2]float32) Facing {
	yaw := float32(math.Mod(float64(v[0]), 360))
	if yaw < 0 {
		yaw += 360
	}
	if yaw > 180 {
		yaw -= 360
	}

	pitch := v[1]
	if pitch < -90 {
		pitch = -90
	} else if pitch > 90 {
		pitch = 90
	}
	return Facing{Yaw: yaw, Pitch: pitch}
}

// Array returns [yaw, pitch].
func (f Facing) Array() [2]float32 {
	return [2]float32{f.Yaw, f.Pitch}
}

// MarshalCBOR writes [yaw, pitch].
func (f Facing) MarshalCBOR() ([]byte, error) {
	return codec.Marshal(f.Array())
}

// UnmarshalCBOR reads [yaw, pitch].
func (f *Facing) UnmarshalCBOR(data []byte) error {
	var v [2]float32
	if err := decodeArray(data, "Facing", v[:]); err != nil {
		return err
	}
	*f = FacingFromArray(v)
	return nil
}
