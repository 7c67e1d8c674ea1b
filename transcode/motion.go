package transcode

import (
	"go.uber.org/zap"

	"github.com/anirudhraja/mcwire/codec"
	"github.com/anirudhraja/mcwire/wire"
)

// MaxMotion bounds each velocity component in blocks per tick.
const MaxMotion = 10.0

// Motion is an entity velocity.
type Motion struct {
	X, Y, Z float64
}

// MotionFromArray reads [x, y, z]. If any component is outside
// [-MaxMotion, MaxMotion] the whole vector is zero.
func MotionFromArray(v [3]float64) Motion {
	for _, c := range v {
		if !(c >= -MaxMotion && c <= MaxMotion) {
			wire.Logger().Debug("motion out of range, zeroed", zap.Float64s("motion", v[:]))
			return Motion{}
		}
	}
	return Motion{X: v[0], Y: v[1], Z: v[2]}
}

// Array returns [x, y, z].
func (m Motion) Array() [3]float64 {
	return [3]float64{m.X, m.Y, m.Z}
}

// MarshalCBOR writes [x, y, z].
func (m Motion) MarshalCBOR() ([]byte, error) {
	return codec.Marshal(m.Array())
}

// UnmarshalCBOR reads [x, y, z].
func (m *Motion) UnmarshalCBOR(data []byte) error {
	var v [3]float64
	if err := decodeArray(data, "Motion", v[:]); err != nil {
		return err
	}
	*m = MotionFromArray(v)
	return nil
}
