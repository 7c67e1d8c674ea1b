package transcode

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/anirudhraja/mcwire/codec"
	"github.com/anirudhraja/mcwire/oneof"
	"github.com/anirudhraja/mcwire/wire"
)

// Rotation is a quaternion stored as [x, y, z, w].
type Rotation [4]float32

// IdentityRotation is the quaternion (0, 0, 0, 1).
var IdentityRotation = Rotation{0, 0, 0, 1}

// AngleAxis is a rotation of Angle radians about Axis. Axis is expected
// to be unit length; it is not normalised.
type AngleAxis struct {
	Angle float32    `cbor:"angle" json:"angle"`
	Axis  [3]float32 `cbor:"axis" json:"axis"`
}

// Quaternion returns (axis * sin(angle/2), cos(angle/2)).
func (a AngleAxis) Quaternion() Rotation {
	half := float64(a.Angle) / 2
	s := float32(math.Sin(half))
	return Rotation{a.Axis[0] * s, a.Axis[1] * s, a.Axis[2] * s, float32(math.Cos(half))}
}

// RotationFromQuat converts an mgl32 quaternion.
func RotationFromQuat(q mgl32.Quat) Rotation {
	return Rotation{q.V[0], q.V[1], q.V[2], q.W}
}

// Quat returns r as an mgl32 quaternion.
func (r Rotation) Quat() mgl32.Quat {
	return mgl32.Quat{W: r[3], V: mgl32.Vec3{r[0], r[1], r[2]}}
}

// RotationFrom collapses either document shape to a quaternion.
func RotationFrom(v oneof.OneOf[[4]float32, AngleAxis]) Rotation {
	return oneof.Match(v,
		func(q [4]float32) Rotation { return Rotation(q) },
		AngleAxis.Quaternion)
}

// MarshalCBOR writes [x, y, z, w].
func (r Rotation) MarshalCBOR() ([]byte, error) {
	return codec.Marshal([4]float32(r))
}

// UnmarshalCBOR accepts [x, y, z, w] or {angle, axis}.
func (r *Rotation) UnmarshalCBOR(data []byte) error {
	v, err := oneof.Resolve(oneof.TypeName[[4]float32, AngleAxis](),
		func() ([4]float32, error) { return decodeFloats4(data, "Rotation") },
		func() (AngleAxis, error) {
			var a AngleAxis
			err := a.UnmarshalCBOR(data)
			return a, err
		})
	if err != nil {
		return err
	}
	*r = RotationFrom(v)
	return nil
}

type angleAxisDocument struct {
	Angle *float32         `cbor:"angle"`
	Axis  codec.RawMessage `cbor:"axis"`
}

// UnmarshalCBOR requires both keys and exactly three axis components.
func (a *AngleAxis) UnmarshalCBOR(data []byte) error {
	var doc angleAxisDocument
	if err := codec.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.Angle == nil {
		return missingField("AngleAxis", "angle")
	}
	if len(doc.Axis) == 0 {
		return missingField("AngleAxis", "axis")
	}
	axis, err := decodeFloats3(doc.Axis, "AngleAxis")
	if err != nil {
		return wire.WithField(err, "axis")
	}
	*a = AngleAxis{Angle: *doc.Angle, Axis: axis}
	return nil
}
