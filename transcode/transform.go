package transcode

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/anirudhraja/mcwire/codec"
	"github.com/anirudhraja/mcwire/oneof"
	"github.com/anirudhraja/mcwire/wire"
)

// Transformation is a display entity transform.
type Transformation struct {
	RightRotation Rotation   `cbor:"right_rotation"`
	Scale         [3]float32 `cbor:"scale"`
	LeftRotation  Rotation   `cbor:"left_rotation"`
	Translation   [3]float32 `cbor:"translation"`
}

// IdentityTransformation leaves a display unchanged.
var IdentityTransformation = Transformation{
	RightRotation: IdentityRotation,
	Scale:         [3]float32{1, 1, 1},
	LeftRotation:  IdentityRotation,
	Translation:   [3]float32{0, 0, 0},
}

// transformationFields has Transformation's layout without its methods.
type transformationFields Transformation

// TransformationFromMatrix decomposes a column-major 4x4 matrix into
// scale, rotation and translation. A matrix with m[15] other than 0 or 1
// is divided by m[15] first. The rotation becomes RightRotation;
// LeftRotation is the identity. Shear is not recovered.
func TransformationFromMatrix(m [16]float32) (Transformation, error) {
	mat := mgl32.Mat4(m)
	if w := mat[15]; w != 0 && w != 1 {
		mat = mat.Mul(1 / w)
	}

	det := mat.Det()
	if det == 0 || math.IsNaN(float64(det)) || math.IsInf(float64(det), 0) {
		return Transformation{}, &wire.Error{
			Kind:   wire.KindInvalidData,
			Type:   "Transformation",
			Value:  m,
			Detail: fmt.Sprintf("matrix is not decomposable (determinant %v)", det),
		}
	}

	sign := float32(1)
	if det < 0 {
		sign = -1
	}
	scale := mgl32.Vec3{
		mat.Col(0).Len() * sign,
		mat.Col(1).Len(),
		mat.Col(2).Len(),
	}
	for i, s := range scale {
		if s == 0 {
			return Transformation{}, wire.InvalidDataError("Transformation", fmt.Sprintf("zero scale on axis %d", i))
		}
	}

	rot := mgl32.Mat4FromCols(
		mat.Col(0).Mul(1/scale[0]),
		mat.Col(1).Mul(1/scale[1]),
		mat.Col(2).Mul(1/scale[2]),
		mgl32.Vec4{0, 0, 0, 1},
	)
	q := mgl32.Mat4ToQuat(rot).Normalize()

	return Transformation{
		RightRotation: RotationFromQuat(q),
		Scale:         [3]float32(scale),
		LeftRotation:  IdentityRotation,
		Translation:   [3]float32{mat[12], mat[13], mat[14]},
	}, nil
}

// transformationFrom collapses either document shape to a Transformation.
func transformationFrom(v oneof.OneOf[[16]float32, Transformation]) (Transformation, error) {
	if m, ok := v.LeftValue(); ok {
		return TransformationFromMatrix(m)
	}
	t, _ := v.RightValue()
	return t, nil
}

// MarshalCBOR always writes the structured form.
func (t Transformation) MarshalCBOR() ([]byte, error) {
	return codec.Marshal(transformationFields(t))
}

// UnmarshalCBOR accepts a 16-float matrix or the structured form.
func (t *Transformation) UnmarshalCBOR(data []byte) error {
	v, err := oneof.Resolve(oneof.TypeName[[16]float32, Transformation](),
		func() ([16]float32, error) { return decodeFloats16(data, "Transformation") },
		func() (Transformation, error) { return decodeTransformationFields(data) })
	if err != nil {
		return err
	}
	decoded, err := transformationFrom(v)
	if err != nil {
		return err
	}
	*t = decoded
	return nil
}

// transformationDocument is the structured form with presence tracked.
type transformationDocument struct {
	RightRotation *Rotation        `cbor:"right_rotation"`
	Scale         codec.RawMessage `cbor:"scale"`
	LeftRotation  *Rotation        `cbor:"left_rotation"`
	Translation   codec.RawMessage `cbor:"translation"`
}

// decodeTransformationFields reads the structured form. right_rotation,
// scale and translation are required; left_rotation defaults to the identity.
func decodeTransformationFields(data []byte) (Transformation, error) {
	var doc transformationDocument
	if err := codec.Unmarshal(data, &doc); err != nil {
		return Transformation{}, err
	}

	t := Transformation{LeftRotation: IdentityRotation}
	if doc.RightRotation == nil {
		return Transformation{}, missingField("Transformation", "right_rotation")
	}
	t.RightRotation = *doc.RightRotation
	if doc.LeftRotation != nil {
		t.LeftRotation = *doc.LeftRotation
	}

	var err error
	if len(doc.Scale) == 0 {
		return Transformation{}, missingField("Transformation", "scale")
	}
	if t.Scale, err = decodeFloats3(doc.Scale, "Transformation"); err != nil {
		return Transformation{}, wire.WithField(err, "scale")
	}
	if len(doc.Translation) == 0 {
		return Transformation{}, missingField("Transformation", "translation")
	}
	if t.Translation, err = decodeFloats3(doc.Translation, "Transformation"); err != nil {
		return Transformation{}, wire.WithField(err, "translation")
	}
	return t, nil
}
