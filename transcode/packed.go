package transcode

import (
	"fmt"

	"github.com/anirudhraja/mcwire/wire"
)

// Domain is a closed set of raw values, such as a registry enum.
type Domain interface {
	EnumName() string
	Contains(n int32) bool
}

// Field is one bit range of a packed integer.
type Field struct {
	Name   string
	Domain Domain
	Shift  uint
	Width  uint
}

func (f Field) mask() uint32 {
	if f.Width >= 32 {
		return ^uint32(0)
	}
	return 1<<f.Width - 1
}

// Extract reads the field's bits from v and checks them against its domain.
func (f Field) Extract(v int32) (int32, error) {
	raw := int32(uint32(v) >> f.Shift & f.mask())
	if !f.Domain.Contains(raw) {
		return 0, wire.WithField(wire.EnumOrdinalError(f.Domain.EnumName(), int64(raw)), f.Name)
	}
	return raw, nil
}

// Packed is a set of non-overlapping fields sharing one 32-bit integer.
// Bits outside every field are ignored on decode and zero on encode.
type Packed struct {
	Name   string
	Fields []Field
}

// NewPacked checks that fields fit in 32 bits and do not overlap.
func NewPacked(name string, fields ...Field) (Packed, error) {
	var used uint32
	for _, f := range fields {
		if f.Width == 0 || f.Shift+f.Width > 32 {
			return Packed{}, fmt.Errorf("%s: field %s does not fit in 32 bits", name, f.Name)
		}
		if f.Domain == nil {
			return Packed{}, fmt.Errorf("%s: field %s has no domain", name, f.Name)
		}
		bits := f.mask() << f.Shift
		if used&bits != 0 {
			return Packed{}, fmt.Errorf("%s: field %s overlaps another field", name, f.Name)
		}
		used |= bits
	}
	return Packed{Name: name, Fields: fields}, nil
}

// BytePair packs low into bits 0-7 and high into bits 8-15.
func BytePair(name string, low, high Domain) Packed {
	p, err := NewPacked(name,
		Field{Name: low.EnumName(), Domain: low, Shift: 0, Width: 8},
		Field{Name: high.EnumName(), Domain: high, Shift: 8, Width: 8},
	)
	if err != nil {
		panic(err)
	}
	return p
}

// Decode splits v into one raw value per field, in field order. Each
// field is validated independently.
func (p Packed) Decode(v int32) ([]int32, error) {
	out := make([]int32, len(p.Fields))
	for i, f := range p.Fields {
		raw, err := f.Extract(v)
		if err != nil {
			return nil, wire.WithField(err, p.Name)
		}
		out[i] = raw
	}
	return out, nil
}

// Encode combines one raw value per field. Values must be in their
// field's domain and fit its width.
func (p Packed) Encode(values ...int32) (int32, error) {
	if len(values) != len(p.Fields) {
		return 0, fmt.Errorf("%s: expected %d values, got %d", p.Name, len(p.Fields), len(values))
	}

	var out uint32
	for i, f := range p.Fields {
		v := values[i]
		if !f.Domain.Contains(v) || uint32(v)&^f.mask() != 0 {
			err := wire.WithField(wire.EnumOrdinalError(f.Domain.EnumName(), int64(v)), f.Name)
			return 0, wire.WithField(err, p.Name)
		}
		out |= uint32(v) << f.Shift
	}
	return int32(out), nil
}
