package oneof

import (
	"encoding/json"

	"github.com/anirudhraja/mcwire/codec"
)

// MarshalCBOR encodes the held arm.
func (o OneOf[L, R]) MarshalCBOR() ([]byte, error) {
	if o.isRight {
		return codec.Marshal(o.right)
	}
	return codec.Marshal(o.left)
}

// UnmarshalCBOR decodes data as L, falling back to R.
func (o *OneOf[L, R]) UnmarshalCBOR(data []byte) error {
	v, err := Resolve(TypeName[L, R](),
		func() (L, error) {
			var l L
			err := codec.Unmarshal(data, &l)
			return l, err
		},
		func() (R, error) {
			var r R
			err := codec.Unmarshal(data, &r)
			return r, err
		})
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// MarshalJSON encodes the held arm.
func (o OneOf[L, R]) MarshalJSON() ([]byte, error) {
	if o.isRight {
		return json.Marshal(o.right)
	}
	return json.Marshal(o.left)
}

// UnmarshalJSON decodes data as L, falling back to R.
func (o *OneOf[L, R]) UnmarshalJSON(data []byte) error {
	v, err := Resolve(TypeName[L, R](),
		func() (L, error) {
			var l L
			err := json.Unmarshal(data, &l)
			return l, err
		},
		func() (R, error) {
			var r R
			err := json.Unmarshal(data, &r)
			return r, err
		})
	if err != nil {
		return err
	}
	*o = v
	return nil
}
