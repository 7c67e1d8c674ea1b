package transcode

import (
	"github.com/anirudhraja/mcwire/codec"
)

// HorseColors is the horse Variant field: color | markings << 8.
type HorseColors struct {
	Color    HorseColor
	Markings HorseMarkings
}

// DecodeHorseColors unpacks a horse variant.
func (l *Layouts) DecodeHorseColors(v int32) (HorseColors, error) {
	raw, err := l.HorseVariant.Decode(v)
	if err != nil {
		return HorseColors{}, err
	}
	return HorseColors{Color: HorseColor(raw[0]), Markings: HorseMarkings(raw[1])}, nil
}

// EncodeHorseColors packs a horse variant.
func (l *Layouts) EncodeHorseColors(h HorseColors) (int32, error) {
	return l.HorseVariant.Encode(int32(h.Color), int32(h.Markings))
}

// MarshalCBOR encodes the packed integer. Documents always use
// DefaultLayouts, the built-in enums; a registry passed to
// mcwire.NewWithRegistry only affects the Layouts methods.
func (h HorseColors) MarshalCBOR() ([]byte, error) {
	v, err := DefaultLayouts().EncodeHorseColors(h)
	if err != nil {
		return nil, err
	}
	return codec.Marshal(v)
}

// UnmarshalCBOR decodes the packed integer against DefaultLayouts.
func (h *HorseColors) UnmarshalCBOR(data []byte) error {
	var v int32
	if err := codec.Unmarshal(data, &v); err != nil {
		return err
	}
	decoded, err := DefaultLayouts().DecodeHorseColors(v)
	if err != nil {
		return err
	}
	*h = decoded
	return nil
}
