package transcode

import (
	"github.com/anirudhraja/mcwire/codec"
)

// Size is 0 for small fish and 1 for large fish.
func (p FishPattern) Size() int32 {
	return int32(p) & 0xFF
}

// Shape selects the body shape within a size.
func (p FishPattern) Shape() int32 {
	return int32(p) >> 8 & 0xFF
}

// TropicalFishVariant is the tropical fish Variant field: the pattern in
// the low 16 bits, the base colour in byte 2, the pattern colour in byte 3.
type TropicalFishVariant struct {
	Pattern      FishPattern
	BaseColor    DyeColor
	PatternColor DyeColor
}

// DecodeTropicalFish unpacks a tropical fish variant.
func (l *Layouts) DecodeTropicalFish(v int32) (TropicalFishVariant, error) {
	raw, err := l.TropicalFishVariant.Decode(v)
	if err != nil {
		return TropicalFishVariant{}, err
	}
	return TropicalFishVariant{
		Pattern:      FishPattern(raw[0]),
		BaseColor:    DyeColor(raw[1]),
		PatternColor: DyeColor(raw[2]),
	}, nil
}

// EncodeTropicalFish packs a tropical fish variant.
func (l *Layouts) EncodeTropicalFish(f TropicalFishVariant) (int32, error) {
	return l.TropicalFishVariant.Encode(int32(f.Pattern), int32(f.BaseColor), int32(f.PatternColor))
}

// MarshalCBOR encodes the packed integer. Documents always use
// DefaultLayouts, the built-in enums; a registry passed to
// mcwire.NewWithRegistry only affects the Layouts methods.
func (f TropicalFishVariant) MarshalCBOR() ([]byte, error) {
	v, err := DefaultLayouts().EncodeTropicalFish(f)
	if err != nil {
		return nil, err
	}
	return codec.Marshal(v)
}

// UnmarshalCBOR decodes the packed integer against DefaultLayouts.
func (f *TropicalFishVariant) UnmarshalCBOR(data []byte) error {
	var v int32
	if err := codec.Unmarshal(data, &v); err != nil {
		return err
	}
	decoded, err := DefaultLayouts().DecodeTropicalFish(v)
	if err != nil {
		return err
	}
	*f = decoded
	return nil
}
