package transcode

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/anirudhraja/mcwire/codec"
	"github.com/anirudhraja/mcwire/registry"
	"github.com/anirudhraja/mcwire/wire"
)

func TestHorseColors_RoundTrip(t *testing.T) {
	l := DefaultLayouts()
	for c := HorseWhite; c <= HorseDarkBrown; c++ {
		for m := MarkingsNone; m <= MarkingsBlackDots; m++ {
			h := HorseColors{Color: c, Markings: m}
			v, err := l.EncodeHorseColors(h)
			if err != nil {
				t.Fatalf("EncodeHorseColors(%+v): %v", h, err)
			}
			if want := int32(c) | int32(m)<<8; v != want {
				t.Errorf("EncodeHorseColors(%+v) = %#x, want %#x", h, v, want)
			}
			back, err := l.DecodeHorseColors(v)
			if err != nil || back != h {
				t.Errorf("DecodeHorseColors(%#x) = %+v, %v", v, back, err)
			}
		}
	}
}

func TestHorseColors_Decode(t *testing.T) {
	tests := []struct {
		name     string
		value    int32
		want     HorseColors
		wantEnum string
		wantRaw  int64
	}{
		{"chestnut white dots", 0x0302, HorseColors{HorseChestnut, MarkingsWhiteDots}, "", 0},
		{"upper bits ignored", 0x7F000104, HorseColors{HorseBlack, MarkingsWhite}, "", 0},
		{"bad color", 0x0007, HorseColors{}, "HorseColor", 7},
		{"bad markings", 0x0500, HorseColors{}, "HorseMarkings", 5},
		{"both bad reports color", 0x09FF, HorseColors{}, "HorseColor", 255},
		{"negative", -1, HorseColors{}, "HorseColor", 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DefaultLayouts().DecodeHorseColors(tt.value)
			if tt.wantEnum == "" {
				if err != nil || got != tt.want {
					t.Fatalf("DecodeHorseColors(%#x) = %+v, %v", tt.value, got, err)
				}
				return
			}
			var we *wire.Error
			if !errors.As(err, &we) || we.Kind != wire.KindInvalidEnumOrdinal {
				t.Fatalf("expected invalid enum ordinal, got %v", err)
			}
			if we.Type != tt.wantEnum || we.Value != tt.wantRaw {
				t.Errorf("got enum %s value %v, want %s %d", we.Type, we.Value, tt.wantEnum, tt.wantRaw)
			}
			if !strings.Contains(err.Error(), "HorseVariant") {
				t.Errorf("error should name the packed field, got %v", err)
			}
		})
	}
}

func TestHorseColors_EncodeRejects(t *testing.T) {
	_, err := DefaultLayouts().EncodeHorseColors(HorseColors{Color: 7})
	if !errors.Is(err, wire.ErrInvalidEnumOrdinal) {
		t.Errorf("expected invalid enum, got %v", err)
	}
	if _, err := codec.Marshal(HorseColors{Markings: 12}); !errors.Is(err, wire.ErrInvalidEnumOrdinal) {
		t.Errorf("Marshal should reject, got %v", err)
	}
}

func TestHorseColors_Document(t *testing.T) {
	type horse struct {
		Variant HorseColors `cbor:"Variant"`
		Tame    bool        `cbor:"Tame"`
	}
	in := horse{Variant: HorseColors{HorseGray, MarkingsWhiteField}, Tame: true}
	data, err := codec.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var raw map[string]any
	if err := codec.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if raw["Variant"] != uint64(0x0205) {
		t.Errorf("Variant encoded as %#v, want packed 0x205", raw["Variant"])
	}

	var out horse
	if err := codec.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v", out)
	}
}

func TestTropicalFish_RoundTrip(t *testing.T) {
	patterns := []FishPattern{
		PatternKob, PatternFlopper, PatternSunstreak, PatternStripey,
		PatternSnooper, PatternGlitter, PatternDasher, PatternBlockfish,
		PatternBrinely, PatternBetty, PatternSpotty, PatternClayfish,
	}
	l := DefaultLayouts()
	for _, p := range patterns {
		f := TropicalFishVariant{Pattern: p, BaseColor: DyeLime, PatternColor: DyeBlack}
		v, err := l.EncodeTropicalFish(f)
		if err != nil {
			t.Fatalf("EncodeTropicalFish(%+v): %v", f, err)
		}
		back, err := l.DecodeTropicalFish(v)
		if err != nil || back != f {
			t.Errorf("DecodeTropicalFish(%#x) = %+v, %v", v, back, err)
		}
	}
}

func TestTropicalFish_Layout(t *testing.T) {
	f := TropicalFishVariant{Pattern: PatternBetty, BaseColor: DyeRed, PatternColor: DyeBlack}
	v, err := DefaultLayouts().EncodeTropicalFish(f)
	if err != nil {
		t.Fatal(err)
	}
	// pattern 0x0401, base 14, pattern colour 15
	if v != 0x0F0E0401 {
		t.Errorf("EncodeTropicalFish = %#x, want 0x0f0e0401", v)
	}
	if PatternBetty.Size() != 1 || PatternBetty.Shape() != 4 {
		t.Errorf("Betty size/shape = %d/%d", PatternBetty.Size(), PatternBetty.Shape())
	}
	if PatternSpotty.Size() != 0 || PatternSpotty.Shape() != 5 {
		t.Errorf("Spotty size/shape = %d/%d", PatternSpotty.Size(), PatternSpotty.Shape())
	}

	// The sign byte is the pattern colour.
	neg := int32(-0x0EF1FBFF) // 0xF10E0401: pattern colour 0xF1 is out of range
	if _, err := DefaultLayouts().DecodeTropicalFish(neg); !errors.Is(err, wire.ErrInvalidEnumOrdinal) {
		t.Errorf("expected invalid enum, got %v", err)
	}
}

func TestTropicalFish_DecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		value int32
		enum  string
		field string
	}{
		{"unknown pattern", 0x00000002, "TropicalFishPattern", "pattern"},
		{"bad base colour", 0x00100000, "DyeColor", "base_color"},
		{"bad pattern colour", 0x10000000, "DyeColor", "pattern_color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DefaultLayouts().DecodeTropicalFish(tt.value)
			var we *wire.Error
			if !errors.As(err, &we) || we.Kind != wire.KindInvalidEnumOrdinal || we.Type != tt.enum {
				t.Fatalf("expected invalid %s, got %v", tt.enum, err)
			}
			var fe *wire.FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("expected FieldError, got %T", err)
			}
			if want := []string{"TropicalFishVariant", tt.field}; !reflect.DeepEqual(fe.FieldPath, want) {
				t.Errorf("path = %v, want %v", fe.FieldPath, want)
			}
		})
	}
}

type rangeDomain struct {
	name   string
	lo, hi int32
}

func (d rangeDomain) EnumName() string      { return d.name }
func (d rangeDomain) Contains(n int32) bool { return n >= d.lo && n <= d.hi }

func TestNewPacked_Validation(t *testing.T) {
	d := rangeDomain{"D", 0, 3}
	tests := []struct {
		name   string
		fields []Field
		errMsg string
	}{
		{"overlap", []Field{{Name: "a", Domain: d, Shift: 0, Width: 8}, {Name: "b", Domain: d, Shift: 4, Width: 8}}, "overlaps"},
		{"too wide", []Field{{Name: "a", Domain: d, Shift: 28, Width: 8}}, "does not fit"},
		{"zero width", []Field{{Name: "a", Domain: d, Shift: 0, Width: 0}}, "does not fit"},
		{"no domain", []Field{{Name: "a", Shift: 0, Width: 2}}, "no domain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPacked("P", tt.fields...)
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %v", tt.errMsg, err)
			}
		})
	}

	p, err := NewPacked("P",
		Field{Name: "lo", Domain: d, Shift: 0, Width: 2},
		Field{Name: "hi", Domain: d, Shift: 30, Width: 2},
	)
	if err != nil {
		t.Fatal(err)
	}
	v, err := p.Encode(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if uint32(v) != 0xC0000003 {
		t.Errorf("Encode = %#x", uint32(v))
	}
	got, err := p.Decode(v)
	if err != nil || !reflect.DeepEqual(got, []int32{3, 3}) {
		t.Errorf("Decode = %v, %v", got, err)
	}
	if _, err := p.Encode(1); err == nil {
		t.Error("expected arity error")
	}
}

// A domain wider than its field must not leak into neighbouring bits.
func TestPacked_EncodeRejectsWideValue(t *testing.T) {
	wide := rangeDomain{"Wide", 0, 1000}
	p := BytePair("P", wide, wide)
	if _, err := p.Encode(256, 0); !errors.Is(err, wire.ErrInvalidEnumOrdinal) {
		t.Errorf("expected invalid enum, got %v", err)
	}
}

func TestNewLayouts_MissingEnum(t *testing.T) {
	if _, err := NewLayouts(registry.NewRegistry()); err == nil || !strings.Contains(err.Error(), "HorseColor") {
		t.Errorf("expected missing enum error, got %v", err)
	}
}

// The Go constants must agree with the declared domains.
func TestConstantsMatchRegistry(t *testing.T) {
	reg := registry.Default()
	check := func(enum string, values ...int32) {
		e := reg.MustEnum(enum)
		for _, v := range values {
			if !e.Contains(v) {
				t.Errorf("%s does not contain %d", enum, v)
			}
		}
		if len(e.Numbers()) != len(values) {
			t.Errorf("%s declares %d values, constants cover %d", enum, len(e.Numbers()), len(values))
		}
	}

	var horse, markings, dye []int32
	for c := HorseWhite; c <= HorseDarkBrown; c++ {
		horse = append(horse, int32(c))
	}
	for m := MarkingsNone; m <= MarkingsBlackDots; m++ {
		markings = append(markings, int32(m))
	}
	for d := DyeWhite; d <= DyeBlack; d++ {
		dye = append(dye, int32(d))
	}
	check("HorseColor", horse...)
	check("HorseMarkings", markings...)
	check("DyeColor", dye...)
	check("TropicalFishPattern",
		int32(PatternKob), int32(PatternFlopper), int32(PatternSunstreak), int32(PatternStripey),
		int32(PatternSnooper), int32(PatternGlitter), int32(PatternDasher), int32(PatternBlockfish),
		int32(PatternBrinely), int32(PatternBetty), int32(PatternSpotty), int32(PatternClayfish))
}
