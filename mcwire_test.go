package mcwire

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/anirudhraja/mcwire/codec"
	"github.com/anirudhraja/mcwire/registry"
	"github.com/anirudhraja/mcwire/transcode"
	"github.com/anirudhraja/mcwire/wire"
)

func mustBuiltin() *registry.Registry {
	reg, err := registry.NewBuiltinRegistry()
	if err != nil {
		panic(err)
	}
	return reg
}

func TestNew(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if m.GetRegistry() == registry.Default() {
		t.Error("New should not share the default registry")
	}
	if len(m.ListEnums()) != len(registry.Default().ListEnums()) {
		t.Errorf("expected built-in enums, got %v", m.ListEnums())
	}
	if m.Config() != wire.DefaultConfig() {
		t.Errorf("unexpected config %+v", m.Config())
	}
}

func TestNewWithRegistry_MissingEnums(t *testing.T) {
	if _, err := NewWithRegistry(registry.NewRegistry(), wire.DefaultConfig()); err == nil {
		t.Error("expected error for registry without packed layout enums")
	}
}

func TestMCWire_PackedFields(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatal(err)
	}

	h := transcode.HorseColors{Color: transcode.HorseDarkBrown, Markings: transcode.MarkingsBlackDots}
	v, err := m.EncodeHorseColors(h)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x0406 {
		t.Errorf("EncodeHorseColors = %#x", v)
	}
	if back, err := m.DecodeHorseColors(v); err != nil || back != h {
		t.Errorf("DecodeHorseColors = %+v, %v", back, err)
	}

	f := transcode.TropicalFishVariant{Pattern: transcode.PatternClayfish, BaseColor: transcode.DyeCyan, PatternColor: transcode.DyeWhite}
	fv, err := m.EncodeTropicalFish(f)
	if err != nil {
		t.Fatal(err)
	}
	if back, err := m.DecodeTropicalFish(fv); err != nil || back != f {
		t.Errorf("DecodeTropicalFish = %+v, %v", back, err)
	}
}

func TestMCWire_PackedPair(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatal(err)
	}

	p, err := m.PackedPair("Spawn", "GameType", "Face")
	if err != nil {
		t.Fatal(err)
	}
	v, err := p.Encode(3, 5)
	if err != nil || v != 0x0503 {
		t.Fatalf("Encode = %#x, %v", v, err)
	}
	if _, err := p.Decode(0x0603); !errors.Is(err, wire.ErrInvalidEnumOrdinal) {
		t.Errorf("expected invalid enum for face 6, got %v", err)
	}

	if _, err := m.PackedPair("X", "GameType", "Nope"); err == nil {
		t.Error("expected error for unknown enum")
	}
}

func TestMCWire_LoadEnums(t *testing.T) {
	tmpDir := t.TempDir()
	protoFile := filepath.Join(tmpDir, "extra.proto")
	content := `syntax = "proto3";
package mymod;

enum Mood {
  CALM = 0;
  ANGRY = 1;
}
`
	if err := os.WriteFile(protoFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := m.LoadEnums(protoFile); err != nil {
		t.Fatalf("LoadEnums failed: %v", err)
	}
	p, err := m.PackedPair("MoodColor", "Mood", "DyeColor")
	if err != nil {
		t.Fatal(err)
	}
	got, err := p.Decode(0x0E01)
	if err != nil || !reflect.DeepEqual(got, []int32{1, 14}) {
		t.Errorf("Decode = %v, %v", got, err)
	}

	// The shared default registry is untouched.
	if _, err := registry.Default().GetEnum("Mood"); err == nil {
		t.Error("LoadEnums leaked into the default registry")
	}
}

func TestMCWire_LoadEnumsKeepsLayoutEnums(t *testing.T) {
	tmpDir := t.TempDir()
	protoFile := filepath.Join(tmpDir, "horse.proto")
	content := `syntax = "proto3";
package mymod;

enum HorseColor {
  PLAIN = 0;
  SPOTTED = 9;
}
`
	if err := os.WriteFile(protoFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := m.LoadEnums(protoFile); err == nil {
		t.Fatal("redeclaring a layout enum should fail")
	}

	// The façade and documents keep agreeing on the built-in layout.
	if _, err := m.DecodeHorseColors(9); !errors.Is(err, wire.ErrInvalidEnumOrdinal) {
		t.Errorf("DecodeHorseColors(9): expected invalid enum, got %v", err)
	}
	data, err := codec.Marshal(int32(9))
	if err != nil {
		t.Fatal(err)
	}
	var h transcode.HorseColors
	if err := m.Unmarshal(data, &h); !errors.Is(err, wire.ErrInvalidEnumOrdinal) {
		t.Errorf("document decode: expected invalid enum, got %v", err)
	}
	if got, err := m.DecodeHorseColors(0x0302); err != nil || got != (transcode.HorseColors{Color: 2, Markings: 3}) {
		t.Errorf("DecodeHorseColors(0x0302) = %+v, %v", got, err)
	}
}

func TestMCWire_Records(t *testing.T) {
	type breedable struct {
		Age    int32 `cbor:"Age"`
		InLove int32 `cbor:"InLove"`
	}
	type horse struct {
		Variant transcode.HorseColors `cbor:"Variant"`
		Owner   transcode.UUID        `cbor:"Owner"`
	}

	m, err := New()
	if err != nil {
		t.Fatal(err)
	}

	b := breedable{Age: -100, InLove: 0}
	h := horse{
		Variant: transcode.HorseColors{Color: transcode.HorseBlack, Markings: transcode.MarkingsWhite},
		Owner:   transcode.UUIDFromInts([4]int32{1, 2, 3, 4}),
	}
	data, err := m.MarshalRecord(b, h)
	if err != nil {
		t.Fatalf("MarshalRecord: %v", err)
	}

	var flat map[string]any
	if err := m.Unmarshal(data, &flat); err != nil {
		t.Fatal(err)
	}
	if len(flat) != 4 {
		t.Errorf("expected 4 flat keys, got %v", flat)
	}

	var b2 breedable
	var h2 horse
	if err := m.UnmarshalRecord(data, &b2, &h2); err != nil {
		t.Fatalf("UnmarshalRecord: %v", err)
	}
	if b2 != b || h2 != h {
		t.Errorf("round trip = %+v %+v", b2, h2)
	}
}

func TestMCWire_Frames(t *testing.T) {
	c := wire.DefaultConfig()
	c.CompressionThreshold = 16
	m, err := NewWithRegistry(mustBuiltin(), c)
	if err != nil {
		t.Fatal(err)
	}

	payloads := [][]byte{{}, []byte("tiny"), bytes.Repeat([]byte{0xAB}, 1000)}
	var stream bytes.Buffer
	w := m.NewFrameWriter(&stream)
	for _, p := range payloads {
		if err := w.WriteFrame(p); err != nil {
			t.Fatal(err)
		}
	}

	r := m.NewFrameReader(&stream)
	for i, want := range payloads {
		got, err := r.ReadFrame()
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("frame %d: got %d bytes, want %d", i, len(got), len(want))
		}
	}
}

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if c != wire.DefaultConfig() {
		t.Errorf("LoadConfig(\"\") = %+v", c)
	}

	path := filepath.Join(t.TempDir(), "wire.yaml")
	if err := os.WriteFile(path, []byte("compression_threshold: 256\nmax_text_length: 32767\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MCWIRE_MAX_TEXT_LENGTH", "100")

	c, err = LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.CompressionThreshold != 256 {
		t.Errorf("CompressionThreshold = %d", c.CompressionThreshold)
	}
	if c.MaxTextLength != 100 {
		t.Errorf("environment should override file, MaxTextLength = %d", c.MaxTextLength)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
