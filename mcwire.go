// Package mcwire ties the codec layer together: enum domains from a
// registry, packed layouts built from them, and the limits used for
// stream decoding.
package mcwire

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/anirudhraja/mcwire/codec"
	"github.com/anirudhraja/mcwire/registry"
	"github.com/anirudhraja/mcwire/transcode"
	"github.com/anirudhraja/mcwire/wire"
)

// MCWire holds a registry, the packed layouts derived from it and a wire config.
type MCWire struct {
	registry *registry.Registry
	layouts  *transcode.Layouts
	config   wire.Config
}

// New creates an instance with the built-in enums and the default config.
func New() (*MCWire, error) {
	reg, err := registry.NewBuiltinRegistry()
	if err != nil {
		return nil, err
	}
	return NewWithRegistry(reg, wire.DefaultConfig())
}

// NewWithRegistry creates an instance over reg, which must declare every
// enum the packed layouts use.
func NewWithRegistry(reg *registry.Registry, c wire.Config) (*MCWire, error) {
	layouts, err := transcode.NewLayouts(reg)
	if err != nil {
		return nil, err
	}
	return &MCWire{registry: reg, layouts: layouts, config: c}, nil
}

// SetLogger sets the logger used by every package in the module.
func SetLogger(l *zap.Logger) {
	wire.SetLogger(l)
}

// LoadConfig reads a YAML config file, if path is not empty, and then
// applies MCWIRE_* environment overrides.
func LoadConfig(path string) (wire.Config, error) {
	c := wire.DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return wire.Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if c, err = wire.ParseConfig(data); err != nil {
			return wire.Config{}, err
		}
	}
	return c.ApplyEnv()
}

// LoadEnums loads more enum declarations from a .proto file or directory
// and rebuilds the packed layouts. Redeclaring an enum a layout uses, in
// any package, makes its name ambiguous and fails; the previous layouts
// stay in place.
func (m *MCWire) LoadEnums(protoPath string) error {
	if err := m.registry.LoadSchema(protoPath); err != nil {
		return err
	}
	layouts, err := transcode.NewLayouts(m.registry)
	if err != nil {
		return err
	}
	m.layouts = layouts
	return nil
}

// ===== STREAM PROTOCOL =====

// NewDecoder returns a wire decoder over data using m's limits.
func (m *MCWire) NewDecoder(data []byte) *wire.Decoder {
	return wire.NewDecoderWithConfig(data, m.config)
}

// NewFrameReader reads frames from r using m's limits and compression threshold.
func (m *MCWire) NewFrameReader(r io.Reader) *wire.FrameReader {
	return wire.NewFrameReader(r, m.config)
}

// NewFrameWriter writes frames to w using m's limits and compression threshold.
func (m *MCWire) NewFrameWriter(w io.Writer) *wire.FrameWriter {
	return wire.NewFrameWriter(w, m.config)
}

// ===== PACKED FIELDS =====

// PackedPair builds a two-byte layout from two registered enums.
func (m *MCWire) PackedPair(name, low, high string) (transcode.Packed, error) {
	lo, err := m.registry.GetEnum(low)
	if err != nil {
		return transcode.Packed{}, err
	}
	hi, err := m.registry.GetEnum(high)
	if err != nil {
		return transcode.Packed{}, err
	}
	return transcode.BytePair(name, lo, hi), nil
}

func (m *MCWire) DecodeHorseColors(v int32) (transcode.HorseColors, error) {
	return m.layouts.DecodeHorseColors(v)
}

func (m *MCWire) EncodeHorseColors(h transcode.HorseColors) (int32, error) {
	return m.layouts.EncodeHorseColors(h)
}

func (m *MCWire) DecodeTropicalFish(v int32) (transcode.TropicalFishVariant, error) {
	return m.layouts.DecodeTropicalFish(v)
}

func (m *MCWire) EncodeTropicalFish(f transcode.TropicalFishVariant) (int32, error) {
	return m.layouts.EncodeTropicalFish(f)
}

// ===== DOCUMENTS =====

// Marshal encodes v as a document.
func (m *MCWire) Marshal(v any) ([]byte, error) {
	return codec.Marshal(v)
}

// Unmarshal decodes a document into v. Packed fields inside documents
// are validated against the built-in enums, not m's registry; decode
// them as int32 and call DecodeHorseColors or DecodeTropicalFish to use
// m's layouts.
func (m *MCWire) Unmarshal(data []byte, v any) error {
	return codec.Unmarshal(data, v)
}

// MarshalRecord encodes a record built from several parts as one flat map.
func (m *MCWire) MarshalRecord(parts ...any) ([]byte, error) {
	return codec.MergeFields(parts...)
}

// UnmarshalRecord decodes one flat map into every part.
func (m *MCWire) UnmarshalRecord(data []byte, parts ...any) error {
	return codec.SplitFields(data, parts...)
}

// ===== REGISTRY ACCESS =====

func (m *MCWire) GetRegistry() *registry.Registry { return m.registry }
func (m *MCWire) Layouts() *transcode.Layouts     { return m.layouts }
func (m *MCWire) Config() wire.Config             { return m.config }
func (m *MCWire) ListEnums() []string             { return m.registry.ListEnums() }
