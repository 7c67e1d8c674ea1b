package wire

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config controls the limits a Decoder or frame stream enforces.
// A Config is copied into each Decoder; there is no global instance.
type Config struct {
	// MaxTextLength caps the declared byte length of a decoded string.
	// Zero means unlimited.
	MaxTextLength int `yaml:"max_text_length"`

	// MaxFrameLength caps the declared length of a frame and of a decoded
	// byte array. Zero means unlimited.
	MaxFrameLength int `yaml:"max_frame_length"`

	// MaxDecompressedLength caps the declared uncompressed size of a
	// compressed frame. Zero means unlimited.
	MaxDecompressedLength int `yaml:"max_decompressed_length"`

	// CompressionThreshold enables frame compression when non-negative.
	// Payloads at least this long are zlib compressed; shorter payloads
	// are sent raw behind a zero data length.
	CompressionThreshold int `yaml:"compression_threshold"`
}

// Protocol limits
const (
	DefaultMaxFrameLength        = 1<<21 - 1 // largest 3-byte VarInt
	DefaultMaxDecompressedLength = 1 << 23
)

// DefaultConfig returns the limits used when no config is supplied.
// Compression is disabled.
func DefaultConfig() Config {
	return Config{
		MaxTextLength:         0,
		MaxFrameLength:        DefaultMaxFrameLength,
		MaxDecompressedLength: DefaultMaxDecompressedLength,
		CompressionThreshold:  -1,
	}
}

// ParseConfig reads a YAML document over the defaults. Keys that are
// absent keep their default value.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse wire config: %w", err)
	}
	return c, nil
}

var configEnv = []struct {
	name  string
	field func(*Config) *int
}{
	{"MCWIRE_MAX_TEXT_LENGTH", func(c *Config) *int { return &c.MaxTextLength }},
	{"MCWIRE_MAX_FRAME_LENGTH", func(c *Config) *int { return &c.MaxFrameLength }},
	{"MCWIRE_MAX_DECOMPRESSED_LENGTH", func(c *Config) *int { return &c.MaxDecompressedLength }},
	{"MCWIRE_COMPRESSION_THRESHOLD", func(c *Config) *int { return &c.CompressionThreshold }},
}

// ApplyEnv overrides fields of c from MCWIRE_* environment variables.
// Unset variables leave the field unchanged.
func (c Config) ApplyEnv() (Config, error) {
	for _, env := range configEnv {
		v, ok := os.LookupEnv(env.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", env.name, err)
		}
		*env.field(&c) = n
	}
	return c, nil
}
