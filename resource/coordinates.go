package resource

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/anirudhraja/mcwire/wire"
)

// CoordinateKind says how a coordinate is measured.
type CoordinateKind int

const (
	Absolute CoordinateKind = iota // world position
	Relative                       // ~, offset from the executor
	Local                          // ^, offset along the executor's facing
)

func (k CoordinateKind) prefix() string {
	switch k {
	case Relative:
		return "~"
	case Local:
		return "^"
	default:
		return ""
	}
}

// Coordinate is a single axis value.
type Coordinate struct {
	Value float64
	Kind  CoordinateKind
}

// ParseCoordinate parses "12.5", "~-3" or "^". A bare prefix is an
// offset of zero.
func ParseCoordinate(s string) (Coordinate, error) {
	if s == "" {
		return Coordinate{}, wire.InvalidDataError("Coordinate", "empty coordinate")
	}

	c := Coordinate{Kind: Absolute}
	switch s[0] {
	case '~':
		c.Kind = Relative
		s = s[1:]
	case '^':
		c.Kind = Local
		s = s[1:]
	}
	if s == "" && c.Kind != Absolute {
		return c, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
		err = strconv.ErrRange
	}
	if err != nil {
		return Coordinate{}, &wire.Error{
			Kind:   wire.KindInvalidData,
			Type:   "Coordinate",
			Value:  s,
			Detail: "not a number",
			Cause:  err,
		}
	}
	c.Value = v
	return c, nil
}

func (c Coordinate) String() string {
	if c.Kind != Absolute && c.Value == 0 {
		return c.Kind.prefix()
	}
	return c.Kind.prefix() + strconv.FormatFloat(c.Value, 'g', -1, 64)
}

// Coordinates is a position written "x y z".
type Coordinates struct {
	X, Y, Z Coordinate
}

// ParseCoordinates parses exactly three space-separated coordinates.
func ParseCoordinates(s string) (Coordinates, error) {
	parts := strings.Split(s, " ")
	if len(parts) != 3 {
		return Coordinates{}, wire.InvalidDataError("Coordinates",
			fmt.Sprintf("expected 3 coordinates, got %d in %q", len(parts), s))
	}

	var c Coordinates
	for i, axis := range []*Coordinate{&c.X, &c.Y, &c.Z} {
		v, err := ParseCoordinate(parts[i])
		if err != nil {
			return Coordinates{}, wire.WithField(err, "xyz"[i:i+1])
		}
		*axis = v
	}
	return c, nil
}

func (c Coordinates) String() string {
	return c.X.String() + " " + c.Y.String() + " " + c.Z.String()
}

// MarshalText implements encoding.TextMarshaler.
func (c Coordinates) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Coordinates) UnmarshalText(text []byte) error {
	parsed, err := ParseCoordinates(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
