package transcode

import (
	"fmt"
	"sync"

	"github.com/anirudhraja/mcwire/registry"
)

// Layouts holds the packed layouts built from one registry.
type Layouts struct {
	HorseVariant        Packed
	TropicalFishVariant Packed
}

// NewLayouts builds the packed layouts from the enums declared in reg.
func NewLayouts(reg *registry.Registry) (*Layouts, error) {
	get := func(name string) (Domain, error) {
		e, err := reg.GetEnum(name)
		if err != nil {
			return nil, fmt.Errorf("packed layout needs enum %s: %w", name, err)
		}
		return e, nil
	}

	color, err := get("HorseColor")
	if err != nil {
		return nil, err
	}
	markings, err := get("HorseMarkings")
	if err != nil {
		return nil, err
	}
	pattern, err := get("TropicalFishPattern")
	if err != nil {
		return nil, err
	}
	dye, err := get("DyeColor")
	if err != nil {
		return nil, err
	}

	fish, err := NewPacked("TropicalFishVariant",
		Field{Name: "pattern", Domain: pattern, Shift: 0, Width: 16},
		Field{Name: "base_color", Domain: dye, Shift: 16, Width: 8},
		Field{Name: "pattern_color", Domain: dye, Shift: 24, Width: 8},
	)
	if err != nil {
		return nil, err
	}

	return &Layouts{
		HorseVariant:        BytePair("HorseVariant", color, markings),
		TropicalFishVariant: fish,
	}, nil
}

var (
	defaultLayouts     *Layouts
	defaultLayoutsOnce sync.Once
)

// DefaultLayouts returns the layouts built from registry.Default().
func DefaultLayouts() *Layouts {
	defaultLayoutsOnce.Do(func() {
		l, err := NewLayouts(registry.Default())
		if err != nil {
			panic("transcode: " + err.Error())
		}
		defaultLayouts = l
	})
	return defaultLayouts
}
