package resource

import (
	"fmt"

	"github.com/anirudhraja/mcwire/wire"
)

// Selector is a target selector variable. Arguments are not supported.
type Selector int

const (
	NearestPlayer Selector = iota // @p
	RandomPlayer                  // @r
	AllPlayers                    // @a
	AllEntities                   // @e
	Executor                      // @s
	NearestEntity                 // @n
)

var selectorText = [...]string{
	NearestPlayer: "@p",
	RandomPlayer:  "@r",
	AllPlayers:    "@a",
	AllEntities:   "@e",
	Executor:      "@s",
	NearestEntity: "@n",
}

// ParseSelector parses one of @p @r @a @e @s @n.
func ParseSelector(s string) (Selector, error) {
	for sel, text := range selectorText {
		if text == s {
			return Selector(sel), nil
		}
	}
	return 0, &wire.Error{
		Kind:   wire.KindInvalidData,
		Type:   "Selector",
		Value:  s,
		Detail: fmt.Sprintf("unknown selector %q", s),
	}
}

func (s Selector) String() string {
	if s < 0 || int(s) >= len(selectorText) {
		return fmt.Sprintf("Selector(%d)", int(s))
	}
	return selectorText[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Selector) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(selectorText) {
		return nil, wire.EnumOrdinalError("Selector", int64(s))
	}
	return []byte(selectorText[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Selector) UnmarshalText(text []byte) error {
	sel, err := ParseSelector(string(text))
	if err != nil {
		return err
	}
	*s = sel
	return nil
}
