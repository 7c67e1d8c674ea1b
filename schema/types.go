package schema

import (
	"sort"

	"github.com/anirudhraja/mcwire/wire"
)

// EnumFile represents one parsed enum declaration file
type EnumFile struct {
	Name    string  `json:"name"`    // enums.proto
	Package string  `json:"package"` // package name
	Enums   []*Enum `json:"enums"`   // enum definitions
}

// Enum represents a closed enumeration. Any raw value that is not the
// number of one of its Values is outside the domain.
type Enum struct {
	Name       string       `json:"name"`        // "HorseColor"
	Values     []*EnumValue `json:"values"`      // enum values
	AllowAlias bool         `json:"allow_alias"` // allow_alias option
}

// EnumValue represents an enum value
type EnumValue struct {
	Name   string `json:"name"`   // "CHESTNUT"
	Number int32  `json:"number"` // 2
}

// EnumName returns the name used in errors for this domain.
func (e *Enum) EnumName() string {
	return e.Name
}

// Contains reports whether n is the number of a declared value.
func (e *Enum) Contains(n int32) bool {
	_, ok := e.Value(n)
	return ok
}

// Value returns the first value declared with number n.
func (e *Enum) Value(n int32) (*EnumValue, bool) {
	for _, v := range e.Values {
		if v.Number == n {
			return v, true
		}
	}
	return nil, false
}

// ValueNamed returns the value declared as name.
func (e *Enum) ValueNamed(name string) (*EnumValue, bool) {
	for _, v := range e.Values {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// Decode validates a raw value against the domain.
func (e *Enum) Decode(raw int64) (*EnumValue, error) {
	if raw >= -1<<31 && raw < 1<<31 {
		if v, ok := e.Value(int32(raw)); ok {
			return v, nil
		}
	}
	return nil, wire.EnumOrdinalError(e.Name, raw)
}

// Numbers returns the distinct declared numbers in ascending order.
func (e *Enum) Numbers() []int32 {
	seen := make(map[int32]struct{}, len(e.Values))
	nums := make([]int32, 0, len(e.Values))
	for _, v := range e.Values {
		if _, ok := seen[v.Number]; ok {
			continue
		}
		seen[v.Number] = struct{}{}
		nums = append(nums, v.Number)
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })
	return nums
}
