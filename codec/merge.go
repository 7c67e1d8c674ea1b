package codec

import (
	"fmt"

	"github.com/anirudhraja/mcwire/wire"
)

// MergeFields encodes each part as a map and merges them into a single
// flat map. Parts are merged in argument order; a key present in more
// than one part is an error.
func MergeFields(parts ...any) ([]byte, error) {
	merged := make(map[string]RawMessage)
	owner := make(map[string]int)

	for i, part := range parts {
		data, err := Marshal(part)
		if err != nil {
			return nil, fmt.Errorf("failed to encode part %d (%T): %w", i, part, err)
		}

		var fields map[string]RawMessage
		if err := Unmarshal(data, &fields); err != nil {
			return nil, wire.InvalidDataError(fmt.Sprintf("%T", part), "flattened part must encode as a map")
		}

		for key, value := range fields {
			if prev, dup := owner[key]; dup {
				return nil, wire.InvalidDataError("record",
					fmt.Sprintf("key %q produced by part %d (%T) and part %d (%T)", key, prev, parts[prev], i, part))
			}
			owner[key] = i
			merged[key] = value
		}
	}

	return Marshal(merged)
}

// SplitFields decodes one flat map into every part. Each part must be a
// pointer; it receives the keys it declares and ignores the rest.
func SplitFields(data []byte, parts ...any) error {
	for i, part := range parts {
		if err := Unmarshal(data, part); err != nil {
			return wire.WithField(err, fmt.Sprintf("part %d (%T)", i, part))
		}
	}
	return nil
}
