// Package resource implements the text grammars used for references in
// persisted state: namespaced identifiers, entity selectors and command
// coordinates.
//
// Each type implements encoding.TextMarshaler and
// encoding.TextUnmarshaler, so it is a text string in both the CBOR
// document format and JSON, and may be used as a map key.
package resource

import (
	"strings"

	"github.com/anirudhraja/mcwire/wire"
)

// DefaultNamespace is assumed when an identifier has no namespace.
const DefaultNamespace = "minecraft"

// Identifier is a namespaced resource name, written namespace:path.
type Identifier struct {
	Namespace string
	Path      string
}

// NewIdentifier returns the identifier namespace:path.
func NewIdentifier(namespace, path string) Identifier {
	return Identifier{Namespace: namespace, Path: path}
}

// Minecraft returns path in the default namespace.
func Minecraft(path string) Identifier {
	return Identifier{Namespace: DefaultNamespace, Path: path}
}

// ParseIdentifier parses s. With no colon the namespace is "minecraft";
// more than one colon is an InvalidIdentifierGrammar error.
func ParseIdentifier(s string) (Identifier, error) {
	namespace, path, found := strings.Cut(s, ":")
	if !found {
		return Minecraft(s), nil
	}
	if strings.Contains(path, ":") {
		return Identifier{}, wire.IdentifierError(s)
	}
	return Identifier{Namespace: namespace, Path: path}, nil
}

// MustParseIdentifier is ParseIdentifier for literals.
func MustParseIdentifier(s string) Identifier {
	id, err := ParseIdentifier(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id Identifier) String() string {
	return id.Namespace + ":" + id.Path
}

// IsDefaultNamespace reports whether id is in the minecraft namespace.
func (id Identifier) IsDefaultNamespace() bool {
	return id.Namespace == DefaultNamespace
}

// MarshalText implements encoding.TextMarshaler.
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *Identifier) UnmarshalText(text []byte) error {
	parsed, err := ParseIdentifier(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
