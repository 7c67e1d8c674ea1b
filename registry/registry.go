package registry

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	protoparser "github.com/yoheimuta/go-protoparser/v4"
	protoparserparser "github.com/yoheimuta/go-protoparser/v4/parser"

	"github.com/anirudhraja/mcwire/schema"
)

//go:embed enums.proto
var builtinEnums []byte

// BuiltinFile is the name the embedded declarations are registered under.
const BuiltinFile = "enums.proto"

// Registry stores the closed enum domains that packed fields are checked against.
type Registry struct {
	files map[string]*schema.EnumFile
	enums map[string]*schema.Enum // fully qualified name -> enum
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// NewBuiltinRegistry returns a new registry holding the built-in
// declarations. More files may be loaded into it.
func NewBuiltinRegistry() (*Registry, error) {
	r := NewRegistry()
	if err := r.Load(BuiltinFile, bytes.NewReader(builtinEnums)); err != nil {
		return nil, err
	}
	return r, nil
}

// Default returns a shared registry holding the built-in declarations.
// It is built once and must not be loaded into.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewBuiltinRegistry()
		if err != nil {
			panic("registry: built-in enum declarations are invalid: " + err.Error())
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

func (r *Registry) init() {
	if r.files == nil {
		r.files = make(map[string]*schema.EnumFile)
	}
	if r.enums == nil {
		r.enums = make(map[string]*schema.Enum)
	}
}

// LoadSchema Given a path it will recursively scan all *proto files inside it and load their enums
func (r *Registry) LoadSchema(protoPath string) error {
	// Check if the path exists
	info, err := os.Stat(protoPath)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	// If it's a single file, process it directly
	if !info.IsDir() {
		if !strings.HasSuffix(protoPath, ".proto") {
			return fmt.Errorf("file %s is not a .proto file", protoPath)
		}
		if err := r.loadSingleProtoFile(protoPath); err != nil {
			return fmt.Errorf("failed to load proto file: %w", err)
		}
		return nil
	}

	// If it's a directory, walk through it recursively
	err = filepath.WalkDir(protoPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip directories and non-proto files
		if d.IsDir() || !strings.HasSuffix(path, ".proto") {
			return nil
		}

		if err := r.loadSingleProtoFile(path); err != nil {
			return fmt.Errorf("failed to load proto file %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk directory: %w", err)
	}
	return nil
}

// loadSingleProtoFile loads and parses a single .proto file
func (r *Registry) loadSingleProtoFile(filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	defer f.Close()

	return r.Load(filePath, f)
}

// Load parses proto-syntax enum declarations from src and registers
// every top-level enum. Messages and services are ignored.
func (r *Registry) Load(name string, src io.Reader) error {
	r.init()

	parsed, err := protoparser.Parse(src, protoparser.WithFilename(name))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}

	file := &schema.EnumFile{Name: filepath.Base(name)}
	for _, body := range parsed.ProtoBody {
		switch b := body.(type) {
		case *protoparserparser.Package:
			file.Package = b.Name
		case *protoparserparser.Enum:
			enum, err := buildEnum(b)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			file.Enums = append(file.Enums, enum)
		}
	}

	// Register only once the whole file is valid.
	for _, enum := range file.Enums {
		fullName := getFullName(file.Package, enum.Name)
		if _, exists := r.enums[fullName]; exists {
			return fmt.Errorf("%s: enum %s already registered", name, fullName)
		}
	}
	for _, enum := range file.Enums {
		r.enums[getFullName(file.Package, enum.Name)] = enum
	}
	r.files[name] = file
	return nil
}

func buildEnum(e *protoparserparser.Enum) (*schema.Enum, error) {
	enum := &schema.Enum{Name: e.EnumName}

	for _, body := range e.EnumBody {
		switch b := body.(type) {
		case *protoparserparser.Option:
			if b.OptionName == "allow_alias" {
				enum.AllowAlias = b.Constant == "true"
			}
		case *protoparserparser.EnumField:
			n, err := strconv.ParseInt(b.Number, 0, 32)
			if err != nil {
				return nil, fmt.Errorf("enum %s: invalid number %q for %s: %w", e.EnumName, b.Number, b.Ident, err)
			}
			if _, dup := enum.ValueNamed(b.Ident); dup {
				return nil, fmt.Errorf("enum %s: duplicate value name %s", e.EnumName, b.Ident)
			}
			enum.Values = append(enum.Values, &schema.EnumValue{Name: b.Ident, Number: int32(n)})
		}
	}

	if len(enum.Values) == 0 {
		return nil, fmt.Errorf("enum %s declares no values", e.EnumName)
	}
	if !enum.AllowAlias {
		seen := make(map[int32]string, len(enum.Values))
		for _, v := range enum.Values {
			if prev, ok := seen[v.Number]; ok {
				return nil, fmt.Errorf("enum %s: %s and %s share number %d without allow_alias", e.EnumName, prev, v.Name, v.Number)
			}
			seen[v.Number] = v.Name
		}
	}
	return enum, nil
}

func getFullName(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}

// GetEnum retrieves an enum definition by name
func (r *Registry) GetEnum(name string) (*schema.Enum, error) {
	if enum, exists := r.enums[name]; exists {
		return enum, nil
	}

	// Try without package prefix
	var found *schema.Enum
	for fullName, enum := range r.enums {
		if strings.HasSuffix(fullName, "."+name) {
			if found != nil {
				return nil, fmt.Errorf("enum name %s is ambiguous", name)
			}
			found = enum
		}
	}
	if found == nil {
		return nil, fmt.Errorf("enum not found: %s", name)
	}
	return found, nil
}

// MustEnum is GetEnum for names known to be declared.
func (r *Registry) MustEnum(name string) *schema.Enum {
	enum, err := r.GetEnum(name)
	if err != nil {
		panic(err)
	}
	return enum
}

// ListEnums returns all registered enum names, sorted
func (r *Registry) ListEnums() []string {
	names := make([]string, 0, len(r.enums))
	for name := range r.enums {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Files returns the loaded declaration files keyed by the name they were loaded under.
func (r *Registry) Files() map[string]*schema.EnumFile {
	return r.files
}
