// Command enumgen writes Go constants for the layout enums declared in
// the builtin registry, so registry/enums.proto stays their only source.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/anirudhraja/mcwire/registry"
	"github.com/anirudhraja/mcwire/schema"
)

type target struct {
	Enum   string // name in enums.proto
	Type   string // Go type name
	Prefix string // constant prefix
	Doc    string
}

var targets = []target{
	{"HorseColor", "HorseColor", "Horse", "HorseColor is the coat colour, the low byte of a horse variant."},
	{"HorseMarkings", "HorseMarkings", "Markings", "HorseMarkings is the marking pattern, the second byte of a horse variant."},
	{"DyeColor", "DyeColor", "Dye", "DyeColor is one of the sixteen dye colours."},
	{"TropicalFishPattern", "FishPattern", "Pattern", "FishPattern is a tropical fish pattern, stored as size | shape << 8."},
}

func main() {
	var out, pkg string
	flags := pflag.NewFlagSet("enumgen", pflag.ExitOnError)
	flags.StringVarP(&out, "output", "o", "enums_gen.go", "file to write")
	flags.StringVar(&pkg, "package", "transcode", "package clause of the output")
	if err := flags.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	reg, err := registry.NewBuiltinRegistry()
	if err != nil {
		log.Fatalf("Failed to load builtin enums: %v", err)
	}
	src, err := generate(reg, pkg)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		log.Fatal(err)
	}
}

func generate(reg *registry.Registry, pkg string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by enumgen from registry/enums.proto. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n", pkg)
	for _, t := range targets {
		e, err := reg.GetEnum(t.Enum)
		if err != nil {
			return nil, err
		}
		writeEnum(&buf, t, e)
	}
	return format.Source(buf.Bytes())
}

func writeEnum(buf *bytes.Buffer, t target, e *schema.Enum) {
	fmt.Fprintf(buf, "\n// %s\ntype %s int32\n\nconst (\n", t.Doc, t.Type)
	for _, v := range e.Values {
		fmt.Fprintf(buf, "\t%s%s %s = %d\n", t.Prefix, camelCase(v.Name), t.Type, v.Number)
	}
	fmt.Fprintf(buf, ")\n")
}

// camelCase turns LIGHT_BLUE into LightBlue.
func camelCase(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(strings.ToLower(s), "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
