package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/anirudhraja/mcwire"
	"github.com/anirudhraja/mcwire/codec"
	"github.com/anirudhraja/mcwire/oneof"
	"github.com/anirudhraja/mcwire/registry"
	"github.com/anirudhraja/mcwire/resource"
	"github.com/anirudhraja/mcwire/transcode"
	"github.com/anirudhraja/mcwire/wire"
)

func main() {
	var configPath, enumsPath string
	var threshold int
	var verbose bool

	flags := pflag.NewFlagSet("sampleapp", pflag.ExitOnError)
	flags.StringVarP(&configPath, "config", "c", "", "YAML file with wire limits")
	flags.StringVar(&enumsPath, "enums", "", ".proto file or directory with extra enum declarations")
	flags.IntVar(&threshold, "threshold", 64, "frame compression threshold (-1 disables compression)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log decoder fallbacks and compression at debug level")
	if err := flags.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("Failed to create logger: %v", err)
		}
		defer logger.Sync()
		mcwire.SetLogger(logger)
	}

	config, err := mcwire.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if flags.Changed("threshold") || configPath == "" {
		config.CompressionThreshold = threshold
	}

	reg, err := registry.NewBuiltinRegistry()
	if err != nil {
		log.Fatalf("Failed to load builtin enums: %v", err)
	}
	m, err := mcwire.NewWithRegistry(reg, config)
	if err != nil {
		log.Fatalf("Failed to create mcwire: %v", err)
	}
	if enumsPath != "" {
		if err := m.LoadEnums(enumsPath); err != nil {
			log.Fatalf("Failed to load %s: %v", enumsPath, err)
		}
	}

	fmt.Println("🚀 MCWire Sample App")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("✅ Loaded enums: %v\n", m.ListEnums())

	demonstrateStream(m)
	demonstrateFrames(m)
	demonstratePackedFields(m)
	demonstrateDocuments(m)
	demonstrateCommandText()

	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Println("🎉 Done")
}

func section(title string) {
	fmt.Println("\n" + strings.Repeat("-", 70))
	fmt.Println(title)
	fmt.Println(strings.Repeat("-", 70))
}

func demonstrateStream(m *mcwire.MCWire) {
	section("📤 Stream primitives")

	e := wire.NewEncoder()
	e.EncodeVarInt(25565)
	e.EncodeVarLong(-1)
	if err := e.EncodeString("minecraft:diamond_sword"); err != nil {
		log.Fatalf("Failed to encode string: %v", err)
	}
	e.Fixed().EncodeFloat64(64.5)
	e.Fixed().EncodeBool(true)
	fmt.Printf("Encoded %d bytes: %s\n", e.Len(), hex.EncodeToString(e.Bytes()))

	d := m.NewDecoder(e.Bytes())
	port, err := d.DecodeVarInt()
	if err != nil {
		log.Fatalf("Failed to decode VarInt: %v", err)
	}
	long, err := d.DecodeVarLong()
	if err != nil {
		log.Fatalf("Failed to decode VarLong: %v", err)
	}
	text, err := d.DecodeString()
	if err != nil {
		log.Fatalf("Failed to decode string: %v", err)
	}
	y, err := d.Fixed().DecodeFloat64()
	if err != nil {
		log.Fatalf("Failed to decode double: %v", err)
	}
	onGround, err := d.Fixed().DecodeBool()
	if err != nil {
		log.Fatalf("Failed to decode bool: %v", err)
	}
	fmt.Printf("VarInt=%d VarLong=%d String=%q Double=%v Bool=%v\n", port, long, text, y, onGround)

	// Six continuation groups never form a VarInt
	if _, _, err := wire.DecodeVarInt([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}); err != nil {
		fmt.Printf("❌ Expected failure: %v\n", err)
	}
	if _, err := m.NewDecoder([]byte{0x05, 'a', 'b'}).DecodeString(); err != nil {
		fmt.Printf("❌ Expected failure: %v\n", err)
	}
}

func demonstrateFrames(m *mcwire.MCWire) {
	section(fmt.Sprintf("📦 Frames (compression threshold %d)", m.Config().CompressionThreshold))

	payloads := [][]byte{
		[]byte("keep alive"),
		bytes.Repeat([]byte("chunk section "), 64),
	}

	var stream bytes.Buffer
	w := m.NewFrameWriter(&stream)
	for _, p := range payloads {
		if err := w.WriteFrame(p); err != nil {
			log.Fatalf("Failed to write frame: %v", err)
		}
	}
	fmt.Printf("Wrote %d payload bytes as %d stream bytes\n", len(payloads[0])+len(payloads[1]), stream.Len())

	r := m.NewFrameReader(&stream)
	for range payloads {
		p, err := r.ReadFrame()
		if err != nil {
			log.Fatalf("Failed to read frame: %v", err)
		}
		fmt.Printf("✅ Read frame of %d bytes\n", len(p))
	}
}

func demonstratePackedFields(m *mcwire.MCWire) {
	section("🐴 Packed fields")

	packed, err := m.EncodeHorseColors(transcode.HorseColors{
		Color:    transcode.HorseChestnut,
		Markings: transcode.MarkingsWhiteDots,
	})
	if err != nil {
		log.Fatalf("Failed to encode horse colors: %v", err)
	}
	horse, err := m.DecodeHorseColors(packed)
	if err != nil {
		log.Fatalf("Failed to decode horse colors: %v", err)
	}
	fmt.Printf("Horse variant %#04x -> %+v\n", packed, horse)

	fish := transcode.TropicalFishVariant{
		Pattern:      transcode.PatternGlitter,
		BaseColor:    transcode.DyeOrange,
		PatternColor: transcode.DyeGray,
	}
	v, err := m.EncodeTropicalFish(fish)
	if err != nil {
		log.Fatalf("Failed to encode tropical fish: %v", err)
	}
	fish, err = m.DecodeTropicalFish(v)
	if err != nil {
		log.Fatalf("Failed to decode tropical fish: %v", err)
	}
	fmt.Printf("Tropical fish variant %#08x -> %+v (size %d, shape %d)\n", v, fish, fish.Pattern.Size(), fish.Pattern.Shape())

	if _, err := m.DecodeHorseColors(0x0509); err != nil {
		fmt.Printf("❌ Expected failure: %v\n", err)
	}

	pair, err := m.PackedPair("GameMode", "GameType", "Face")
	if err != nil {
		log.Fatalf("Failed to build packed pair: %v", err)
	}
	raw, err := pair.Encode(2, 5)
	if err != nil {
		log.Fatalf("Failed to encode packed pair: %v", err)
	}
	fmt.Printf("%s(%s, %s) = %#04x\n", pair.Name, pair.Fields[0].Name, pair.Fields[1].Name, raw)
}

func demonstrateDocuments(m *mcwire.MCWire) {
	section("📄 Documents")

	color := transcode.ARGBFrom(oneof.Left[uint32, [4]float32](0x80FF8000))
	fmt.Printf("ARGB from packed: %+v\n", color)

	rot := transcode.RotationFrom(oneof.Right[[4]float32](transcode.AngleAxis{
		Angle: 1.5707964,
		Axis:  [3]float32{0, 1, 0},
	}))
	fmt.Printf("Rotation from angle-axis: %v\n", rot)

	tr, err := transcode.TransformationFromMatrix([16]float32{
		2, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 2, 0,
		4, 5, 6, 1,
	})
	if err != nil {
		log.Fatalf("Failed to decompose matrix: %v", err)
	}
	fmt.Printf("Transformation from matrix: %+v\n", tr)

	record, err := m.MarshalRecord(
		map[string]any{"id": resource.Minecraft("item_display")},
		map[string]any{"transformation": tr, "glow_color": color},
	)
	if err != nil {
		log.Fatalf("Failed to marshal record: %v", err)
	}
	diag, err := codec.Diagnose(record)
	if err != nil {
		log.Fatalf("Failed to diagnose record: %v", err)
	}
	fmt.Printf("Record (%d bytes): %s\n", len(record), diag)

	var singular [16]float32
	if _, err := transcode.TransformationFromMatrix(singular); err != nil {
		fmt.Printf("❌ Expected failure: %v\n", err)
	}
}

func demonstrateCommandText() {
	section("🔤 Command text")

	for _, s := range []string{"stone", "mymod:blocks/ruby", "a:b:c"} {
		id, err := resource.ParseIdentifier(s)
		if err != nil {
			fmt.Printf("❌ %q: %v\n", s, err)
			continue
		}
		fmt.Printf("✅ %q -> namespace=%s path=%s\n", s, id.Namespace, id.Path)
	}

	coords, err := resource.ParseCoordinates("~ ~1.5 ^-2")
	if err != nil {
		log.Fatalf("Failed to parse coordinates: %v", err)
	}
	fmt.Printf("Coordinates: %s\n", coords)

	sel, err := resource.ParseSelector("@e")
	if err != nil {
		log.Fatalf("Failed to parse selector: %v", err)
	}
	fmt.Printf("Selector: %s\n", sel)
}
