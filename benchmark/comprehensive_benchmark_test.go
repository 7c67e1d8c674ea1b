package benchmark

import (
	"bytes"
	"io"
	"math/rand"
	"strings"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/anirudhraja/mcwire"
	"github.com/anirudhraja/mcwire/codec"
	"github.com/anirudhraja/mcwire/transcode"
	"github.com/anirudhraja/mcwire/wire"
)

var (
	mcw *mcwire.MCWire

	varLongValues []int64
	varLongStream []byte

	textPayload []byte

	smallPayload []byte
	largePayload []byte

	transformDoc []byte
	matrixDoc    []byte
)

func init() {
	setupBenchmarkData()
}

func setupBenchmarkData() {
	var err error

	mcw, err = mcwire.New()
	if err != nil {
		panic("Failed to create mcwire: " + err.Error())
	}

	rng := rand.New(rand.NewSource(42))
	varLongValues = make([]int64, 1024)
	for i := range varLongValues {
		// Mix of short and full-width encodings
		if i%4 == 0 {
			varLongValues[i] = int64(rng.Uint64())
		} else {
			varLongValues[i] = rng.Int63n(1 << 14)
		}
		varLongStream = wire.AppendVarLong(varLongStream, varLongValues[i])
	}

	e := wire.NewEncoder()
	for i := 0; i < 64; i++ {
		if err := e.EncodeString("minecraft:block/oak_planks_" + strings.Repeat("x", i)); err != nil {
			panic("Failed to create text payload: " + err.Error())
		}
	}
	textPayload = e.Bytes()

	smallPayload = bytes.Repeat([]byte{0x2a}, 32)
	largePayload = bytes.Repeat([]byte("chunk section palette "), 512)

	transformDoc, err = codec.Marshal(transcode.IdentityTransformation)
	if err != nil {
		panic("Failed to create transform document: " + err.Error())
	}
	matrixDoc, err = codec.Marshal([16]float32{
		2, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 2, 0,
		1, 2, 3, 1,
	})
	if err != nil {
		panic("Failed to create matrix document: " + err.Error())
	}
}

// ===== VARINT BENCHMARKS =====

func BenchmarkVarLong_Append_MCWire(b *testing.B) {
	buf := make([]byte, 0, len(varLongStream))
	b.ReportMetric(float64(len(varLongStream)), "payload_bytes")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		buf = buf[:0]
		for _, v := range varLongValues {
			buf = wire.AppendVarLong(buf, v)
		}
	}
}

func BenchmarkVarLong_Append_Protowire(b *testing.B) {
	buf := make([]byte, 0, len(varLongStream))
	b.ReportMetric(float64(len(varLongStream)), "payload_bytes")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		buf = buf[:0]
		for _, v := range varLongValues {
			buf = protowire.AppendVarint(buf, uint64(v))
		}
	}
}

func BenchmarkVarLong_Decode_MCWire(b *testing.B) {
	b.ReportMetric(float64(len(varLongStream)), "payload_bytes")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		data := varLongStream
		for len(data) > 0 {
			_, n, err := wire.DecodeVarLong(data)
			if err != nil {
				b.Fatal(err)
			}
			data = data[n:]
		}
	}
}

func BenchmarkVarLong_Decode_Protowire(b *testing.B) {
	b.ReportMetric(float64(len(varLongStream)), "payload_bytes")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		data := varLongStream
		for len(data) > 0 {
			_, n := protowire.ConsumeVarint(data)
			if n < 0 {
				b.Fatal(protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
}

// ===== TEXT BENCHMARKS =====

func BenchmarkText_Decode(b *testing.B) {
	b.ReportMetric(float64(len(textPayload)), "payload_bytes")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		d := mcw.NewDecoder(textPayload)
		for !d.Done() {
			if _, err := d.DecodeString(); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// ===== FRAME BENCHMARKS =====

func benchmarkFrames(b *testing.B, payload []byte, threshold int) {
	c := wire.DefaultConfig()
	c.CompressionThreshold = threshold

	frame, err := wire.AppendFrame(nil, payload, c)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportMetric(float64(len(frame)), "frame_bytes")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fr := wire.NewFrameReader(bytes.NewReader(frame), c)
		if _, err := fr.ReadFrame(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFrame_Small_Uncompressed(b *testing.B)   { benchmarkFrames(b, smallPayload, -1) }
func BenchmarkFrame_Small_BelowThreshold(b *testing.B) { benchmarkFrames(b, smallPayload, 256) }
func BenchmarkFrame_Large_Uncompressed(b *testing.B)   { benchmarkFrames(b, largePayload, -1) }
func BenchmarkFrame_Large_Compressed(b *testing.B)     { benchmarkFrames(b, largePayload, 256) }

// ===== DOCUMENT BENCHMARKS =====

func BenchmarkTransformation_Structured(b *testing.B) {
	b.ReportMetric(float64(len(transformDoc)), "payload_bytes")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var tr transcode.Transformation
		if err := mcw.Unmarshal(transformDoc, &tr); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTransformation_Matrix(b *testing.B) {
	b.ReportMetric(float64(len(matrixDoc)), "payload_bytes")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var tr transcode.Transformation
		if err := mcw.Unmarshal(matrixDoc, &tr); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHorseColors_Decode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := mcw.DecodeHorseColors(int32(i%7 | (i%5)<<8)); err != nil {
			b.Fatal(err)
		}
	}
}

// TestBenchmarkVerification checks that the benchmarked paths agree
// before their timings are compared.
func TestBenchmarkVerification(t *testing.T) {
	var ours, theirs []byte
	for _, v := range varLongValues {
		ours = wire.AppendVarLong(ours, v)
		theirs = protowire.AppendVarint(theirs, uint64(v))
	}
	if !bytes.Equal(ours, theirs) {
		t.Fatal("VarLong encodings differ from protowire")
	}

	data := varLongStream
	for i, want := range varLongValues {
		got, n, err := wire.DecodeVarLong(data)
		if err != nil {
			t.Fatalf("value %d: %v", i, err)
		}
		if got != want {
			t.Fatalf("value %d: got %d, want %d", i, got, want)
		}
		data = data[n:]
	}

	c := wire.DefaultConfig()
	c.CompressionThreshold = 256
	var stream bytes.Buffer
	fw := wire.NewFrameWriter(&stream, c)
	for _, p := range [][]byte{smallPayload, largePayload} {
		if err := fw.WriteFrame(p); err != nil {
			t.Fatal(err)
		}
	}
	if stream.Len() >= len(largePayload) {
		t.Errorf("large payload was not compressed: %d bytes", stream.Len())
	}
	fr := wire.NewFrameReader(&stream, c)
	for _, want := range [][]byte{smallPayload, largePayload} {
		got, err := fr.ReadFrame()
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("frame payload mismatch: %d bytes, want %d", len(got), len(want))
		}
	}
	if _, err := fr.ReadFrame(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}

	var tr transcode.Transformation
	if err := mcw.Unmarshal(matrixDoc, &tr); err != nil {
		t.Fatal(err)
	}
	if tr.Scale != [3]float32{2, 2, 2} || tr.Translation != [3]float32{1, 2, 3} {
		t.Errorf("unexpected transformation %+v", tr)
	}
}
