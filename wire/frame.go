package wire

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"go.uber.org/zap"
)

// FrameWriter writes VarInt length-prefixed frames, compressing payloads
// at or above the configured threshold.
type FrameWriter struct {
	w      io.Writer
	config Config
}

// FrameReader reads frames written by a FrameWriter with the same
// compression threshold.
type FrameReader struct {
	r      *bufio.Reader
	config Config
}

// NewFrameWriter creates a frame writer over w
func NewFrameWriter(w io.Writer, c Config) *FrameWriter {
	return &FrameWriter{w: w, config: c}
}

// NewFrameReader creates a frame reader over r
func NewFrameReader(r io.Reader, c Config) *FrameReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &FrameReader{r: br, config: c}
}

func (c Config) compressed() bool {
	return c.CompressionThreshold >= 0
}

// AppendFrame appends one frame carrying payload to buf
func AppendFrame(buf, payload []byte, c Config) ([]byte, error) {
	if err := checkLength("Frame", len(payload)); err != nil {
		return buf, err
	}

	if !c.compressed() {
		if c.MaxFrameLength > 0 && len(payload) > c.MaxFrameLength {
			return buf, OverflowError("Frame", fmt.Sprintf("payload length %d exceeds limit %d", len(payload), c.MaxFrameLength))
		}
		buf = AppendVarInt(buf, int32(len(payload)))
		return append(buf, payload...), nil
	}

	var inner []byte
	if len(payload) < c.CompressionThreshold {
		inner = AppendVarInt(make([]byte, 0, len(payload)+1), 0)
		inner = append(inner, payload...)
	} else {
		var zb bytes.Buffer
		zw := zlib.NewWriter(&zb)
		if _, err := zw.Write(payload); err != nil {
			return buf, fmt.Errorf("failed to compress frame: %w", err)
		}
		if err := zw.Close(); err != nil {
			return buf, fmt.Errorf("failed to compress frame: %w", err)
		}
		Logger().Debug("compressed frame",
			zap.Int("payload", len(payload)),
			zap.Int("compressed", zb.Len()))
		inner = AppendVarInt(make([]byte, 0, zb.Len()+MaxVarIntLen), int32(len(payload)))
		inner = append(inner, zb.Bytes()...)
	}

	if c.MaxFrameLength > 0 && len(inner) > c.MaxFrameLength {
		return buf, OverflowError("Frame", fmt.Sprintf("frame length %d exceeds limit %d", len(inner), c.MaxFrameLength))
	}
	buf = AppendVarInt(buf, int32(len(inner)))
	return append(buf, inner...), nil
}

// WriteFrame writes one frame carrying payload
func (fw *FrameWriter) WriteFrame(payload []byte) error {
	frame, err := AppendFrame(nil, payload, fw.config)
	if err != nil {
		return err
	}
	_, err = fw.w.Write(frame)
	return err
}

// ReadFrame reads one frame and returns its uncompressed payload.
// It returns io.EOF only when the stream ends on a frame boundary.
func (fr *FrameReader) ReadFrame() ([]byte, error) {
	length, err := ReadVarInt(fr.r)
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, OverflowError("Frame", fmt.Sprintf("negative frame length %d", length))
	}
	if fr.config.MaxFrameLength > 0 && int(length) > fr.config.MaxFrameLength {
		return nil, OverflowError("Frame", fmt.Sprintf("frame length %d exceeds limit %d", length, fr.config.MaxFrameLength))
	}

	body := make([]byte, length)
	if n, err := io.ReadFull(fr.r, body); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			e := TruncatedError("Frame", int(length), n)
			e.Cause = io.ErrUnexpectedEOF
			return nil, e
		}
		return nil, err
	}

	if !fr.config.compressed() {
		return body, nil
	}
	return fr.inflate(body)
}

// inflate unpacks the data-length header of a compressed-mode frame
func (fr *FrameReader) inflate(body []byte) ([]byte, error) {
	dataLength, n, err := DecodeVarInt(body)
	if err != nil {
		return nil, WithField(err, "data length")
	}
	rest := body[n:]
	if dataLength == 0 {
		return rest, nil
	}
	if dataLength < 0 {
		return nil, OverflowError("Frame", fmt.Sprintf("negative data length %d", dataLength))
	}
	if int(dataLength) < fr.config.CompressionThreshold {
		return nil, InvalidDataError("Frame", fmt.Sprintf("compressed data length %d below threshold %d", dataLength, fr.config.CompressionThreshold))
	}
	if fr.config.MaxDecompressedLength > 0 && int(dataLength) > fr.config.MaxDecompressedLength {
		return nil, OverflowError("Frame", fmt.Sprintf("data length %d exceeds limit %d", dataLength, fr.config.MaxDecompressedLength))
	}

	zr, err := zlib.NewReader(bytes.NewReader(rest))
	if err != nil {
		return nil, &Error{Kind: KindInvalidData, Type: "Frame", Detail: "bad zlib stream", Cause: err}
	}
	defer zr.Close()

	out := make([]byte, dataLength)
	if _, err := io.ReadFull(zr, out); err != nil {
		return nil, &Error{Kind: KindInvalidData, Type: "Frame", Detail: "decompressed size mismatch", Cause: err}
	}
	var extra [1]byte
	if n, _ := zr.Read(extra[:]); n > 0 {
		return nil, InvalidDataError("Frame", fmt.Sprintf("decompressed data longer than declared %d bytes", dataLength))
	}
	return out, nil
}
