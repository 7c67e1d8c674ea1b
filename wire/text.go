package wire

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// TextDecoder handles VarInt length-prefixed string and byte array decoding
type TextDecoder struct {
	decoder *Decoder
}

// TextEncoder handles VarInt length-prefixed string and byte array encoding
type TextEncoder struct {
	encoder *Encoder
}

// NewTextDecoder creates a new text decoder
func NewTextDecoder(d *Decoder) *TextDecoder {
	return &TextDecoder{decoder: d}
}

// NewTextEncoder creates a new text encoder
func NewTextEncoder(e *Encoder) *TextEncoder {
	return &TextEncoder{encoder: e}
}

// checkLength rejects lengths that cannot be written as a VarInt count
func checkLength(typ string, n int) error {
	if n > math.MaxInt32 {
		return OverflowError(typ, fmt.Sprintf("length %d does not fit in a VarInt", n))
	}
	return nil
}

// AppendString appends the VarInt byte length of s followed by its bytes
func AppendString(buf []byte, s string) ([]byte, error) {
	if err := checkLength("String", len(s)); err != nil {
		return buf, err
	}
	buf = AppendVarInt(buf, int32(len(s)))
	return append(buf, s...), nil
}

// DecodeString decodes a length-prefixed UTF-8 string from the front of
// data with no length limit, returning the string and bytes consumed.
func DecodeString(data []byte) (string, int, error) {
	d := NewDecoder(data)
	s, err := NewTextDecoder(d).DecodeString()
	if err != nil {
		return "", 0, err
	}
	return s, d.Pos(), nil
}

// DECODER METHODS

// decodeLength reads a VarInt length prefix and validates it against the
// configured limit.
func (td *TextDecoder) decodeLength(typ string, limit int) (int, error) {
	length, err := td.decoder.DecodeVarInt()
	if err != nil {
		return 0, WithField(err, typ+" length")
	}
	if length < 0 {
		return 0, OverflowError(typ, fmt.Sprintf("negative length %d", length))
	}
	if limit > 0 && int(length) > limit {
		return 0, OverflowError(typ, fmt.Sprintf("length %d exceeds limit %d", length, limit))
	}
	return int(length), nil
}

// DecodeString decodes a length-prefixed UTF-8 string. The length counts
// bytes, not characters. A failed decode leaves the position unchanged.
func (td *TextDecoder) DecodeString() (string, error) {
	start := td.decoder.pos
	length, err := td.decodeLength("String", td.decoder.config.MaxTextLength)
	if err != nil {
		td.decoder.pos = start
		return "", err
	}

	data, err := td.decoder.take(length, "String")
	if err != nil {
		td.decoder.pos = start
		return "", err
	}
	if !utf8.Valid(data) {
		td.decoder.pos = start
		return "", UTF8Error("String", data)
	}
	return string(data), nil
}

// DecodeBytes decodes a length-prefixed byte array into a fresh slice.
// A failed decode leaves the position unchanged.
func (td *TextDecoder) DecodeBytes() ([]byte, error) {
	start := td.decoder.pos
	length, err := td.decodeLength("ByteArray", td.decoder.config.MaxFrameLength)
	if err != nil {
		td.decoder.pos = start
		return nil, err
	}

	data, err := td.decoder.take(length, "ByteArray")
	if err != nil {
		td.decoder.pos = start
		return nil, err
	}

	// Copy the data to avoid sharing the underlying buffer
	out := make([]byte, length)
	copy(out, data)
	return out, nil
}

// ENCODER METHODS

// EncodeString encodes s as VarInt byte length followed by its bytes
func (te *TextEncoder) EncodeString(s string) error {
	buf, err := AppendString(te.encoder.buf, s)
	if err != nil {
		return err
	}
	te.encoder.buf = buf
	return nil
}

// EncodeBytes encodes data as VarInt length followed by the bytes
func (te *TextEncoder) EncodeBytes(data []byte) error {
	if err := checkLength("ByteArray", len(data)); err != nil {
		return err
	}
	te.encoder.buf = AppendVarInt(te.encoder.buf, int32(len(data)))
	te.encoder.buf = append(te.encoder.buf, data...)
	return nil
}

// UTILITY FUNCTIONS

// StringSize returns the size needed to encode the given string
func StringSize(s string) int {
	return VarIntSize(int32(len(s))) + len(s)
}

// Convenience methods for direct access

// DecodeString - convenience method for main decoder
func (d *Decoder) DecodeString() (string, error) {
	return NewTextDecoder(d).DecodeString()
}

// DecodeBytes - convenience method for main decoder
func (d *Decoder) DecodeBytes() ([]byte, error) {
	return NewTextDecoder(d).DecodeBytes()
}

// EncodeString - convenience method for main encoder
func (e *Encoder) EncodeString(s string) error {
	return NewTextEncoder(e).EncodeString(s)
}

// EncodeBytes - convenience method for main encoder
func (e *Encoder) EncodeBytes(data []byte) error {
	return NewTextEncoder(e).EncodeBytes(data)
}
