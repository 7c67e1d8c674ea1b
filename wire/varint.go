package wire

import (
	"errors"
	"io"

	"google.golang.org/protobuf/encoding/protowire"
)

const (
	// MaxVarIntLen is ceil(32/7), the longest legal VarInt.
	MaxVarIntLen = 5
	// MaxVarLongLen is ceil(64/7), the longest legal VarLong.
	MaxVarLongLen = 10

	segmentBits = 0x7F
	continueBit = 0x80
)

// VarintDecoder handles VarInt/VarLong decoding operations
type VarintDecoder struct {
	decoder *Decoder
}

// VarintEncoder handles VarInt/VarLong encoding operations
type VarintEncoder struct {
	encoder *Encoder
}

// NewVarintDecoder creates a new varint decoder
func NewVarintDecoder(d *Decoder) *VarintDecoder {
	return &VarintDecoder{decoder: d}
}

// NewVarintEncoder creates a new varint encoder
func NewVarintEncoder(e *Encoder) *VarintEncoder {
	return &VarintEncoder{encoder: e}
}

// ENCODING

// appendGroups emits v as 7-bit groups, least significant first. v is
// already the unsigned bit pattern of the declared width, so the shift
// never sign-extends.
func appendGroups(buf []byte, v uint64) []byte {
	for v&^segmentBits != 0 {
		buf = append(buf, byte(v&segmentBits)|continueBit)
		v >>= 7
	}
	return append(buf, byte(v))
}

// AppendVarInt appends the VarInt encoding of v to buf.
// Negative values always take MaxVarIntLen bytes.
func AppendVarInt(buf []byte, v int32) []byte {
	return appendGroups(buf, uint64(uint32(v)))
}

// AppendVarLong appends the VarLong encoding of v to buf.
// Negative values always take MaxVarLongLen bytes.
func AppendVarLong(buf []byte, v int64) []byte {
	return appendGroups(buf, uint64(v))
}

// VarIntSize returns the number of bytes AppendVarInt would emit for v
func VarIntSize(v int32) int {
	return protowire.SizeVarint(uint64(uint32(v)))
}

// VarLongSize returns the number of bytes AppendVarLong would emit for v
func VarLongSize(v int64) int {
	return protowire.SizeVarint(uint64(v))
}

// DECODING

// decodeGroups accumulates 7-bit groups from data. More than maxLen
// groups is an Overflow naming typ; running out of data is Truncated.
func decodeGroups(data []byte, maxLen int, typ string) (uint64, int, error) {
	var result uint64
	for i := 0; ; i++ {
		if i >= maxLen {
			return 0, 0, OverflowError(typ, typ+" is too large")
		}
		if i >= len(data) {
			return 0, 0, TruncatedError(typ, i+1, len(data))
		}

		b := data[i]
		result |= uint64(b&segmentBits) << (7 * uint(i))

		if b&continueBit == 0 {
			return result, i + 1, nil
		}
	}
}

// DecodeVarInt decodes a VarInt from the front of data and returns the
// value and the number of bytes consumed.
func DecodeVarInt(data []byte) (int32, int, error) {
	v, n, err := decodeGroups(data, MaxVarIntLen, "VarInt")
	if err != nil {
		return 0, 0, err
	}
	return int32(uint32(v)), n, nil
}

// DecodeVarLong decodes a VarLong from the front of data and returns the
// value and the number of bytes consumed.
func DecodeVarLong(data []byte) (int64, int, error) {
	v, n, err := decodeGroups(data, MaxVarLongLen, "VarLong")
	if err != nil {
		return 0, 0, err
	}
	return int64(v), n, nil
}

// readGroups is decodeGroups over a stream. A clean io.EOF before the
// first byte is returned as is so callers can detect end of stream.
func readGroups(r io.ByteReader, maxLen int, typ string) (uint64, error) {
	var result uint64
	for i := 0; ; i++ {
		if i >= maxLen {
			return 0, OverflowError(typ, typ+" is too large")
		}

		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if i == 0 {
					return 0, io.EOF
				}
				e := TruncatedError(typ, i+1, i)
				e.Cause = io.ErrUnexpectedEOF
				return 0, e
			}
			return 0, err
		}

		result |= uint64(b&segmentBits) << (7 * uint(i))

		if b&continueBit == 0 {
			return result, nil
		}
	}
}

// ReadVarInt reads a VarInt from a byte stream
func ReadVarInt(r io.ByteReader) (int32, error) {
	v, err := readGroups(r, MaxVarIntLen, "VarInt")
	if err != nil {
		return 0, err
	}
	return int32(uint32(v)), nil
}

// ReadVarLong reads a VarLong from a byte stream
func ReadVarLong(r io.ByteReader) (int64, error) {
	v, err := readGroups(r, MaxVarLongLen, "VarLong")
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// DECODER METHODS

// DecodeVarInt decodes a VarInt from the current position
func (vd *VarintDecoder) DecodeVarInt() (int32, error) {
	d := vd.decoder
	v, n, err := DecodeVarInt(d.buf[d.pos:])
	if err != nil {
		return 0, err
	}
	d.pos += n
	return v, nil
}

// DecodeVarLong decodes a VarLong from the current position
func (vd *VarintDecoder) DecodeVarLong() (int64, error) {
	d := vd.decoder
	v, n, err := DecodeVarLong(d.buf[d.pos:])
	if err != nil {
		return 0, err
	}
	d.pos += n
	return v, nil
}

// ENCODER METHODS

// EncodeVarInt encodes an int32 as VarInt
func (ve *VarintEncoder) EncodeVarInt(v int32) {
	ve.encoder.buf = AppendVarInt(ve.encoder.buf, v)
}

// EncodeVarLong encodes an int64 as VarLong
func (ve *VarintEncoder) EncodeVarLong(v int64) {
	ve.encoder.buf = AppendVarLong(ve.encoder.buf, v)
}

// Convenience methods for direct access

// DecodeVarInt - convenience method for main decoder
func (d *Decoder) DecodeVarInt() (int32, error) {
	return NewVarintDecoder(d).DecodeVarInt()
}

// DecodeVarLong - convenience method for main decoder
func (d *Decoder) DecodeVarLong() (int64, error) {
	return NewVarintDecoder(d).DecodeVarLong()
}

// EncodeVarInt - convenience method for main encoder
func (e *Encoder) EncodeVarInt(v int32) {
	NewVarintEncoder(e).EncodeVarInt(v)
}

// EncodeVarLong - convenience method for main encoder
func (e *Encoder) EncodeVarLong(v int64) {
	NewVarintEncoder(e).EncodeVarLong(v)
}
