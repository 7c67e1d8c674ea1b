package wire

import (
	"encoding/binary"
	"math"
)

// FixedDecoder handles big-endian fixed-width decoding operations
type FixedDecoder struct {
	decoder *Decoder
}

// FixedEncoder handles big-endian fixed-width encoding operations
type FixedEncoder struct {
	encoder *Encoder
}

// NewFixedDecoder creates a new fixed decoder
func NewFixedDecoder(d *Decoder) *FixedDecoder {
	return &FixedDecoder{decoder: d}
}

// NewFixedEncoder creates a new fixed encoder
func NewFixedEncoder(e *Encoder) *FixedEncoder {
	return &FixedEncoder{encoder: e}
}

// DECODER METHODS

// DecodeBool decodes a single byte; any non-zero value is true
func (fd *FixedDecoder) DecodeBool() (bool, error) {
	b, err := fd.decoder.take(1, "bool")
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

// DecodeInt8 decodes a signed byte
func (fd *FixedDecoder) DecodeInt8() (int8, error) {
	b, err := fd.decoder.take(1, "int8")
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

// DecodeUint8 decodes an unsigned byte
func (fd *FixedDecoder) DecodeUint8() (uint8, error) {
	b, err := fd.decoder.take(1, "uint8")
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// DecodeInt16 decodes a big-endian int16
func (fd *FixedDecoder) DecodeInt16() (int16, error) {
	v, err := fd.DecodeUint16()
	return int16(v), err
}

// DecodeUint16 decodes a big-endian uint16
func (fd *FixedDecoder) DecodeUint16() (uint16, error) {
	b, err := fd.decoder.take(2, "uint16")
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// DecodeInt32 decodes a big-endian int32
func (fd *FixedDecoder) DecodeInt32() (int32, error) {
	v, err := fd.DecodeUint32()
	return int32(v), err
}

// DecodeUint32 decodes a big-endian uint32
func (fd *FixedDecoder) DecodeUint32() (uint32, error) {
	b, err := fd.decoder.take(4, "uint32")
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// DecodeInt64 decodes a big-endian int64
func (fd *FixedDecoder) DecodeInt64() (int64, error) {
	v, err := fd.DecodeUint64()
	return int64(v), err
}

// DecodeUint64 decodes a big-endian uint64
func (fd *FixedDecoder) DecodeUint64() (uint64, error) {
	b, err := fd.decoder.take(8, "uint64")
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// DecodeFloat32 decodes a big-endian IEEE 754 float32
func (fd *FixedDecoder) DecodeFloat32() (float32, error) {
	v, err := fd.DecodeUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// DecodeFloat64 decodes a big-endian IEEE 754 float64
func (fd *FixedDecoder) DecodeFloat64() (float64, error) {
	v, err := fd.DecodeUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ENCODER METHODS

// EncodeBool encodes a bool as 0x01 or 0x00
func (fe *FixedEncoder) EncodeBool(v bool) {
	if v {
		fe.EncodeUint8(1)
	} else {
		fe.EncodeUint8(0)
	}
}

// EncodeInt8 encodes a signed byte
func (fe *FixedEncoder) EncodeInt8(v int8) {
	fe.EncodeUint8(uint8(v))
}

// EncodeUint8 encodes an unsigned byte
func (fe *FixedEncoder) EncodeUint8(v uint8) {
	fe.encoder.buf = append(fe.encoder.buf, v)
}

// EncodeInt16 encodes a big-endian int16
func (fe *FixedEncoder) EncodeInt16(v int16) {
	fe.EncodeUint16(uint16(v))
}

// EncodeUint16 encodes a big-endian uint16
func (fe *FixedEncoder) EncodeUint16(v uint16) {
	fe.encoder.buf = binary.BigEndian.AppendUint16(fe.encoder.buf, v)
}

// EncodeInt32 encodes a big-endian int32
func (fe *FixedEncoder) EncodeInt32(v int32) {
	fe.EncodeUint32(uint32(v))
}

// EncodeUint32 encodes a big-endian uint32
func (fe *FixedEncoder) EncodeUint32(v uint32) {
	fe.encoder.buf = binary.BigEndian.AppendUint32(fe.encoder.buf, v)
}

// EncodeInt64 encodes a big-endian int64
func (fe *FixedEncoder) EncodeInt64(v int64) {
	fe.EncodeUint64(uint64(v))
}

// EncodeUint64 encodes a big-endian uint64
func (fe *FixedEncoder) EncodeUint64(v uint64) {
	fe.encoder.buf = binary.BigEndian.AppendUint64(fe.encoder.buf, v)
}

// EncodeFloat32 encodes a big-endian IEEE 754 float32
func (fe *FixedEncoder) EncodeFloat32(v float32) {
	fe.EncodeUint32(math.Float32bits(v))
}

// EncodeFloat64 encodes a big-endian IEEE 754 float64
func (fe *FixedEncoder) EncodeFloat64(v float64) {
	fe.EncodeUint64(math.Float64bits(v))
}

// Convenience methods for direct access

// Fixed - returns the fixed-width decoder for d
func (d *Decoder) Fixed() *FixedDecoder {
	return NewFixedDecoder(d)
}

// Fixed - returns the fixed-width encoder for e
func (e *Encoder) Fixed() *FixedEncoder {
	return NewFixedEncoder(e)
}
