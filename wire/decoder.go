package wire

// Decoder handles low-level protocol decoding over an owned byte slice.
// A Decoder is not safe for concurrent use; create one per buffer.
type Decoder struct {
	buf    []byte
	pos    int
	config Config
}

// NewDecoder creates a new wire format decoder with the default config
func NewDecoder(data []byte) *Decoder {
	return NewDecoderWithConfig(data, DefaultConfig())
}

// NewDecoderWithConfig creates a decoder that enforces the limits in c
func NewDecoderWithConfig(data []byte, c Config) *Decoder {
	return &Decoder{
		buf:    data,
		pos:    0,
		config: c,
	}
}

// Pos returns the number of bytes consumed so far
func (d *Decoder) Pos() int {
	return d.pos
}

// Remaining returns the number of unread bytes
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

// Done reports whether every byte has been consumed
func (d *Decoder) Done() bool {
	return d.pos >= len(d.buf)
}

// take consumes exactly n bytes, or fails with a Truncated error naming typ.
// The returned slice shares the decoder's buffer.
func (d *Decoder) take(n int, typ string) ([]byte, error) {
	if n > d.Remaining() {
		return nil, TruncatedError(typ, n, d.Remaining())
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}
