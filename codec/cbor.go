package codec

import (
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// encMode writes entity and world records. A record with the same
// fields always encodes to the same bytes, so MergeFields output can be
// compared and hashed directly.
var encMode cbor.EncMode

// decMode reads records. Keys a part does not declare are skipped, which
// is what lets SplitFields hand one flat map to every part and lets each
// OneOf arm look only at its own keys.
var decMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	// Identifiers and selectors serialize as text strings via MarshalText.
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Documents only use string keys; any-typed targets get
		// map[string]any rather than map[interface{}]interface{}.
		DefaultMapType:  reflect.TypeOf(map[string]any(nil)),
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes a record part or a transcoded value.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes a record part or a transcoded value. Types with more
// than one document shape see the raw item in their UnmarshalCBOR.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// Encoder writes a sequence of records to one stream.
type Encoder = cbor.Encoder

// Decoder reads records written by an Encoder.
type Decoder = cbor.Decoder

// RawMessage holds one undecoded document item, such as the axis of an
// angle-axis rotation, until its arm knows what length to expect.
type RawMessage = cbor.RawMessage

// NewEncoder returns an Encoder with the record settings of Marshal.
func NewEncoder(w io.Writer) *Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder returns a Decoder with the record settings of Unmarshal.
func NewDecoder(r io.Reader) *Decoder {
	return decMode.NewDecoder(r)
}

// Diagnose renders an encoded record as text for logs and the sample app.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
