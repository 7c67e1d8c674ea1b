package wire

import (
	"fmt"
	"strings"
)

// Kind categorizes a codec error
type Kind string

const (
	KindTruncated                Kind = "truncated"          // fewer bytes than required
	KindOverflow                 Kind = "overflow"           // value or length exceeds its type
	KindInvalidUTF8              Kind = "invalid_utf8"       // text is not UTF-8
	KindInvalidEnumOrdinal       Kind = "invalid_enum"       // raw value outside a closed enum
	KindInvalidIdentifierGrammar Kind = "invalid_identifier" // wrong colon count
	KindUnionExhausted           Kind = "union_exhausted"    // both arms of a OneOf failed
	KindInvalidData              Kind = "invalid_data"       // structurally valid but unusable input
)

// Sentinels for errors.Is. Matching is by Kind only.
var (
	ErrTruncated                = &Error{Kind: KindTruncated}
	ErrOverflow                 = &Error{Kind: KindOverflow}
	ErrInvalidUTF8              = &Error{Kind: KindInvalidUTF8}
	ErrInvalidEnumOrdinal       = &Error{Kind: KindInvalidEnumOrdinal}
	ErrInvalidIdentifierGrammar = &Error{Kind: KindInvalidIdentifierGrammar}
	ErrUnionExhausted           = &Error{Kind: KindUnionExhausted}
	ErrInvalidData              = &Error{Kind: KindInvalidData}
)

// Error is the structured error returned by every codec in this module.
type Error struct {
	Kind   Kind
	Type   string // concrete type being decoded, e.g. "VarInt"
	Value  any    // offending raw value, if any
	Detail string
	Cause  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Type != "" {
		b.WriteString(" (")
		b.WriteString(e.Type)
		b.WriteByte(')')
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// TruncatedError reports that need bytes were required but only have were available.
func TruncatedError(typ string, need, have int) *Error {
	return &Error{
		Kind:   KindTruncated,
		Type:   typ,
		Detail: fmt.Sprintf("need %d bytes, have %d", need, have),
	}
}

// OverflowError reports a value or length that cannot be represented.
func OverflowError(typ, detail string) *Error {
	return &Error{Kind: KindOverflow, Type: typ, Detail: detail}
}

// UTF8Error reports text that failed UTF-8 validation.
func UTF8Error(typ string, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Kind:   KindInvalidUTF8,
		Type:   typ,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// EnumOrdinalError reports a raw value that does not map to a member of enum.
func EnumOrdinalError(enum string, value int64) *Error {
	return &Error{
		Kind:   KindInvalidEnumOrdinal,
		Type:   enum,
		Value:  value,
		Detail: fmt.Sprintf("invalid %s ordinal %d", enum, value),
	}
}

// IdentifierError reports an identifier with more than one colon.
func IdentifierError(input string) *Error {
	return &Error{
		Kind:   KindInvalidIdentifierGrammar,
		Type:   "Identifier",
		Value:  input,
		Detail: fmt.Sprintf("invalid identifier %q", input),
	}
}

// UnionError reports that neither arm of a union decoded. cause is the
// error of the second arm.
func UnionError(typ string, cause error) *Error {
	return &Error{Kind: KindUnionExhausted, Type: typ, Cause: cause}
}

// InvalidDataError reports input that decoded but cannot be used.
func InvalidDataError(typ, detail string) *Error {
	return &Error{Kind: KindInvalidData, Type: typ, Detail: detail}
}

// FieldError represents a decoding error with a record/field path.
type FieldError struct {
	FieldPath []string // e.g., ["Variant", "pattern_color"]
	Err       error    // underlying error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if len(e.FieldPath) == 0 {
		return e.Err.Error()
	}

	return fmt.Sprintf("error at field %s: %v", strings.Join(e.FieldPath, "."), e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for compatibility.
func (e *FieldError) Is(target error) bool {
	_, ok := target.(*FieldError)
	return ok
}

// WithField prefixes err with a field name. Nested calls build the path
// outermost first.
func WithField(err error, fieldName string) error {
	if err == nil {
		return nil
	}

	if fe, ok := err.(*FieldError); ok {
		return &FieldError{
			FieldPath: append([]string{fieldName}, fe.FieldPath...),
			Err:       fe.Err,
		}
	}

	return &FieldError{
		FieldPath: []string{fieldName},
		Err:       err,
	}
}
