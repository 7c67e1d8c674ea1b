// Package transcode converts between single wire primitives and the
// richer values they carry.
//
// Every transcoder is a pair of pure functions. Where a value has more
// than one legal document shape, decoding goes through oneof and
// encoding always emits one canonical shape:
//
//	ARGB            uint32 or [a, r, g, b] floats     -> floats
//	Rotation        [x, y, z, w] or {angle, axis}    -> [x, y, z, w]
//	Transformation  16-float column-major matrix or
//	                {right_rotation, scale, ...}      -> structured
//
// Packed layouts validate each bit range against a closed enum from the
// registry and report the first range that is out of its domain.
package transcode

//go:generate go run ../cmd/enumgen -o enums_gen.go
