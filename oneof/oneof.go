// Package oneof implements an untagged two-shape value with an ordered
// resolution policy.
//
// A OneOf[L, R] holds either an L or an R. Nothing on the wire says which;
// decoding tries L first and falls back to R. When both fail the error is
// a UnionExhausted error carrying R's cause. L's error is dropped. When the
// same input is valid for both shapes, L is chosen, always.
//
// Encoding is directed: whichever arm the value holds is encoded as-is.
package oneof

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/anirudhraja/mcwire/wire"
)

// OneOf is either an L or an R. The zero value holds the zero L.
type OneOf[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left returns a OneOf holding v in the left arm.
func Left[L, R any](v L) OneOf[L, R] {
	return OneOf[L, R]{left: v}
}

// Right returns a OneOf holding v in the right arm.
func Right[L, R any](v R) OneOf[L, R] {
	return OneOf[L, R]{right: v, isRight: true}
}

// IsLeft reports whether o holds an L.
func (o OneOf[L, R]) IsLeft() bool {
	return !o.isRight
}

// LeftValue returns the L value and whether o holds one.
func (o OneOf[L, R]) LeftValue() (L, bool) {
	return o.left, !o.isRight
}

// RightValue returns the R value and whether o holds one.
func (o OneOf[L, R]) RightValue() (R, bool) {
	return o.right, o.isRight
}

func (o OneOf[L, R]) String() string {
	if o.isRight {
		return fmt.Sprintf("Right(%v)", o.right)
	}
	return fmt.Sprintf("Left(%v)", o.left)
}

// Match collapses o to a T by calling the function for the arm it holds.
func Match[L, R, T any](o OneOf[L, R], onLeft func(L) T, onRight func(R) T) T {
	if o.isRight {
		return onRight(o.right)
	}
	return onLeft(o.left)
}

// Resolve runs decodeL and, only if it fails, decodeR. typ names the
// union in the returned error.
func Resolve[L, R any](typ string, decodeL func() (L, error), decodeR func() (R, error)) (OneOf[L, R], error) {
	l, errL := decodeL()
	if errL == nil {
		return Left[L, R](l), nil
	}

	r, errR := decodeR()
	if errR != nil {
		return OneOf[L, R]{}, wire.UnionError(typ, errR)
	}

	wire.Logger().Debug("union resolved to right arm",
		zap.String("type", typ),
		zap.NamedError("left_error", errL))
	return Right[L, R](r), nil
}

// TypeName returns a readable name for OneOf[L, R], used in errors.
func TypeName[L, R any]() string {
	return fmt.Sprintf("OneOf[%s, %s]", typeString[L](), typeString[R]())
}

func typeString[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
