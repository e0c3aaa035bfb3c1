package dispatch

import (
	"github.com/veltlang/velt/internal/object"
	"github.com/veltlang/velt/internal/operator"
)

// clampTri normalizes an arbitrary integer comparison result to its sign.
// Clamping an already-clamped value is a no-op.
func clampTri(n int64) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// clampResult normalizes a CompareTo override's return value. Raised
// signals propagate unchanged; a non-integer return violates the override
// contract and fails closed. invert applies the side-unification negation
// for right-operand overrides, after clamping and exactly once.
func clampResult(result object.Object, invert bool) (int, *object.Error) {
	if errObj, ok := result.(*object.Error); ok {
		return 0, errObj
	}
	intResult, ok := result.(*object.Integer)
	if !ok {
		return 0, object.NewMalformedOverrideResult(operator.CompareTo.Method(), result)
	}
	tri := clampTri(intResult.Value)
	if invert {
		tri = -tri
	}
	return tri, nil
}
