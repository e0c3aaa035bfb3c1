// Package evaluator is the default host around the dispatch engine: it
// supplies the built-in primitive semantics, truthiness, equality and
// ordering the engine falls back to, and the operator-expression glue a
// driver embeds.
package evaluator

import (
	"github.com/veltlang/velt/internal/dispatch"
	"github.com/veltlang/velt/internal/object"
)

type Evaluator struct {
	resolver *dispatch.Resolver
}

func New() *Evaluator {
	e := &Evaluator{}
	e.resolver = dispatch.New(e)
	return e
}

// Resolver exposes the dispatch entry points for embedders that bypass the
// expression glue.
func (e *Evaluator) Resolver() *dispatch.Resolver { return e.resolver }

// Equals is the built-in equality fallback: implicit Int -> Float
// conversion, then deep structural equality.
func (e *Evaluator) Equals(a, b object.Object) bool {
	if aInt, ok := a.(*object.Integer); ok {
		if bFloat, ok := b.(*object.Float); ok {
			return float64(aInt.Value) == bFloat.Value
		}
	}
	if aFloat, ok := a.(*object.Float); ok {
		if bInt, ok := b.(*object.Integer); ok {
			return aFloat.Value == float64(bInt.Value)
		}
	}
	return object.ObjectsEqual(a, b)
}

// Compare is the built-in ordering fallback.
func (e *Evaluator) Compare(a, b object.Object) (int, bool) {
	return object.CompareObjects(a, b)
}

// Truthy is the host truthiness rule: nil and false are falsy, everything
// else is truthy.
func (e *Evaluator) Truthy(obj object.Object) bool {
	switch o := obj.(type) {
	case *object.Nil:
		return false
	case *object.Boolean:
		return o.Value
	default:
		return obj != nil
	}
}
