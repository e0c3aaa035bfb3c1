// Package dispatch resolves operator applications against user-supplied
// override tables, falling back to the host's built-in semantics when no
// override applies. Resolution is synchronous, re-entrant and stack-local:
// an invoked override may itself trigger nested resolutions.
package dispatch

import (
	"github.com/veltlang/velt/internal/object"
	"github.com/veltlang/velt/internal/operator"
)

// Host supplies the built-in semantics the engine consumes when neither
// operand participates in an operator. Implementations must be safe for
// re-entrant use; the engine holds no state across resolutions.
type Host interface {
	// Equals is the built-in equality fallback.
	Equals(a, b object.Object) bool
	// Compare is the built-in ordering fallback; ok=false means the pair
	// is not orderable.
	Compare(a, b object.Object) (int, bool)
	// Truthy is the host truthiness rule, applied exactly once to an
	// Equals override's return value.
	Truthy(obj object.Object) bool
	// NativeBinary applies built-in primitive semantics for an
	// arithmetic or bitwise operator; ok=false means no built-in rule
	// exists for the pair.
	NativeBinary(kind operator.Kind, left, right object.Object) (object.Object, bool)
}

// Resolver is the engine's entry point. It is stateless apart from the
// host reference and safe to share.
type Resolver struct {
	host Host
}

func New(host Host) *Resolver {
	return &Resolver{host: host}
}

// ResolveBinary resolves one binary operator application. The left operand
// is always tried before the right; this precedence is fixed. Which path
// fires depends only on table presence for the concrete classes involved,
// never on the operand values, so resolution is deterministic per type
// pair. An error raised by an invoked override is final - the engine never
// retries the other operand after an override has run.
func (r *Resolver) ResolveBinary(kind operator.Kind, left, right object.Object) object.Object {
	info := operator.Lookup(kind)
	if info.Arity != operator.Binary {
		return object.Errorf("operator %s is not binary", info.Symbol)
	}

	switch kind {
	case operator.Equals:
		return r.resolveEquality(left, right)
	case operator.CompareTo:
		tri, errObj := r.resolveOrdering(info.Symbol, left, right)
		if errObj != nil {
			return errObj
		}
		return &object.Integer{Value: int64(tri)}
	}

	if table, ok := object.Classify(left); ok {
		if fn, ok := table.Get(kind); ok {
			return invokeSided(info, fn, left, right, true)
		}
	}
	if table, ok := object.Classify(right); ok {
		if fn, ok := table.Get(kind); ok {
			return invokeSided(info, fn, right, left, false)
		}
	}
	if result, ok := r.host.NativeBinary(kind, left, right); ok {
		return result
	}
	return object.NewInvalidOperator(info.Symbol, object.TypeName(left), object.TypeName(right))
}

// ResolveUnary resolves the sole unary operator, BitNot. There is no other
// side to retry and no built-in unary semantics for instances, so absence
// of an override fails closed.
func (r *Resolver) ResolveUnary(kind operator.Kind, operand object.Object) object.Object {
	info := operator.Lookup(kind)
	if info.Arity != operator.Unary {
		return object.Errorf("operator %s is not unary", info.Symbol)
	}
	if table, ok := object.Classify(operand); ok {
		if fn, ok := table.Get(kind); ok {
			return fn(operand, nil)
		}
	}
	return object.NewInvalidUnaryOperator(info.Symbol, object.TypeName(operand))
}

// invokeSided calls a Raw-policy override, appending the side flag when the
// registry says the operator takes one. The return value passes through
// unchanged, raised signals included.
func invokeSided(info operator.Info, fn object.Callable, receiver, other object.Object, fromLeft bool) object.Object {
	args := []object.Object{other}
	if info.SideFlag {
		args = append(args, object.NativeBool(fromLeft))
	}
	return fn(receiver, args)
}

// resolveEquality implements the Equals ladder: an Equals override on
// either side wins; otherwise a CompareTo override derives equality from a
// zero comparison; otherwise the host's built-in equality decides. Equals
// is the one kind that never reports InvalidOperator for missing overrides.
func (r *Resolver) resolveEquality(left, right object.Object) object.Object {
	if fn, receiver, other, ok := findOverride(operator.Equals, left, right); ok {
		result := fn(receiver, []object.Object{other})
		if object.IsError(result) {
			return result
		}
		return object.NativeBool(r.host.Truthy(result))
	}
	if hasOverride(operator.CompareTo, left, right) {
		tri, errObj := r.resolveOrdering(operator.Equals.Symbol(), left, right)
		if errObj != nil {
			return errObj
		}
		return object.NativeBool(tri == 0)
	}
	return object.NativeBool(r.host.Equals(left, right))
}

// resolveOrdering produces the side-unified, clamped tri-state comparison
// of left and right. When the right operand supplies the CompareTo
// override, the clamped result is negated exactly once so mirrored
// expressions agree regardless of which side implements the ordering.
func (r *Resolver) resolveOrdering(symbol string, left, right object.Object) (int, *object.Error) {
	if table, ok := object.Classify(left); ok {
		if fn, ok := table.Get(operator.CompareTo); ok {
			return clampResult(fn(left, []object.Object{right}), false)
		}
	}
	if table, ok := object.Classify(right); ok {
		if fn, ok := table.Get(operator.CompareTo); ok {
			return clampResult(fn(right, []object.Object{left}), true)
		}
	}
	if tri, ok := r.host.Compare(left, right); ok {
		return tri, nil
	}
	return 0, object.NewInvalidOperator(symbol, object.TypeName(left), object.TypeName(right))
}

func findOverride(kind operator.Kind, left, right object.Object) (fn object.Callable, receiver, other object.Object, ok bool) {
	if table, found := object.Classify(left); found {
		if fn, found = table.Get(kind); found {
			return fn, left, right, true
		}
	}
	if table, found := object.Classify(right); found {
		if fn, found = table.Get(kind); found {
			return fn, right, left, true
		}
	}
	return nil, nil, nil, false
}

func hasOverride(kind operator.Kind, left, right object.Object) bool {
	if table, ok := object.Classify(left); ok && table.Has(kind) {
		return true
	}
	if table, ok := object.Classify(right); ok && table.Has(kind) {
		return true
	}
	return false
}
