package evaluator

import (
	"github.com/veltlang/velt/internal/expand"
	"github.com/veltlang/velt/internal/object"
	"github.com/veltlang/velt/internal/operator"
)

// EvalInfix evaluates one binary operator expression. Derived comparisons
// route through the comparison resolver; every other symbol must be a
// registered operator kind.
func (e *Evaluator) EvalInfix(symbol string, left, right object.Object) object.Object {
	if plan, ok := expand.Comparison(symbol); ok {
		return e.resolver.ResolveComparison(plan, left, right)
	}
	if kind, ok := operator.BySymbol(symbol); ok {
		if operator.Lookup(kind).Arity == operator.Binary {
			return e.resolver.ResolveBinary(kind, left, right)
		}
	}
	return object.Errorf("unknown operator: %s %s %s", object.TypeName(left), symbol, object.TypeName(right))
}

// EvalPrefix evaluates a prefix operator expression. Native numbers negate
// and complement directly; instances reduce per the expander (`-a` becomes
// `a * -1`) or dispatch the unary BitNot override.
func (e *Evaluator) EvalPrefix(symbol string, operand object.Object) object.Object {
	switch symbol {
	case "-":
		switch o := operand.(type) {
		case *object.Integer:
			return &object.Integer{Value: -o.Value}
		case *object.Float:
			return &object.Float{Value: -o.Value}
		}
		kind, factor := expand.Negate()
		return e.resolver.ResolveBinary(kind, operand, factor)
	case "~":
		if i, ok := operand.(*object.Integer); ok {
			return &object.Integer{Value: ^i.Value}
		}
		return e.resolver.ResolveUnary(operator.BitNot, operand)
	case "!":
		return object.NativeBool(!e.Truthy(operand))
	}
	return object.Errorf("unknown operator: %s%s", symbol, object.TypeName(operand))
}

// EvalCompound evaluates the value of `a op= b`; storing it back into `a`
// is the caller's business.
func (e *Evaluator) EvalCompound(symbol string, left, right object.Object) object.Object {
	kind, ok := expand.CompoundAssign(symbol)
	if !ok {
		return object.Errorf("unknown operator: %s", symbol)
	}
	return e.resolver.ResolveBinary(kind, left, right)
}

// EvalIncrement evaluates the value of `a++` / `++a`.
func (e *Evaluator) EvalIncrement(operand object.Object) object.Object {
	kind, one := expand.Increment()
	return e.resolver.ResolveBinary(kind, operand, one)
}

// EvalDecrement evaluates the value of `a--` / `--a`.
func (e *Evaluator) EvalDecrement(operand object.Object) object.Object {
	kind, one := expand.Decrement()
	return e.resolver.ResolveBinary(kind, operand, one)
}
