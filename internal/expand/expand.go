// Package expand rewrites compound and implied surface forms into the
// canonical binary/unary shapes the dispatch engine resolves. Every rewrite
// is pure and depends only on its input; no dispatch happens here.
package expand

import (
	"strings"

	"github.com/veltlang/velt/internal/object"
	"github.com/veltlang/velt/internal/operator"
)

// CompoundAssign maps an assignment-operator symbol ("+=", "<<=", ...) to
// the operator kind of its canonical rewrite `a = a op b`. Symbols whose
// base is not an arithmetic or bitwise binary operator report ok=false, so
// "==", "<=" and ">=" never match.
func CompoundAssign(symbol string) (operator.Kind, bool) {
	base, found := strings.CutSuffix(symbol, "=")
	if !found || base == "" {
		return 0, false
	}
	kind, ok := operator.BySymbol(base)
	if !ok {
		return 0, false
	}
	info := operator.Lookup(kind)
	if info.Arity != operator.Binary || info.Policy != operator.Raw {
		return 0, false
	}
	return kind, true
}

// Increment rewrites `++a` / `a++` into `a = a + 1`.
func Increment() (operator.Kind, object.Object) {
	return operator.Add, &object.Integer{Value: 1}
}

// Decrement rewrites `--a` / `a--` into `a = a - 1`.
func Decrement() (operator.Kind, object.Object) {
	return operator.Sub, &object.Integer{Value: 1}
}

// Negate rewrites unary `-a` into `a * -1`.
func Negate() (operator.Kind, object.Object) {
	return operator.Mul, &object.Integer{Value: -1}
}

// Shape discriminates the two families of derived comparisons.
type Shape int

const (
	// EqualityShape comparisons ("==", "!=") resolve through Equals.
	EqualityShape Shape = iota
	// OrderingShape comparisons ("<", "<=", ">", ">=") resolve through
	// CompareTo and test the clamped tri-state result.
	OrderingShape
)

// ComparisonPlan is the canonical rewrite of one derived comparison: which
// resolution family it uses and how the normalized result maps to a
// boolean. The side-unification negation for right-operand CompareTo
// overrides is not part of the plan; it happens exactly once inside
// dispatch normalization, so all four orderings reuse one corrected value.
type ComparisonPlan struct {
	Symbol string
	Shape  Shape
	Expect int  // ordering only: clamped value tested against
	Negate bool // invert the test ("!=", "<=", ">=")
}

// Comparison maps a derived comparison symbol to its plan.
func Comparison(symbol string) (ComparisonPlan, bool) {
	switch symbol {
	case "==":
		return ComparisonPlan{Symbol: symbol, Shape: EqualityShape}, true
	case "!=":
		return ComparisonPlan{Symbol: symbol, Shape: EqualityShape, Negate: true}, true
	case "<":
		return ComparisonPlan{Symbol: symbol, Shape: OrderingShape, Expect: -1}, true
	case "<=":
		return ComparisonPlan{Symbol: symbol, Shape: OrderingShape, Expect: 1, Negate: true}, true
	case ">":
		return ComparisonPlan{Symbol: symbol, Shape: OrderingShape, Expect: 1}, true
	case ">=":
		return ComparisonPlan{Symbol: symbol, Shape: OrderingShape, Expect: -1, Negate: true}, true
	}
	return ComparisonPlan{}, false
}

// Test applies the plan to a clamped tri-state comparison result.
func (p ComparisonPlan) Test(tri int) bool {
	if p.Negate {
		return tri != p.Expect
	}
	return tri == p.Expect
}
