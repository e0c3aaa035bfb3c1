package expand

import (
	"testing"

	"github.com/veltlang/velt/internal/object"
	"github.com/veltlang/velt/internal/operator"
)

func TestCompoundAssign(t *testing.T) {
	tests := []struct {
		symbol string
		kind   operator.Kind
	}{
		{"+=", operator.Add},
		{"-=", operator.Sub},
		{"*=", operator.Mul},
		{"/=", operator.Div},
		{"%=", operator.Mod},
		{"**=", operator.Pow},
		{"&=", operator.BitAnd},
		{"|=", operator.BitOr},
		{"^=", operator.BitXor},
		{"<<=", operator.ShiftLeft},
		{">>=", operator.ShiftRight},
	}
	for _, tt := range tests {
		kind, ok := CompoundAssign(tt.symbol)
		if !ok || kind != tt.kind {
			t.Errorf("CompoundAssign(%q) = (%v, %v), want (%v, true)", tt.symbol, kind, ok, tt.kind)
		}
	}

	// Comparison and plain-assignment symbols must never match.
	for _, symbol := range []string{"=", "==", "!=", "<=", ">=", "<=>", "===", "~=", "&&="} {
		if _, ok := CompoundAssign(symbol); ok {
			t.Errorf("CompoundAssign(%q) matched", symbol)
		}
	}
}

func TestImpliedRewrites(t *testing.T) {
	kind, operand := Increment()
	if kind != operator.Add || operand.(*object.Integer).Value != 1 {
		t.Errorf("Increment() = (%v, %s)", kind, operand.Inspect())
	}
	kind, operand = Decrement()
	if kind != operator.Sub || operand.(*object.Integer).Value != 1 {
		t.Errorf("Decrement() = (%v, %s)", kind, operand.Inspect())
	}
	kind, operand = Negate()
	if kind != operator.Mul || operand.(*object.Integer).Value != -1 {
		t.Errorf("Negate() = (%v, %s)", kind, operand.Inspect())
	}
}

func TestComparisonPlans(t *testing.T) {
	tests := []struct {
		symbol string
		shape  Shape
		expect int
		negate bool
	}{
		{"==", EqualityShape, 0, false},
		{"!=", EqualityShape, 0, true},
		{"<", OrderingShape, -1, false},
		{"<=", OrderingShape, 1, true},
		{">", OrderingShape, 1, false},
		{">=", OrderingShape, -1, true},
	}
	for _, tt := range tests {
		plan, ok := Comparison(tt.symbol)
		if !ok {
			t.Fatalf("Comparison(%q) not found", tt.symbol)
		}
		if plan.Shape != tt.shape || plan.Expect != tt.expect || plan.Negate != tt.negate {
			t.Errorf("Comparison(%q) = %+v", tt.symbol, plan)
		}
	}

	for _, symbol := range []string{"+", "<=>", "=", "&&"} {
		if _, ok := Comparison(symbol); ok {
			t.Errorf("Comparison(%q) matched", symbol)
		}
	}
}

func TestComparisonPlanTest(t *testing.T) {
	// Each derived ordering over the three clamped outcomes.
	tests := []struct {
		symbol string
		tri    int
		want   bool
	}{
		{"<", -1, true}, {"<", 0, false}, {"<", 1, false},
		{"<=", -1, true}, {"<=", 0, true}, {"<=", 1, false},
		{">", -1, false}, {">", 0, false}, {">", 1, true},
		{">=", -1, false}, {">=", 0, true}, {">=", 1, true},
	}
	for _, tt := range tests {
		plan, _ := Comparison(tt.symbol)
		if got := plan.Test(tt.tri); got != tt.want {
			t.Errorf("%s with tri=%d: got %v, want %v", tt.symbol, tt.tri, got, tt.want)
		}
	}
}
