package dispatch

import (
	"github.com/veltlang/velt/internal/expand"
	"github.com/veltlang/velt/internal/object"
)

// ResolveComparison executes one derived-comparison plan produced by the
// expander. Equality-shaped plans run the Equals ladder; ordering-shaped
// plans run CompareTo with side unification, then test the corrected
// tri-state value against the plan.
func (r *Resolver) ResolveComparison(plan expand.ComparisonPlan, left, right object.Object) object.Object {
	switch plan.Shape {
	case expand.EqualityShape:
		result := r.resolveEquality(left, right)
		if object.IsError(result) {
			return result
		}
		equal := result.(*object.Boolean).Value
		if plan.Negate {
			equal = !equal
		}
		return object.NativeBool(equal)

	case expand.OrderingShape:
		tri, errObj := r.resolveOrdering(plan.Symbol, left, right)
		if errObj != nil {
			return errObj
		}
		return object.NativeBool(plan.Test(tri))
	}

	return object.Errorf("unknown comparison: %s", plan.Symbol)
}
