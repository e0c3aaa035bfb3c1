package evaluator

import (
	"math"

	"github.com/veltlang/velt/internal/object"
	"github.com/veltlang/velt/internal/operator"
)

// NativeBinary applies the built-in primitive semantics for an arithmetic
// or bitwise operator. ok=false means no built-in rule exists for the pair
// and the engine should fail closed. A returned error object (division by
// zero) still counts as a produced result.
func (e *Evaluator) NativeBinary(kind operator.Kind, left, right object.Object) (object.Object, bool) {
	if left.Type() == object.INTEGER_OBJ && right.Type() == object.INTEGER_OBJ {
		return e.integerInfix(kind, left.(*object.Integer).Value, right.(*object.Integer).Value)
	}
	if left.Type() == object.FLOAT_OBJ && right.Type() == object.FLOAT_OBJ {
		return e.floatInfix(kind, left.(*object.Float).Value, right.(*object.Float).Value)
	}

	// Implicit Int -> Float conversion
	if left.Type() == object.INTEGER_OBJ && right.Type() == object.FLOAT_OBJ {
		return e.floatInfix(kind, float64(left.(*object.Integer).Value), right.(*object.Float).Value)
	}
	if left.Type() == object.FLOAT_OBJ && right.Type() == object.INTEGER_OBJ {
		return e.floatInfix(kind, left.(*object.Float).Value, float64(right.(*object.Integer).Value))
	}

	if left.Type() == object.STRING_OBJ && right.Type() == object.STRING_OBJ && kind == operator.Add {
		return &object.String{Value: left.(*object.String).Value + right.(*object.String).Value}, true
	}

	return nil, false
}

func (e *Evaluator) integerInfix(kind operator.Kind, leftVal, rightVal int64) (object.Object, bool) {
	switch kind {
	case operator.Add:
		return &object.Integer{Value: leftVal + rightVal}, true
	case operator.Sub:
		return &object.Integer{Value: leftVal - rightVal}, true
	case operator.Mul:
		return &object.Integer{Value: leftVal * rightVal}, true
	case operator.Div:
		if rightVal == 0 {
			return object.Errorf("division by zero"), true
		}
		return &object.Integer{Value: leftVal / rightVal}, true
	case operator.Mod:
		if rightVal == 0 {
			return object.Errorf("modulo by zero"), true
		}
		return &object.Integer{Value: leftVal % rightVal}, true
	case operator.Pow:
		return &object.Integer{Value: intPow(leftVal, rightVal)}, true
	case operator.BitAnd:
		return &object.Integer{Value: leftVal & rightVal}, true
	case operator.BitOr:
		return &object.Integer{Value: leftVal | rightVal}, true
	case operator.BitXor:
		return &object.Integer{Value: leftVal ^ rightVal}, true
	case operator.ShiftLeft:
		return &object.Integer{Value: leftVal << rightVal}, true
	case operator.ShiftRight:
		return &object.Integer{Value: leftVal >> rightVal}, true
	}
	return nil, false
}

func (e *Evaluator) floatInfix(kind operator.Kind, leftVal, rightVal float64) (object.Object, bool) {
	switch kind {
	case operator.Add:
		return &object.Float{Value: leftVal + rightVal}, true
	case operator.Sub:
		return &object.Float{Value: leftVal - rightVal}, true
	case operator.Mul:
		return &object.Float{Value: leftVal * rightVal}, true
	case operator.Div:
		if rightVal == 0.0 {
			return object.Errorf("division by zero"), true
		}
		return &object.Float{Value: leftVal / rightVal}, true
	case operator.Mod:
		if rightVal == 0.0 {
			return object.Errorf("modulo by zero"), true
		}
		return &object.Float{Value: math.Mod(leftVal, rightVal)}, true
	case operator.Pow:
		return &object.Float{Value: math.Pow(leftVal, rightVal)}, true
	}
	// No bitwise semantics for floats.
	return nil, false
}

func intPow(n, m int64) int64 {
	if m < 0 {
		return 0
	}
	if m == 0 {
		return 1
	}
	var result int64 = 1
	for i := int64(0); i < m; i++ {
		result *= n
	}
	return result
}
