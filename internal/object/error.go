package object

import "fmt"

// ErrorKind classifies engine failures. User signals raised inside an
// override keep the UserSignal kind and pass through dispatch unchanged.
type ErrorKind int

const (
	UserSignal ErrorKind = iota
	InvalidOperator
	MalformedOverrideResult
)

// Error is a raised failure flowing through evaluation as a value.
type Error struct {
	Kind    ErrorKind
	Message string

	// Diagnostics for InvalidOperator failures.
	Symbol    string
	LeftType  string
	RightType string
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return "ERROR: " + e.Message }
func (e *Error) Hash() uint32     { return hashString(e.Message) }

// Error makes failures usable at boundaries that expect a Go error.
func (e *Error) Error() string { return e.Message }

// Errorf raises a user-level signal.
func Errorf(format string, a ...interface{}) *Error {
	return &Error{Kind: UserSignal, Message: fmt.Sprintf(format, a...)}
}

// NewInvalidOperator reports that neither operand supplies an override and
// no built-in fallback exists for the concrete type pair.
func NewInvalidOperator(symbol, leftType, rightType string) *Error {
	return &Error{
		Kind:      InvalidOperator,
		Symbol:    symbol,
		LeftType:  leftType,
		RightType: rightType,
		Message:   fmt.Sprintf("invalid operator: %s %s %s", leftType, symbol, rightType),
	}
}

// NewInvalidUnaryOperator is the unary-form variant of NewInvalidOperator.
func NewInvalidUnaryOperator(symbol, operandType string) *Error {
	return &Error{
		Kind:     InvalidOperator,
		Symbol:   symbol,
		LeftType: operandType,
		Message:  fmt.Sprintf("invalid operator: %s%s", symbol, operandType),
	}
}

// NewMalformedOverrideResult reports an override return value that violates
// the operator's contract. The engine fails closed rather than guessing.
func NewMalformedOverrideResult(method string, got Object) *Error {
	return &Error{
		Kind:    MalformedOverrideResult,
		Message: fmt.Sprintf("%s must return an integer, got %s", method, TypeName(got)),
	}
}

// IsError reports whether obj is a raised failure.
func IsError(obj Object) bool {
	if obj != nil {
		return obj.Type() == ERROR_OBJ
	}
	return false
}
