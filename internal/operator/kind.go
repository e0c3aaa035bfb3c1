package operator

import "github.com/veltlang/velt/internal/config"

// Kind identifies one overloadable operator. The set is closed: the
// registry below is the single source of truth for which operators exist,
// so call sites cannot invent ad-hoc operator identities.
type Kind int

const (
	Add Kind = iota
	Sub
	Mul
	Div
	Mod
	Pow
	BitAnd
	BitOr
	BitXor
	BitNot
	ShiftLeft
	ShiftRight
	Equals
	CompareTo
)

// Arity of an operator.
type Arity int

const (
	Unary Arity = iota
	Binary
)

// Policy fixes how the engine normalizes an override's return value.
type Policy int

const (
	// Raw passes the return value through unchanged.
	Raw Policy = iota
	// Bool coerces the return value with the host truthiness rule,
	// applied exactly once.
	Bool
	// TriState requires an integer return and clamps it to {-1, 0, 1}.
	TriState
)

// Info is the registry metadata for one operator kind.
type Info struct {
	Kind   Kind
	Symbol string
	Method string
	Arity  Arity
	Policy Policy
	// SideFlag reports whether an invoked override receives a trailing
	// boolean telling it which side of the expression the receiver was on.
	// Equals is symmetric and CompareTo is side-unified by the engine, so
	// neither takes the flag.
	SideFlag bool
}

// registry is built once and never mutated. Indexed by Kind.
var registry = [...]Info{
	Add:        {Add, "+", config.AddMethodName, Binary, Raw, true},
	Sub:        {Sub, "-", config.SubMethodName, Binary, Raw, true},
	Mul:        {Mul, "*", config.MulMethodName, Binary, Raw, true},
	Div:        {Div, "/", config.DivMethodName, Binary, Raw, true},
	Mod:        {Mod, "%", config.ModMethodName, Binary, Raw, true},
	Pow:        {Pow, "**", config.PowMethodName, Binary, Raw, true},
	BitAnd:     {BitAnd, "&", config.BitAndMethodName, Binary, Raw, true},
	BitOr:      {BitOr, "|", config.BitOrMethodName, Binary, Raw, true},
	BitXor:     {BitXor, "^", config.BitXorMethodName, Binary, Raw, true},
	BitNot:     {BitNot, "~", config.BitNotMethodName, Unary, Raw, false},
	ShiftLeft:  {ShiftLeft, "<<", config.ShiftLeftMethodName, Binary, Raw, true},
	ShiftRight: {ShiftRight, ">>", config.ShiftRightMethodName, Binary, Raw, true},
	Equals:     {Equals, "==", config.EqualsMethodName, Binary, Bool, false},
	CompareTo:  {CompareTo, "<=>", config.CompareToMethodName, Binary, TriState, false},
}

var bySymbol = func() map[string]Kind {
	m := make(map[string]Kind, len(registry))
	for _, info := range registry {
		m[info.Symbol] = info.Kind
	}
	return m
}()

var byMethod = func() map[string]Kind {
	m := make(map[string]Kind, len(registry))
	for _, info := range registry {
		m[info.Method] = info.Kind
	}
	return m
}()

// Lookup returns the registry metadata for kind.
func Lookup(kind Kind) Info {
	return registry[kind]
}

// BySymbol resolves a canonical operator symbol ("+", "<=>", ...) to its
// kind. Derived comparison symbols ("<", "!=", ...) are not operator kinds
// and resolve through the expander instead.
func BySymbol(symbol string) (Kind, bool) {
	kind, ok := bySymbol[symbol]
	return kind, ok
}

// ByMethod resolves a canonical override method name ("__add", ...) to its
// kind.
func ByMethod(name string) (Kind, bool) {
	kind, ok := byMethod[name]
	return kind, ok
}

// Kinds returns every registered operator kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(registry))
	for _, info := range registry {
		out = append(out, info.Kind)
	}
	return out
}

func (k Kind) String() string { return registry[k].Symbol }

// Symbol returns the operator's surface symbol.
func (k Kind) Symbol() string { return registry[k].Symbol }

// Method returns the operator's canonical override method name.
func (k Kind) Method() string { return registry[k].Method }
