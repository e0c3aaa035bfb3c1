package config

// Canonical override method names. A class participates in an operator by
// publishing the matching method in its override table at definition time;
// the engine never invents operator identities beyond this set.
const (
	AddMethodName        = "__add"
	SubMethodName        = "__sub"
	MulMethodName        = "__mul"
	DivMethodName        = "__div"
	ModMethodName        = "__mod"
	PowMethodName        = "__pow"
	BitAndMethodName     = "__and"
	BitOrMethodName      = "__or"
	BitXorMethodName     = "__xor"
	BitNotMethodName     = "__not"
	ShiftLeftMethodName  = "__lshift"
	ShiftRightMethodName = "__rshift"
	EqualsMethodName     = "__equals"
	CompareToMethodName  = "__compareTo"
)

// REPL settings
const (
	HistoryFileName = ".velt_history"
	PromptMain      = "velt> "
	PromptCont      = "   .. "
)
