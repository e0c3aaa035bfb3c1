package object

// ObjectsEqual performs the host's built-in equality check between two
// values of the same runtime type. It is the fallback the engine uses when
// neither operand overrides Equals or CompareTo.
func ObjectsEqual(a, b Object) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type() != b.Type() {
		return false
	}

	switch aVal := a.(type) {
	case *Integer:
		if bVal, ok := b.(*Integer); ok {
			return aVal.Value == bVal.Value
		}
	case *Float:
		if bVal, ok := b.(*Float); ok {
			return aVal.Value == bVal.Value
		}
	case *Boolean:
		if bVal, ok := b.(*Boolean); ok {
			return aVal.Value == bVal.Value
		}
	case *String:
		if bVal, ok := b.(*String); ok {
			return aVal.Value == bVal.Value
		}
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *Instance:
		if bVal, ok := b.(*Instance); ok {
			if aVal.Class != bVal.Class || len(aVal.Fields) != len(bVal.Fields) {
				return false
			}
			for k, v := range aVal.Fields {
				other, ok := bVal.Fields[k]
				if !ok || !ObjectsEqual(v, other) {
					return false
				}
			}
			return true
		}
	}

	return false
}
