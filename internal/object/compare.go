package object

// CompareObjects applies the host's built-in ordering to a pair of native
// values. It reports -1, 0 or 1 and whether the pair is orderable at all;
// unsupported pairs (including every instance) return ok=false so the
// engine can fail closed.
func CompareObjects(a, b Object) (int, bool) {
	if aInt, ok := a.(*Integer); ok {
		if bInt, ok := b.(*Integer); ok {
			switch {
			case aInt.Value < bInt.Value:
				return -1, true
			case aInt.Value > bInt.Value:
				return 1, true
			}
			return 0, true
		}
		if bFloat, ok := b.(*Float); ok {
			return compareFloat64(float64(aInt.Value), bFloat.Value), true
		}
	}

	if aFloat, ok := a.(*Float); ok {
		if bFloat, ok := b.(*Float); ok {
			return compareFloat64(aFloat.Value, bFloat.Value), true
		}
		if bInt, ok := b.(*Integer); ok {
			return compareFloat64(aFloat.Value, float64(bInt.Value)), true
		}
	}

	if aStr, ok := a.(*String); ok {
		if bStr, ok := b.(*String); ok {
			switch {
			case aStr.Value < bStr.Value:
				return -1, true
			case aStr.Value > bStr.Value:
				return 1, true
			}
			return 0, true
		}
	}

	// Booleans order false < true
	if aBool, ok := a.(*Boolean); ok {
		if bBool, ok := b.(*Boolean); ok {
			switch {
			case !aBool.Value && bBool.Value:
				return -1, true
			case aBool.Value && !bBool.Value:
				return 1, true
			}
			return 0, true
		}
	}

	return 0, false
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
