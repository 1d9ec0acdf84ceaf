package column

import "strconv"

// Infer selects the column type for a sequence of textual values.
//
// Candidates are evaluated in strict priority order: Int32 first, then
// Float64, then String as the universal fallback. A candidate wins iff every
// value parses under its literal grammar, so the result never depends on row
// order. A value outside the int32 range is not an Int32 candidate and falls
// through to Float64.
//
// An empty column is vacuously valid for every candidate and resolves to
// Int32. That is a quirk of the priority rule, kept for compatibility.
func Infer(values []string) Type {
	if allInt32(values) {
		return TypeInt32
	}
	if allFloat64(values) {
		return TypeFloat64
	}
	return TypeString
}

func allInt32(values []string) bool {
	for _, v := range values {
		if _, err := strconv.ParseInt(v, 10, 32); err != nil {
			return false
		}
	}
	return true
}

func allFloat64(values []string) bool {
	for _, v := range values {
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return false
		}
	}
	return true
}
