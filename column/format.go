package column

import "strconv"

// Format renders row i of the column as text, suitable for CSV output.
// Float64 values use the shortest representation that round-trips.
func (d Data) Format(i int) string {
	switch d.Type {
	case TypeInt32:
		return strconv.FormatInt(int64(d.Int32s[i]), 10)
	case TypeFloat64:
		return strconv.FormatFloat(d.Float64s[i], 'g', -1, 64)
	case TypeString:
		return d.Strings[i]
	default:
		return ""
	}
}
