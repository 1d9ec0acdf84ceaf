package column

import (
	"fmt"
	"strconv"

	"github.com/hupe1980/colf/internal/wire"
)

// Encode serializes textual values into the raw buffer for the given type.
//
//   - Int32: one 4-byte little-endian integer per row.
//   - Float64: one 8-byte little-endian float per row.
//   - String: a table of len(values) cumulative end offsets (4-byte
//     little-endian each), followed immediately by the concatenated UTF-8
//     bytes of every value.
//
// Values are expected to have passed Infer for the same type; a value that
// does not parse is reported as an error rather than skipped.
func Encode(typ Type, values []string) ([]byte, error) {
	switch typ {
	case TypeInt32:
		return encodeInt32(values)
	case TypeFloat64:
		return encodeFloat64(values)
	case TypeString:
		return encodeString(values), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, typ)
	}
}

func encodeInt32(values []string) ([]byte, error) {
	buf := make([]byte, 0, len(values)*wire.SizeInt32)
	for i, v := range values {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("row %d: %q is not an int32: %w", i, v, err)
		}
		buf = wire.AppendInt32(buf, int32(n))
	}
	return buf, nil
}

func encodeFloat64(values []string) ([]byte, error) {
	buf := make([]byte, 0, len(values)*wire.SizeFloat64)
	for i, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %q is not a float64: %w", i, v, err)
		}
		buf = wire.AppendFloat64(buf, f)
	}
	return buf, nil
}

func encodeString(values []string) []byte {
	dataLen := 0
	for _, v := range values {
		dataLen += len(v)
	}

	buf := make([]byte, 0, len(values)*wire.SizeInt32+dataLen)

	// Offset table: cumulative end offset of each row within the data region.
	end := 0
	for _, v := range values {
		end += len(v)
		buf = wire.AppendInt32(buf, int32(end))
	}
	for _, v := range values {
		buf = append(buf, v...)
	}
	return buf
}
