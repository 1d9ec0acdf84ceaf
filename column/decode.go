package column

import (
	"fmt"

	"github.com/hupe1980/colf/internal/wire"
)

// Decode deserializes a raw column buffer produced by Encode.
//
// rowCount is the container's row count; the buffer must hold exactly that
// many values. The type tag comes from the file and is untrusted, so an
// unrecognized tag is rejected with ErrUnknownType.
func Decode(typ Type, raw []byte, rowCount int) (Data, error) {
	if rowCount < 0 {
		return Data{}, fmt.Errorf("%w: negative row count %d", ErrInvalidBuffer, rowCount)
	}

	switch typ {
	case TypeInt32:
		return decodeInt32(raw, rowCount)
	case TypeFloat64:
		return decodeFloat64(raw, rowCount)
	case TypeString:
		return decodeString(raw, rowCount)
	default:
		return Data{}, fmt.Errorf("%w: tag %d", ErrUnknownType, typ)
	}
}

func decodeInt32(raw []byte, rowCount int) (Data, error) {
	// Divide instead of multiplying: rowCount comes from the file and
	// rowCount*width could wrap around.
	if len(raw)%wire.SizeInt32 != 0 || len(raw)/wire.SizeInt32 != rowCount {
		return Data{}, fmt.Errorf("%w: Int32 buffer is %d bytes, want %d rows of %d",
			ErrInvalidBuffer, len(raw), rowCount, wire.SizeInt32)
	}

	values := make([]int32, rowCount)
	for i := range values {
		values[i] = wire.Int32(raw[i*wire.SizeInt32:])
	}
	return Data{Type: TypeInt32, Int32s: values}, nil
}

func decodeFloat64(raw []byte, rowCount int) (Data, error) {
	if len(raw)%wire.SizeFloat64 != 0 || len(raw)/wire.SizeFloat64 != rowCount {
		return Data{}, fmt.Errorf("%w: Float64 buffer is %d bytes, want %d rows of %d",
			ErrInvalidBuffer, len(raw), rowCount, wire.SizeFloat64)
	}

	values := make([]float64, rowCount)
	for i := range values {
		values[i] = wire.Float64(raw[i*wire.SizeFloat64:])
	}
	return Data{Type: TypeFloat64, Float64s: values}, nil
}

func decodeString(raw []byte, rowCount int) (Data, error) {
	if rowCount > len(raw)/wire.SizeInt32 {
		return Data{}, fmt.Errorf("%w: String buffer is %d bytes, offset table needs %d rows of %d",
			ErrInvalidBuffer, len(raw), rowCount, wire.SizeInt32)
	}
	tableLen := rowCount * wire.SizeInt32

	data := raw[tableLen:]
	values := make([]string, rowCount)

	// Row k spans [prev, end) within the data region, where end is the k-th
	// table entry and prev the previous one (0 for the first row). Offsets
	// must be non-decreasing and stay inside the region.
	prev := 0
	for i := range values {
		end := int(wire.Int32(raw[i*wire.SizeInt32:]))
		if end < prev || end > len(data) {
			return Data{}, fmt.Errorf("%w: String offset %d out of range at row %d (prev %d, data %d bytes)",
				ErrInvalidBuffer, end, i, prev, len(data))
		}
		values[i] = string(data[prev:end])
		prev = end
	}

	if prev != len(data) {
		return Data{}, fmt.Errorf("%w: String data region is %d bytes but offsets cover %d",
			ErrInvalidBuffer, len(data), prev)
	}

	return Data{Type: TypeString, Strings: values}, nil
}
