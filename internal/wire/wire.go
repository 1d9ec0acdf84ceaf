// Package wire provides the fixed-width little-endian primitives used by the
// COLF container format: 32-bit integers, 64-bit integers and 64-bit IEEE-754
// floats.
package wire

import (
	"encoding/binary"
	"math"
)

// On-disk widths of the wire primitives.
const (
	SizeInt32   = 4
	SizeInt64   = 8
	SizeFloat64 = 8
)

// AppendInt32 appends v to b in little-endian order.
func AppendInt32(b []byte, v int32) []byte {
	return binary.LittleEndian.AppendUint32(b, uint32(v))
}

// AppendInt64 appends v to b in little-endian order.
func AppendInt64(b []byte, v int64) []byte {
	return binary.LittleEndian.AppendUint64(b, uint64(v))
}

// AppendFloat64 appends the IEEE-754 bit pattern of v to b in little-endian order.
func AppendFloat64(b []byte, v float64) []byte {
	return binary.LittleEndian.AppendUint64(b, math.Float64bits(v))
}

// Int32 decodes a little-endian int32 from the first 4 bytes of b.
// The caller guarantees len(b) >= SizeInt32.
func Int32(b []byte) int32 {
	return int32(binary.LittleEndian.Uint32(b))
}

// Int64 decodes a little-endian int64 from the first 8 bytes of b.
// The caller guarantees len(b) >= SizeInt64.
func Int64(b []byte) int64 {
	return int64(binary.LittleEndian.Uint64(b))
}

// Float64 decodes a little-endian float64 from the first 8 bytes of b.
// The caller guarantees len(b) >= SizeFloat64.
func Float64(b []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}
