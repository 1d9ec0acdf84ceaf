// Package column implements the per-column value codecs of the COLF container
// format: the closed three-member type system, writer-side schema inference,
// and the type-specific raw buffer encodings.
package column

import "errors"

// Type identifies the logical type of a column. The set of types is closed;
// adding a member requires touching both the encode and decode paths.
type Type uint8

// On-disk type tags. The values are part of the file format.
const (
	TypeInt32   Type = 1
	TypeFloat64 Type = 2
	TypeString  Type = 3
)

var (
	// ErrUnknownType is returned when an on-disk type tag is not one of the
	// supported members. The tag is untrusted input, so decoders must treat
	// this as a format error rather than panic.
	ErrUnknownType = errors.New("unknown column type")

	// ErrInvalidBuffer is returned when a raw column buffer does not match
	// the declared type and row count.
	ErrInvalidBuffer = errors.New("invalid column buffer")
)

// String returns the human-readable name of the type.
func (t Type) String() string {
	switch t {
	case TypeInt32:
		return "Int32"
	case TypeFloat64:
		return "Float64"
	case TypeString:
		return "String"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the supported type tags.
func (t Type) Valid() bool {
	return t == TypeInt32 || t == TypeFloat64 || t == TypeString
}

// Data holds the decoded values of one column. Exactly one of the slices is
// populated, selected by Type.
type Data struct {
	Type     Type
	Int32s   []int32
	Float64s []float64
	Strings  []string
}

// Len returns the number of rows in the column.
func (d Data) Len() int {
	switch d.Type {
	case TypeInt32:
		return len(d.Int32s)
	case TypeFloat64:
		return len(d.Float64s)
	case TypeString:
		return len(d.Strings)
	default:
		return 0
	}
}
