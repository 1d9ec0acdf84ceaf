package colf

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMagic is returned when a file does not start with the COLF
	// magic bytes.
	ErrInvalidMagic = errors.New("not a COLF file")

	// ErrInvalidVersion is returned when the container version byte is not
	// the single supported value.
	ErrInvalidVersion = errors.New("unsupported version")

	// ErrInvalidHeader is returned when the header is structurally invalid:
	// truncated, negative counts or sizes, or duplicate column names.
	ErrInvalidHeader = errors.New("invalid header")

	// ErrColumnNotFound is returned when a requested column name is not
	// present in the container.
	ErrColumnNotFound = errors.New("column not found")
)

// SchemaError indicates that a text row's field count does not match the
// header. It aborts the whole conversion; there is no row skipping.
type SchemaError struct {
	Row  int // 1-based data row number
	Want int
	Got  int
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("row %d has %d fields, header declares %d", e.Row, e.Got, e.Want)
}
