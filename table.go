package colf

import "fmt"

// Table is row-oriented tabular input already split into named columns of
// textual values. It preserves column declaration order, which is also the
// on-disk and output order of the container.
type Table struct {
	names []string
	cols  map[string][]string
	rows  int
}

// NewTable creates an empty table with the given column names.
// Column names must be unique.
func NewTable(names []string) (*Table, error) {
	cols := make(map[string][]string, len(names))
	for _, name := range names {
		if _, ok := cols[name]; ok {
			return nil, fmt.Errorf("duplicate column name %q", name)
		}
		cols[name] = nil
	}
	return &Table{
		names: append([]string(nil), names...),
		cols:  cols,
	}, nil
}

// AppendRow appends one row of textual values. The field count must match the
// number of columns; a mismatch is a SchemaError and the table is unchanged.
func (t *Table) AppendRow(fields []string) error {
	if len(fields) != len(t.names) {
		return &SchemaError{Row: t.rows + 1, Want: len(t.names), Got: len(fields)}
	}
	for i, name := range t.names {
		t.cols[name] = append(t.cols[name], fields[i])
	}
	t.rows++
	return nil
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return t.rows
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.names)
}

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	return append([]string(nil), t.names...)
}

// Column returns the textual values of the named column in row order.
func (t *Table) Column(name string) ([]string, bool) {
	values, ok := t.cols[name]
	return values, ok
}
