// Package csvio bridges COLF containers and CSV text interchange: UTF-8,
// comma-separated, first row naming the columns. It is a thin collaborator
// around the core codec; all typing decisions happen in the colf packages.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/colf"
	"github.com/hupe1980/colf/column"
)

// ReadTable parses CSV input into a Table. The first record is the header;
// every data row must have exactly as many fields, otherwise the whole
// conversion fails with a colf.SchemaError.
func ReadTable(r io.Reader) (*colf.Table, error) {
	cr := csv.NewReader(r)
	// Field-count mismatches are reported as colf.SchemaError below, not as
	// csv parse errors.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	table, err := colf.NewTable(header)
	if err != nil {
		return nil, err
	}

	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", row, err)
		}
		if len(record) != len(header) {
			return nil, &colf.SchemaError{Row: row, Want: len(header), Got: len(record)}
		}
		if err := table.AppendRow(record); err != nil {
			return nil, err
		}
	}

	return table, nil
}

// ReadTableFile parses a CSV file into a Table.
func ReadTableFile(path string) (*colf.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadTable(f)
}

// Write renders decoded columns as CSV: a header row with names in the given
// order, then one row per record. Every column must have the same length.
func Write(w io.Writer, names []string, cols map[string]column.Data) error {
	rows := -1
	for _, name := range names {
		data, ok := cols[name]
		if !ok {
			return fmt.Errorf("%w: %q", colf.ErrColumnNotFound, name)
		}
		if rows == -1 {
			rows = data.Len()
		} else if data.Len() != rows {
			return fmt.Errorf("column %q has %d rows, want %d", name, data.Len(), rows)
		}
	}
	if rows == -1 {
		rows = 0
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(names); err != nil {
		return err
	}

	record := make([]string, len(names))
	for i := 0; i < rows; i++ {
		for j, name := range names {
			record[j] = cols[name].Format(i)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile renders decoded columns as CSV into a file.
func WriteFile(path string, names []string, cols map[string]column.Data) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(f, names, cols); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
