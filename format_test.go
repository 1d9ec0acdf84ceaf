package colf

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/hupe1980/colf/column"
	"github.com/hupe1980/colf/compress"
	"github.com/hupe1980/colf/internal/wire"
)

func mustTable(t *testing.T, names []string, rows ...[]string) *Table {
	t.Helper()
	table, err := NewTable(names)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	for _, row := range rows {
		if err := table.AppendRow(row); err != nil {
			t.Fatalf("AppendRow failed: %v", err)
		}
	}
	return table
}

// Walk the marshaled container byte by byte and verify the exact header
// layout and the contiguous, gapless block placement.
func TestMarshalLayout(t *testing.T) {
	table := mustTable(t, []string{"id", "name"},
		[]string{"1", "Alice"},
		[]string{"2", "Bob"},
	)

	data, err := NewWriter().Marshal(table)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// Prelude: magic, version, column count, row count.
	if !bytes.Equal(data[:4], []byte("COLF")) {
		t.Fatalf("magic = %q, want COLF", data[:4])
	}
	if data[4] != 0x01 {
		t.Fatalf("version = 0x%02x, want 0x01", data[4])
	}
	if got := wire.Int32(data[5:]); got != 2 {
		t.Fatalf("column count = %d, want 2", got)
	}
	if got := wire.Int64(data[9:]); got != 2 {
		t.Fatalf("row count = %d, want 2", got)
	}

	// Header size: prelude 17 + ("id": 4+2+1+8+4+4) + ("name": 4+4+1+8+4+4).
	wantHeader := 17 + 23 + 25

	// First metadata record.
	pos := 17
	if got := wire.Int32(data[pos:]); got != 2 {
		t.Fatalf("name length = %d, want 2", got)
	}
	pos += 4
	if string(data[pos:pos+2]) != "id" {
		t.Fatalf("name = %q, want id", data[pos:pos+2])
	}
	pos += 2
	if got := column.Type(data[pos]); got != column.TypeInt32 {
		t.Fatalf("type tag = %d, want Int32", got)
	}
	pos++
	idOffset := wire.Int64(data[pos:])
	if idOffset != int64(wantHeader) {
		t.Fatalf("first block offset = %d, want header size %d", idOffset, wantHeader)
	}
	pos += 8
	idCompSize := wire.Int32(data[pos:])
	pos += 4
	if got := wire.Int32(data[pos:]); got != 8 {
		t.Fatalf("raw size = %d, want 8 (two int32 rows)", got)
	}
	pos += 4

	// Second metadata record.
	if got := wire.Int32(data[pos:]); got != 4 {
		t.Fatalf("name length = %d, want 4", got)
	}
	pos += 4
	if string(data[pos:pos+4]) != "name" {
		t.Fatalf("name = %q, want name", data[pos:pos+4])
	}
	pos += 4
	if got := column.Type(data[pos]); got != column.TypeString {
		t.Fatalf("type tag = %d, want String", got)
	}
	pos++
	nameOffset := wire.Int64(data[pos:])
	pos += 8
	nameCompSize := wire.Int32(data[pos:])
	pos += 4
	nameRawSize := wire.Int32(data[pos:])
	pos += 4

	if pos != wantHeader {
		t.Fatalf("header ends at %d, want %d", pos, wantHeader)
	}

	// Contiguity: second block starts right where the first ends, and the
	// last block ends exactly at the file end.
	if nameOffset != idOffset+int64(idCompSize) {
		t.Fatalf("second block offset = %d, want %d", nameOffset, idOffset+int64(idCompSize))
	}
	if int(nameOffset)+int(nameCompSize) != len(data) {
		t.Fatalf("file is %d bytes, blocks end at %d", len(data), int(nameOffset)+int(nameCompSize))
	}

	// String raw buffer: offset table [5, 8] then "AliceBob".
	raw, err := compress.Decompress(data[nameOffset:nameOffset+int64(nameCompSize)], int(nameRawSize))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if got := wire.Int32(raw); got != 5 {
		t.Fatalf("first string offset = %d, want 5", got)
	}
	if got := wire.Int32(raw[4:]); got != 8 {
		t.Fatalf("second string offset = %d, want 8", got)
	}
	if string(raw[8:]) != "AliceBob" {
		t.Fatalf("string data region = %q, want AliceBob", raw[8:])
	}
}

func TestHeaderSizeFormula(t *testing.T) {
	metas := []ColumnMeta{
		{Name: "a"},
		{Name: "long_column_name"},
	}
	// 17 + (21+1) + (21+16)
	if got := headerSize(metas); got != 17+22+37 {
		t.Fatalf("headerSize = %d, want %d", got, 17+22+37)
	}
	if got := headerSize(nil); got != preludeSize {
		t.Fatalf("headerSize(nil) = %d, want %d", got, preludeSize)
	}
}

func TestBytesBlobInvalidOffset(t *testing.T) {
	b := bytesBlob("data")

	_, err := b.ReadAt(context.Background(), make([]byte, 1), -1)
	if err == nil || errors.Is(err, io.EOF) {
		t.Fatalf("negative offset: got %v, want a non-EOF error", err)
	}

	_, err = b.ReadAt(context.Background(), make([]byte, 1), 4)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("offset at end: got %v, want io.EOF", err)
	}
}

func TestMarshalEmptyTable(t *testing.T) {
	table := mustTable(t, []string{"a", "b"})

	data, err := NewWriter().Marshal(table)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// Zero-row columns are vacuously Int32.
	if got := column.Type(data[17+4+1]); got != column.TypeInt32 {
		t.Fatalf("empty column type = %s, want Int32", got)
	}
	if got := wire.Int64(data[9:]); got != 0 {
		t.Fatalf("row count = %d, want 0", got)
	}
}
