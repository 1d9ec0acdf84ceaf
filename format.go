package colf

import (
	"github.com/hupe1980/colf/column"
	"github.com/hupe1980/colf/internal/wire"
)

const (
	// Magic identifies COLF container files (ASCII: "COLF").
	Magic = "COLF"
	// Version is the single supported file format version.
	Version = 0x01

	// preludeSize is the fixed part of the header:
	// magic (4) + version (1) + column count (4) + row count (8).
	preludeSize = 4 + 1 + wire.SizeInt32 + wire.SizeInt64

	// metaFixedSize is the fixed part of one column metadata record:
	// name length (4) + type tag (1) + offset (8) +
	// compressed size (4) + raw size (4).
	metaFixedSize = wire.SizeInt32 + 1 + wire.SizeInt64 + wire.SizeInt32 + wire.SizeInt32
)

// ColumnMeta describes one column of a container: its name, logical type and
// the location of its compressed block within the file. Offset is measured
// from the file start; blocks are laid out contiguously in declaration order
// immediately after the header.
type ColumnMeta struct {
	Name           string
	Type           column.Type
	Offset         int64
	CompressedSize int32
	RawSize        int32
}

// headerSize returns the exact byte length of the header for the given
// columns. Block offsets are computed relative to this value.
func headerSize(metas []ColumnMeta) int {
	size := preludeSize
	for _, m := range metas {
		size += metaFixedSize + len(m.Name)
	}
	return size
}

// appendHeader serializes the complete header: magic, version, counts, then
// every column metadata record in declaration order.
func appendHeader(buf []byte, rowCount int64, metas []ColumnMeta) []byte {
	buf = append(buf, Magic...)
	buf = append(buf, Version)
	buf = wire.AppendInt32(buf, int32(len(metas)))
	buf = wire.AppendInt64(buf, rowCount)

	for _, m := range metas {
		buf = wire.AppendInt32(buf, int32(len(m.Name)))
		buf = append(buf, m.Name...)
		buf = append(buf, byte(m.Type))
		buf = wire.AppendInt64(buf, m.Offset)
		buf = wire.AppendInt32(buf, m.CompressedSize)
		buf = wire.AppendInt32(buf, m.RawSize)
	}
	return buf
}
