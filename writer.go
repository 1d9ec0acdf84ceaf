package colf

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/hupe1980/colf/blobstore"
	"github.com/hupe1980/colf/column"
	"github.com/hupe1980/colf/compress"
)

// WriterOptions configures a Writer.
type WriterOptions struct {
	// CompressionLevel is the deflate level applied to every column block.
	CompressionLevel int

	// Logger receives structured debug output. Defaults to a no-op logger.
	Logger *Logger
}

// DefaultWriterOptions are the options used by NewWriter before
// customization.
var DefaultWriterOptions = WriterOptions{
	CompressionLevel: compress.DefaultLevel,
}

// Writer converts tabular text input into COLF containers. A Writer is
// stateless and may be reused for any number of tables.
type Writer struct {
	opts WriterOptions
}

// NewWriter creates a new Writer.
func NewWriter(optFns ...func(o *WriterOptions)) *Writer {
	opts := DefaultWriterOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}

	return &Writer{opts: opts}
}

// Marshal assembles the complete container for a table: it infers one type
// per column, encodes and compresses every column, lays the compressed
// blocks out contiguously after the header and returns the whole file image.
//
// A failure at any step aborts the entire marshal; there is no partial
// output.
func (w *Writer) Marshal(table *Table) ([]byte, error) {
	metas := make([]ColumnMeta, 0, len(table.names))
	blocks := make([][]byte, 0, len(table.names))

	for _, name := range table.names {
		if len(name) > math.MaxInt32 {
			return nil, fmt.Errorf("column name %q too long", name[:32]+"...")
		}

		values := table.cols[name]
		typ := column.Infer(values)

		raw, err := column.Encode(typ, values)
		if err != nil {
			return nil, fmt.Errorf("failed to encode column %q: %w", name, err)
		}

		block, err := compress.Compress(raw, w.opts.CompressionLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to compress column %q: %w", name, err)
		}

		if len(raw) > math.MaxInt32 || len(block) > math.MaxInt32 {
			return nil, fmt.Errorf("column %q exceeds the 2 GiB block limit", name)
		}

		w.opts.Logger.Debug("encoded column",
			"column", name,
			"type", typ.String(),
			"rows", len(values),
			"raw_size", len(raw),
			"compressed_size", len(block),
		)

		metas = append(metas, ColumnMeta{
			Name:           name,
			Type:           typ,
			CompressedSize: int32(len(block)),
			RawSize:        int32(len(raw)),
		})
		blocks = append(blocks, block)
	}

	// Blocks are contiguous and gapless: column i starts at the header end
	// plus the compressed sizes of columns 0..i-1.
	offset := int64(headerSize(metas))
	for i := range metas {
		metas[i].Offset = offset
		offset += int64(metas[i].CompressedSize)
	}

	buf := make([]byte, 0, offset)
	buf = appendHeader(buf, int64(table.rows), metas)
	for _, block := range blocks {
		buf = append(buf, block...)
	}

	w.opts.Logger.Debug("assembled container",
		"columns", len(metas),
		"rows", table.rows,
		"bytes", len(buf),
	)

	return buf, nil
}

// Write marshals the table and writes the container to dst.
func (w *Writer) Write(dst io.Writer, table *Table) error {
	data, err := w.Marshal(table)
	if err != nil {
		return err
	}
	if _, err := dst.Write(data); err != nil {
		return fmt.Errorf("failed to write container: %w", err)
	}
	return nil
}

// WriteFile marshals the table and writes the container to path atomically:
// the data goes to a temp file in the same directory, which is renamed over
// the target only after a successful sync. A failed conversion therefore
// leaves no container file behind at all.
func (w *Writer) WriteFile(path string, table *Table) error {
	data, err := w.Marshal(table)
	if err != nil {
		return err
	}
	return blobstore.WriteFileAtomic(path, data)
}

// WriteStore marshals the table and stores the container under name.
func (w *Writer) WriteStore(ctx context.Context, store blobstore.BlobStore, name string, table *Table) error {
	data, err := w.Marshal(table)
	if err != nil {
		return err
	}
	if err := store.Put(ctx, name, data); err != nil {
		return fmt.Errorf("failed to store container %q: %w", name, err)
	}
	return nil
}
