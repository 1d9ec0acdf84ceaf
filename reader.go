package colf

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/colf/blobstore"
	"github.com/hupe1980/colf/column"
	"github.com/hupe1980/colf/compress"
	"github.com/hupe1980/colf/internal/wire"
)

// ReaderOptions configures a Reader.
type ReaderOptions struct {
	// Logger receives structured debug output. Defaults to a no-op logger.
	Logger *Logger
}

// Reader provides selective column access to a COLF container. The header is
// parsed and validated once at open time; the resulting metadata is held
// immutably for the reader's lifetime. Column reads are independent and
// stateless: nothing is cached across calls, and only requested columns are
// ever read or decompressed.
type Reader struct {
	blob     blobstore.Blob
	rowCount int64
	metas    []ColumnMeta
	byName   map[string]int
	logger   *Logger
}

// Open opens a COLF container on the local filesystem.
func Open(path string, optFns ...func(o *ReaderOptions)) (*Reader, error) {
	blob, err := blobstore.OpenLocal(path)
	if err != nil {
		return nil, err
	}

	r, err := OpenBlob(context.Background(), blob, optFns...)
	if err != nil {
		_ = blob.Close()
		return nil, err
	}
	return r, nil
}

// OpenStore opens a COLF container stored under name in a blob store.
func OpenStore(ctx context.Context, store blobstore.BlobStore, name string, optFns ...func(o *ReaderOptions)) (*Reader, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}

	r, err := OpenBlob(ctx, blob, optFns...)
	if err != nil {
		_ = blob.Close()
		return nil, err
	}
	return r, nil
}

// OpenBytes opens a COLF container held entirely in memory. It is the
// counterpart to Writer.Marshal.
func OpenBytes(data []byte, optFns ...func(o *ReaderOptions)) (*Reader, error) {
	return OpenBlob(context.Background(), bytesBlob(data), optFns...)
}

// OpenBlob opens a COLF container from an already-open blob. The reader takes
// ownership of blob on success and releases it on Close; on error the caller
// keeps ownership.
func OpenBlob(ctx context.Context, blob blobstore.Blob, optFns ...func(o *ReaderOptions)) (*Reader, error) {
	var opts ReaderOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}

	r := &Reader{
		blob:   blob,
		logger: opts.Logger,
	}
	if err := r.readHeader(ctx); err != nil {
		return nil, err
	}

	r.logger.Debug("opened container",
		"columns", len(r.metas),
		"rows", r.rowCount,
		"size", blob.Size(),
	)

	return r, nil
}

// RowCount returns the number of rows, uniform across every column.
func (r *Reader) RowCount() int64 {
	return r.rowCount
}

// Columns returns the column metadata in declaration order.
func (r *Reader) Columns() []ColumnMeta {
	return append([]ColumnMeta(nil), r.metas...)
}

// ColumnNames returns the column names in declaration order.
func (r *Reader) ColumnNames() []string {
	names := make([]string, len(r.metas))
	for i, m := range r.metas {
		names[i] = m.Name
	}
	return names
}

// ReadColumn reads, decompresses and decodes a single column.
func (r *Reader) ReadColumn(ctx context.Context, name string) (column.Data, error) {
	idx, ok := r.byName[name]
	if !ok {
		return column.Data{}, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	meta := r.metas[idx]

	block := make([]byte, meta.CompressedSize)
	if err := r.readFull(ctx, block, meta.Offset); err != nil {
		return column.Data{}, fmt.Errorf("failed to read block of column %q: %w", name, err)
	}

	raw, err := compress.Decompress(block, int(meta.RawSize))
	if err != nil {
		return column.Data{}, fmt.Errorf("column %q: %w", name, err)
	}

	data, err := column.Decode(meta.Type, raw, int(r.rowCount))
	if err != nil {
		return column.Data{}, fmt.Errorf("column %q: %w", name, err)
	}

	r.logger.Debug("read column",
		"column", name,
		"type", meta.Type.String(),
		"compressed_size", meta.CompressedSize,
		"raw_size", meta.RawSize,
	)

	return data, nil
}

// ReadColumns reads the requested columns and returns them keyed by name.
// Columns not requested are never read or decompressed.
func (r *Reader) ReadColumns(ctx context.Context, names []string) (map[string]column.Data, error) {
	result := make(map[string]column.Data, len(names))
	for _, name := range names {
		data, err := r.ReadColumn(ctx, name)
		if err != nil {
			return nil, err
		}
		result[name] = data
	}
	return result, nil
}

// ReadAll reads every column in the container.
func (r *Reader) ReadAll(ctx context.Context) (map[string]column.Data, error) {
	return r.ReadColumns(ctx, r.ColumnNames())
}

// Close releases the underlying blob handle.
func (r *Reader) Close() error {
	return r.blob.Close()
}

// readHeader parses and validates the container header: magic, version,
// counts, then every column metadata record in declaration order.
func (r *Reader) readHeader(ctx context.Context) error {
	br := bufio.NewReader(io.NewSectionReader(&blobReaderAt{ctx: ctx, blob: r.blob}, 0, r.blob.Size()))

	prelude := make([]byte, preludeSize)
	if err := readHeaderFull(br, prelude); err != nil {
		return err
	}

	if !bytes.Equal(prelude[:4], []byte(Magic)) {
		return ErrInvalidMagic
	}
	if prelude[4] != Version {
		return fmt.Errorf("%w: 0x%02x", ErrInvalidVersion, prelude[4])
	}

	columnCount := wire.Int32(prelude[5:])
	r.rowCount = wire.Int64(prelude[9:])

	if columnCount < 0 {
		return fmt.Errorf("%w: negative column count %d", ErrInvalidHeader, columnCount)
	}
	if r.rowCount < 0 {
		return fmt.Errorf("%w: negative row count %d", ErrInvalidHeader, r.rowCount)
	}
	if int64(columnCount)*metaFixedSize > r.blob.Size() {
		return fmt.Errorf("%w: column count %d exceeds file size", ErrInvalidHeader, columnCount)
	}

	r.metas = make([]ColumnMeta, 0, columnCount)
	r.byName = make(map[string]int, columnCount)

	lenBuf := make([]byte, wire.SizeInt32)
	fixedBuf := make([]byte, metaFixedSize-wire.SizeInt32)

	for i := int32(0); i < columnCount; i++ {
		if err := readHeaderFull(br, lenBuf); err != nil {
			return err
		}
		nameLen := wire.Int32(lenBuf)
		if nameLen < 0 || int64(nameLen) > r.blob.Size() {
			return fmt.Errorf("%w: column %d has name length %d", ErrInvalidHeader, i, nameLen)
		}

		nameBuf := make([]byte, nameLen)
		if err := readHeaderFull(br, nameBuf); err != nil {
			return err
		}
		name := string(nameBuf)

		if err := readHeaderFull(br, fixedBuf); err != nil {
			return err
		}

		typ := column.Type(fixedBuf[0])
		if !typ.Valid() {
			return fmt.Errorf("%w: tag %d for column %q", column.ErrUnknownType, fixedBuf[0], name)
		}

		meta := ColumnMeta{
			Name:           name,
			Type:           typ,
			Offset:         wire.Int64(fixedBuf[1:]),
			CompressedSize: wire.Int32(fixedBuf[9:]),
			RawSize:        wire.Int32(fixedBuf[13:]),
		}
		if meta.Offset < 0 || meta.CompressedSize < 0 || meta.RawSize < 0 {
			return fmt.Errorf("%w: column %q has negative offset or size", ErrInvalidHeader, name)
		}
		if meta.Offset+int64(meta.CompressedSize) > r.blob.Size() {
			return fmt.Errorf("%w: column %q block extends beyond file end", ErrInvalidHeader, name)
		}

		if _, dup := r.byName[name]; dup {
			return fmt.Errorf("%w: duplicate column name %q", ErrInvalidHeader, name)
		}
		r.byName[name] = len(r.metas)
		r.metas = append(r.metas, meta)
	}

	return nil
}

// readFull reads exactly len(p) bytes at off from the underlying blob.
func (r *Reader) readFull(ctx context.Context, p []byte, off int64) error {
	for len(p) > 0 {
		n, err := r.blob.ReadAt(ctx, p, off)
		if n > 0 {
			p = p[n:]
			off += int64(n)
			continue
		}
		if err == nil {
			err = io.ErrNoProgress
		}
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return err
	}
	return nil
}

// readHeaderFull fills buf from the header stream, mapping EOF onto
// ErrInvalidHeader since a header that ends early is a malformed container.
func readHeaderFull(br *bufio.Reader, buf []byte) error {
	if _, err := io.ReadFull(br, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: truncated", ErrInvalidHeader)
		}
		return err
	}
	return nil
}

// blobReaderAt adapts a context-aware Blob to io.ReaderAt for use with
// io.SectionReader during header parsing.
type blobReaderAt struct {
	ctx  context.Context
	blob blobstore.Blob
}

func (a *blobReaderAt) ReadAt(p []byte, off int64) (int, error) {
	return a.blob.ReadAt(a.ctx, p, off)
}

// bytesBlob serves a byte slice through the Blob interface.
type bytesBlob []byte

func (b bytesBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("invalid read offset %d", off)
	}
	if off >= int64(len(b)) {
		return 0, io.EOF
	}
	n := copy(p, b[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (b bytesBlob) Size() int64 { return int64(len(b)) }

func (b bytesBlob) Close() error { return nil }
