// Package compress implements whole-buffer block compression for COLF column
// blocks.
//
// The container format carries no checksum; the only corruption detection is
// the expected-size check performed by Decompress. Callers must therefore
// always pass the raw size recorded in the column metadata and treat
// ErrSizeMismatch as fatal for that block.
package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Compression levels accepted by Compress. They mirror the zlib levels.
const (
	DefaultLevel     = zlib.DefaultCompression
	BestSpeed        = zlib.BestSpeed
	BestCompression  = zlib.BestCompression
	HuffmanOnlyLevel = zlib.HuffmanOnly
)

// ErrSizeMismatch is returned when a decompressed block does not have the
// declared raw size. It indicates a corrupted or truncated column block.
var ErrSizeMismatch = errors.New("decompressed size mismatch")

// Compress deflates data into a zlib stream using the given level.
// An empty input produces a valid (header-only) stream.
func Compress(data []byte, level int) ([]byte, error) {
	var buf bytes.Buffer

	zw, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, fmt.Errorf("failed to create compressor: %w", err)
	}
	if _, err := zw.Write(data); err != nil {
		_ = zw.Close()
		return nil, fmt.Errorf("failed to compress block: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush compressor: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress inflates data and verifies that the result is exactly
// expectedSize bytes long. Any other length fails with ErrSizeMismatch.
func Decompress(data []byte, expectedSize int) ([]byte, error) {
	if expectedSize < 0 {
		return nil, fmt.Errorf("%w: expected %d, got 0", ErrSizeMismatch, expectedSize)
	}

	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open compressed block: %w", err)
	}
	defer zr.Close()

	result := make([]byte, 0, expectedSize)
	out := bytes.NewBuffer(result)

	// Stop after expectedSize+1 bytes so a block lying about its raw size
	// cannot force inflating an arbitrarily large stream.
	if _, err := io.Copy(out, io.LimitReader(zr, int64(expectedSize)+1)); err != nil {
		return nil, fmt.Errorf("failed to decompress block: %w", err)
	}

	if out.Len() != expectedSize {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrSizeMismatch, expectedSize, out.Len())
	}

	return out.Bytes(), nil
}
