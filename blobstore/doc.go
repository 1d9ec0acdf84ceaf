// Package blobstore provides storage abstraction for COLF containers.
//
// BlobStore is the interface for reading and writing container blobs.
// Implementations must be safe for concurrent use. Containers are write-once,
// so writes are either an atomic whole-blob Put or a streaming Create/Close;
// reads are stateless positioned ReadAt calls, which keeps selective column
// access efficient on both local disks (pread) and object stores (ranged GETs).
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem with atomic temp-file + rename publishing
//   - MemoryStore: in-memory store for tests
//   - s3.Store: Amazon S3 with range reads and managed uploads
//   - minio.Store: MinIO / S3-compatible object storage
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)            // Open for reading
//	    Create(ctx, name) (WritableBlob, error)  // Create for writing
//	    Put(ctx, name, data) error               // Atomic write
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
