// Package blobstore abstracts the destinations a finalized document can be
// exported to.
//
// The interface is write-oriented:
//
//	Create(ctx, name) (WritableBlob, error)  // streaming write
//	Put(ctx, name, data)                     // one-shot write
//	Delete(ctx, name)
//	List(ctx, prefix)
//
// Implementations:
//
//   - LocalStore: local file system, atomic temp-file + rename
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 via aws-sdk-go-v2 (streaming multipart uploads)
//   - minio.Store: MinIO and other S3-compatible storage
package blobstore
