// Package s3 provides a BlobStore implementation backed by Amazon S3.
//
// Uploads stream through an io.Pipe into the SDK's multipart upload manager,
// so large documents never have to be buffered in full.
//
// # Basic Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := s3blob.NewStore(s3.NewFromConfig(cfg), "my-bucket", "exports/")
//	emitter := emit.New(store)
package s3
