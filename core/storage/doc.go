// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that database backups and spreadsheet
// exports can be copied offsite to AWS S3 or a self-hosted MinIO instance.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - EnsureBucket: Creates the target bucket on first use.
//   - Upload: Stores a stream under a key.
//   - List: Lists every object under a prefix (used for backup retention).
//   - Remove: Deletes a batch of keys.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket); err != nil {
//	    return err
//	}
//	err = storage.Upload(ctx, client, cfg.Storage.Bucket, "backups/assets.db", f, size, "application/octet-stream")
package storage
