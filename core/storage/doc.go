// Package storage connects to S3-compatible object storage.
//
// It wraps the MinIO Go client behind the Client interface, which lists only
// the calls the archive's s3 backend makes. Both AWS S3 and self-hosted
// MinIO are supported.
//
// The interface keeps storage interactions mockable in unit tests (see
// core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
