package archive

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"stock-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectStore keeps artifacts under a prefix of a MinIO/S3 bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObjectStore creates a store rooted at prefix in bucket.
func NewObjectStore(client storage.Client, bucket, prefix string) *ObjectStore {
	return &ObjectStore{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Root returns the bucket prefix.
func (s *ObjectStore) Root() string {
	return s.prefix
}

func (s *ObjectStore) object(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + "/" + key
}

func (s *ObjectStore) folder() string {
	if s.prefix == "" {
		return ""
	}
	return s.prefix + "/"
}

// Save uploads data as prefix/key.
func (s *ObjectStore) Save(ctx context.Context, key string, data []byte) (Handle, error) {
	name := s.object(key)
	_, err := s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType(key)})
	if err != nil {
		return Handle{}, fmt.Errorf("failed to upload %s: %w", name, err)
	}
	return Handle{Key: key, Location: s.bucket + "/" + name}, nil
}

// List returns every object below the prefix. Folder markers are skipped.
func (s *ObjectStore) List(ctx context.Context) ([]Entry, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    s.folder(),
		Recursive: true,
	}

	var entries []Entry
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", s.prefix, obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		entries = append(entries, Entry{
			Key:     strings.TrimPrefix(obj.Key, s.folder()),
			Size:    obj.Size,
			ModTime: obj.LastModified,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}

// Prune removes objects modified before cutoff in one batch request.
func (s *ObjectStore) Prune(ctx context.Context, cutoff time.Time) ([]string, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var stale []string
	for _, e := range entries {
		if e.ModTime.Before(cutoff) {
			stale = append(stale, e.Key)
		}
	}
	if len(stale) == 0 {
		return nil, nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(stale))
	for _, key := range stale {
		objectsCh <- minio.ObjectInfo{Key: s.object(key)}
	}
	close(objectsCh)

	failed := make(map[string]error)
	for rerr := range s.client.RemoveObjects(ctx, s.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		failed[strings.TrimPrefix(rerr.ObjectName, s.folder())] = rerr.Err
	}

	removed := make([]string, 0, len(stale))
	for _, key := range stale {
		if _, bad := failed[key]; !bad {
			removed = append(removed, key)
		}
	}
	if len(failed) > 0 {
		keys := make([]string, 0, len(failed))
		for key := range failed {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		return removed, fmt.Errorf("failed to remove %d objects, first %s: %w", len(keys), keys[0], failed[keys[0]])
	}
	return removed, nil
}

// Ensure creates the bucket if needed and writes a folder marker for the prefix.
func (s *ObjectStore) Ensure(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}
	if s.prefix == "" {
		return nil
	}
	if _, err := s.client.PutObject(ctx, s.bucket, s.folder(), bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{}); err != nil {
		return fmt.Errorf("failed to create folder %s: %w", s.prefix, err)
	}
	return nil
}

// Exists reports whether the bucket exists and holds at least one object
// under the prefix. A missing bucket is reported as false so Ensure can
// create it.
func (s *ObjectStore) Exists(ctx context.Context) (bool, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return false, nil
	}
	if s.prefix == "" {
		return true, nil
	}

	opts := minio.ListObjectsOptions{
		Prefix:    s.folder(),
		Recursive: false,
		MaxKeys:   1,
	}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return false, obj.Err
		}
		return true, nil
	}
	return false, nil
}
