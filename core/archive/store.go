package archive

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"stock-sync/core/storage"

	"github.com/spf13/afero"
)

// Handle identifies a saved artifact.
type Handle struct {
	// Key is the slash separated key relative to the store root.
	Key string `json:"key"`
	// Location is the backend specific address (file path or bucket object).
	Location string `json:"location"`
}

// Entry describes a stored artifact.
type Entry struct {
	Key     string    `json:"key"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// Store is a rooted, append-mostly artifact store.
type Store interface {
	// Root returns the directory or prefix the store is rooted at.
	Root() string
	// Save writes data under key, replacing any existing artifact.
	Save(ctx context.Context, key string, data []byte) (Handle, error)
	// List returns every artifact below the root, recursively.
	List(ctx context.Context) ([]Entry, error)
	// Prune deletes artifacts last modified before cutoff and returns their keys.
	Prune(ctx context.Context, cutoff time.Time) ([]string, error)
	// Ensure creates the root if it does not exist.
	Ensure(ctx context.Context) error
	// Exists reports whether the root exists.
	Exists(ctx context.Context) (bool, error)
}

// Archive groups the uploads and records stores.
type Archive struct {
	Uploads Store
	Records Store
}

// New builds the archive for the configured backend. client and bucket are
// only used by the s3 backend.
func New(cfg Config, client storage.Client, bucket string) (*Archive, error) {
	switch cfg.Backend {
	case "", BackendLocal:
		fs := afero.NewOsFs()
		return &Archive{
			Uploads: NewLocalStore(fs, cfg.UploadDir),
			Records: NewLocalStore(fs, cfg.RecordDir),
		}, nil
	case BackendS3:
		if client == nil {
			return nil, fmt.Errorf("archive backend %q requires a storage client", cfg.Backend)
		}
		return &Archive{
			Uploads: NewObjectStore(client, bucket, cfg.UploadDir),
			Records: NewObjectStore(client, bucket, cfg.RecordDir),
		}, nil
	default:
		return nil, fmt.Errorf("unknown archive backend: %s", cfg.Backend)
	}
}

// Stores returns both stores, uploads first.
func (a *Archive) Stores() []Store {
	return []Store{a.Uploads, a.Records}
}

// RecordKeys returns the keys of a run's updated-table and diff artifacts.
func RecordKeys(now time.Time, suffix string) (upload, diff string) {
	day := now.Format("20060102")
	clock := now.Format("150405")
	name := func(kind string) string {
		if suffix == "" {
			return fmt.Sprintf("%s_%s/%s_%s.xlsx", day, kind, kind, clock)
		}
		return fmt.Sprintf("%s_%s/%s_%s_%s.xlsx", day, kind, kind, clock, suffix)
	}
	return name("upload"), name("diff")
}

// UploadKey maps a client supplied filename to a flat key. Directory parts
// are dropped so an upload can never escape the uploads root.
func UploadKey(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == "/" || name == ".." {
		return "upload.xlsx"
	}
	return name
}

func contentType(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".xls":
		return "application/vnd.ms-excel"
	default:
		return "application/octet-stream"
	}
}
