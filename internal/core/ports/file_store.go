package ports

import (
	"context"
	"io"
	"time"
)

// StoredFile describes a file held by the store.
type StoredFile struct {
	Path      string
	Name      string
	Size      int64
	CreatedAt time.Time
}

// FileStore abstracts upload storage. Paths are relative to the store root
// and use forward slashes; implementations must reject paths escaping the
// root.
type FileStore interface {
	Save(ctx context.Context, folder, name string, r io.Reader) (*StoredFile, error)
	List(ctx context.Context, folder string) ([]StoredFile, error)
	Delete(ctx context.Context, path string) error
}
