// Package storage provides the disk-backed implementation of the upload
// store. Files live under a configured root and are served statically by the
// HTTP layer; paths handed to clients are always relative to that root.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/ports"
)

// ErrInvalidPath is returned for paths that would escape the uploads root.
var ErrInvalidPath = errors.New("storage: path outside uploads root")

// DiskStore stores uploads on the local filesystem.
type DiskStore struct {
	root string
}

// NewDiskStore creates the root directory if needed and returns the store.
func NewDiskStore(root string) (*DiskStore, error) {
	if root == "" {
		root = "uploads"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create root: %w", err)
	}
	return &DiskStore{root: root}, nil
}

// Root returns the directory uploads are stored under.
func (s *DiskStore) Root() string {
	return s.root
}

// Save writes the file under folder with a unique name derived from the
// original extension, mirroring how uploaded assets are usually referenced
// once and never renamed.
func (s *DiskStore) Save(_ context.Context, folder, name string, r io.Reader) (*ports.StoredFile, error) {
	dir, err := s.resolve(folder)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create folder: %w", err)
	}

	unique := fmt.Sprintf("%d-%09d%s", time.Now().UnixMilli(), rand.Intn(1e9), strings.ToLower(filepath.Ext(name)))
	dst := filepath.Join(dir, unique)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("storage: create file: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, r)
	if err != nil {
		_ = os.Remove(dst)
		return nil, fmt.Errorf("storage: write file: %w", err)
	}

	return &ports.StoredFile{
		Path:      path.Join(cleanFolder(folder), unique),
		Name:      unique,
		Size:      size,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (s *DiskStore) List(_ context.Context, folder string) ([]ports.StoredFile, error) {
	dir, err := s.resolve(folder)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []ports.StoredFile{}, nil
		}
		return nil, fmt.Errorf("storage: list folder: %w", err)
	}

	files := make([]ports.StoredFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, ports.StoredFile{
			Path:      path.Join(cleanFolder(folder), entry.Name()),
			Name:      entry.Name(),
			Size:      info.Size(),
			CreatedAt: info.ModTime().UTC(),
		})
	}
	return files, nil
}

func (s *DiskStore) Delete(_ context.Context, relPath string) error {
	full, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: delete file: %w", err)
	}
	return nil
}

// resolve maps a client-supplied relative path onto the root, rejecting
// anything that would climb out of it.
func (s *DiskStore) resolve(rel string) (string, error) {
	cleaned := cleanFolder(rel)
	if strings.HasPrefix(cleaned, "..") {
		return "", ErrInvalidPath
	}
	return filepath.Join(s.root, filepath.FromSlash(cleaned)), nil
}

func cleanFolder(rel string) string {
	return path.Clean("/" + strings.ReplaceAll(rel, "\\", "/"))[1:]
}
