package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/hypersort/pkg/errors"
)

// LocalStorage implements Storage on the local filesystem.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new LocalStorage rooted at basePath.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if basePath == "" {
		basePath = "./archive"
	}

	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, errors.Wrap(errors.CodeStorage, "create archive directory", err)
	}

	return &LocalStorage{basePath: basePath}, nil
}

// Upload uploads data from reader to the specified key.
func (s *LocalStorage) Upload(ctx context.Context, key string, reader io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath := s.fullPath(key)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return errors.Wrap(errors.CodeStorage, "create directory", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return errors.Wrap(errors.CodeStorage, "create file", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return errors.Wrap(errors.CodeStorage, "write file", err)
	}
	return nil
}

// UploadFile uploads a local file to the specified key.
func (s *LocalStorage) UploadFile(ctx context.Context, key string, localPath string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return errors.Wrap(errors.CodeStorage, "open source file", err)
	}
	defer file.Close()

	return s.Upload(ctx, key, file)
}

// Download downloads data from the specified key.
func (s *LocalStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(s.fullPath(key))
	if err != nil {
		return nil, errors.Wrap(errors.CodeStorage, "open archived object", err)
	}
	return file, nil
}

// Exists checks if an object exists at the specified key.
func (s *LocalStorage) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := os.Stat(s.fullPath(key))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrap(errors.CodeStorage, "stat archived object", err)
}

// GetURL returns the filesystem path for the specified key.
func (s *LocalStorage) GetURL(key string) string {
	return s.fullPath(key)
}

func (s *LocalStorage) fullPath(key string) string {
	return filepath.Join(s.basePath, filepath.FromSlash(key))
}
