// Package storage provides object storage for archiving run summaries
// and sorted outputs.
package storage

import (
	"context"
	"io"

	"github.com/hypersort/pkg/config"
	"github.com/hypersort/pkg/errors"
)

// Storage defines the interface for archive operations.
type Storage interface {
	// Upload uploads data from reader to the specified key.
	Upload(ctx context.Context, key string, reader io.Reader) error

	// UploadFile uploads a local file to the specified key.
	UploadFile(ctx context.Context, key string, localPath string) error

	// Download downloads data from the specified key.
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists checks if an object exists at the specified key.
	Exists(ctx context.Context, key string) (bool, error)

	// GetURL returns the URL for the specified key (if applicable).
	GetURL(key string) string
}

// Type represents the storage backend type.
type Type string

const (
	TypeLocal Type = "local"
	TypeCOS   Type = "cos"
)

// New creates a Storage instance based on the configuration.
func New(cfg *config.StorageConfig) (Storage, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	switch Type(cfg.Type) {
	case TypeCOS:
		return NewCOSStorage(&COSConfig{
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
			Scheme:    cfg.Scheme,
		})
	default:
		return NewLocalStorage(cfg.LocalPath)
	}
}

func validate(cfg *config.StorageConfig) error {
	if cfg == nil {
		return errors.New(errors.CodeConfigError, "storage config is nil")
	}

	switch Type(cfg.Type) {
	case TypeLocal, Type(""):
		if cfg.LocalPath == "" {
			return errors.New(errors.CodeConfigError, "local storage path is required")
		}
	case TypeCOS:
		if cfg.Bucket == "" || cfg.Region == "" {
			return errors.New(errors.CodeConfigError, "COS bucket and region are required")
		}
		if cfg.SecretID == "" || cfg.SecretKey == "" {
			return errors.New(errors.CodeConfigError, "COS credentials are required")
		}
	default:
		return errors.Newf(errors.CodeConfigError, "unsupported storage type: %s", cfg.Type)
	}
	return nil
}
