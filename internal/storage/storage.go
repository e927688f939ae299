package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage is the object-store boundary used by media uploads. Binaries are
// written under caller-chosen paths; URL derives the public address a row
// can reference.
type Storage interface {
	// Save stores the object at path, overwriting any previous content.
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Delete removes the object at path. Deleting a missing object is not
	// an error.
	Delete(ctx context.Context, path string) error

	// Exists checks whether an object is stored at path.
	Exists(ctx context.Context, path string) (bool, error)

	// URL returns the public URL for the object at path.
	URL(path string) string
}

// Config selects and parameterizes a storage backend.
type Config struct {
	Type      string // "local" or "s3"
	BasePath  string // local: filesystem root
	BaseURL   string // public URL base
	Bucket    string // s3
	Region    string // s3
	AccessKey string // s3
	SecretKey string // s3
	Endpoint  string // s3: custom endpoint (R2 or any S3-compatible store)
}

// New creates a storage backend from configuration.
func New(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
