package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

var (
	// ErrFileNotFound is returned when a requested file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidPath is returned when a path is invalid or contains path traversal.
	ErrInvalidPath = errors.New("invalid path")
)

// BlobStorage stores and retrieves binary blobs. It backs the import
// archive (raw uploaded CSVs kept for audit) and exported files.
type BlobStorage interface {
	// Upload stores data from the reader at the specified path.
	Upload(ctx context.Context, path string, reader io.Reader) error

	// Download retrieves data from the specified path.
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the data at the specified path.
	Delete(ctx context.Context, path string) error

	// Exists checks if data exists at the specified path.
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns a URL for accessing the data at the specified path.
	// For local storage this is a filesystem path; for S3 a presigned URL.
	GetURL(ctx context.Context, path string) (string, error)
}

// Config selects and configures a blob storage backend.
type Config struct {
	Type          string
	BaseDir       string
	S3Bucket      string
	S3Region      string
	PresignExpiry time.Duration
}

// NewBlobStorage creates a BlobStorage implementation from configuration.
func NewBlobStorage(cfg Config) (BlobStorage, error) {
	switch strings.ToLower(cfg.Type) {
	case "local":
		if cfg.BaseDir == "" {
			return nil, fmt.Errorf("base_dir is required for local storage")
		}
		return NewLocalStorage(cfg.BaseDir)

	case "s3":
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("bucket is required for S3 storage")
		}
		if cfg.S3Region == "" {
			return nil, fmt.Errorf("region is required for S3 storage")
		}
		return NewS3Storage(cfg.S3Bucket, cfg.S3Region, cfg.PresignExpiry)

	default:
		return nil, fmt.Errorf("unknown storage type: %q", cfg.Type)
	}
}
