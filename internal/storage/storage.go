// Package storage keeps listing photos in a pluggable backend.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ErrNotFound is returned when no object is stored under a key.
var ErrNotFound = errors.New("stored file not found")

// Storage interface for photo storage operations
type Storage interface {
	// Upload stores a file and returns the storage key
	Upload(ctx context.Context, fileID uuid.UUID, filename string, data io.Reader) (string, error)

	// Download retrieves a file by storage key
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a file by storage key
	Delete(ctx context.Context, key string) error
}

// StorageType represents the storage backend type
type StorageType string

const (
	StorageTypeLocal  StorageType = "local"
	StorageTypeS3     StorageType = "s3"
	StorageTypeGridFS StorageType = "gridfs"
)

// StorageConfig holds configuration for storage
type StorageConfig struct {
	Type         StorageType
	LocalPath    string // For local storage
	S3Bucket     string // For S3 storage
	S3Region     string // For S3 storage
	S3Endpoint   string // For S3 compatible stores such as MinIO, path-style addressing
	AWSAccessKey string
	AWSSecretKey string
	MongoURI     string // For GridFS storage
	MongoDB      string // For GridFS storage
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(ctx context.Context, cfg StorageConfig) (Storage, error) {
	switch cfg.Type {
	case StorageTypeLocal, "":
		path := cfg.LocalPath
		if path == "" {
			path = "./storage/photos"
		}
		return NewLocalStorage(path)
	case StorageTypeS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET is required for S3 storage")
		}
		return NewS3Storage(ctx, cfg)
	case StorageTypeGridFS:
		if cfg.MongoURI == "" {
			return nil, errors.New("MONGO_URI is required for GridFS storage")
		}
		return NewGridFSStorage(ctx, cfg.MongoURI, cfg.MongoDB)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// generateStoragePath builds a unique key for a file: a two character shard
// directory, the file id and a slug of the original name.
func generateStoragePath(fileID uuid.UUID, filename string) string {
	ext := extOf(filename)
	baseName := slug.Make(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	if baseName == "" {
		baseName = "photo"
	}

	id := fileID.String()
	return fmt.Sprintf("%s/%s_%s%s", id[:2], id, baseName, ext)
}

// ContentType determines the content type of a stored photo from its key.
func ContentType(key string) string {
	switch strings.ToLower(filepath.Ext(key)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return defaultContentType
	}
}

const defaultContentType = "application/octet-stream"

// IsImage reports whether filename carries one of the supported image extensions.
func IsImage(filename string) bool {
	return ContentType(filename) != defaultContentType
}

func extOf(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
