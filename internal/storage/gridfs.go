package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GridFSStorage implements Storage on top of a MongoDB GridFS bucket.
// Keys are the hex object ids of the stored files.
type GridFSStorage struct {
	client *mongo.Client
	bucket *gridfs.Bucket
}

// NewGridFSStorage connects to MongoDB and opens the default "fs" bucket of dbName.
func NewGridFSStorage(ctx context.Context, uri, dbName string) (*GridFSStorage, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	if dbName == "" {
		dbName = "classifieds"
	}
	bucket, err := gridfs.NewBucket(client.Database(dbName))
	if err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to open GridFS bucket: %w", err)
	}

	return &GridFSStorage{client: client, bucket: bucket}, nil
}

// Upload streams the file into GridFS. The stored filename keeps the
// extension so the content type can be derived from it.
func (s *GridFSStorage) Upload(ctx context.Context, fileID uuid.UUID, filename string, data io.Reader) (string, error) {
	stream, err := s.bucket.OpenUploadStream(generateStoragePath(fileID, filename))
	if err != nil {
		return "", fmt.Errorf("failed to open upload stream: %w", err)
	}

	if _, err := io.Copy(stream, data); err != nil {
		stream.Abort()
		return "", fmt.Errorf("failed to write to GridFS: %w", err)
	}
	if err := stream.Close(); err != nil {
		return "", fmt.Errorf("failed to finish GridFS upload: %w", err)
	}

	id, ok := stream.FileID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected GridFS file id type")
	}
	return id.Hex() + extOf(filename), nil
}

// Download opens a stream over a stored file.
func (s *GridFSStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	id, err := objectID(key)
	if err != nil {
		return nil, err
	}

	stream, err := s.bucket.OpenDownloadStream(id)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to download from GridFS: %w", err)
	}
	return stream, nil
}

// Delete removes a stored file. Missing files are not an error.
func (s *GridFSStorage) Delete(ctx context.Context, key string) error {
	id, err := objectID(key)
	if err != nil {
		return err
	}

	if err := s.bucket.Delete(id); err != nil && !errors.Is(err, gridfs.ErrFileNotFound) {
		return fmt.Errorf("failed to delete from GridFS: %w", err)
	}
	return nil
}

// Close disconnects the MongoDB client.
func (s *GridFSStorage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// objectID parses the object id part of a key ("<hex>.<ext>").
func objectID(key string) (primitive.ObjectID, error) {
	hex := key
	if len(hex) > 24 {
		hex = hex[:24]
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return id, nil
}
