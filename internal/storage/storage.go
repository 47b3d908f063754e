package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// Package storage holds the transient scratch area used while an upload is
// being extracted. Objects live for one request only: the service deletes
// them on every exit path and Purge sweeps leftovers at shutdown.

// ErrInvalidKey is returned for keys that would escape the scratch area.
var ErrInvalidKey = errors.New("invalid object key")

// PutObjectOptions define optional parameters for staging objects.
// Size should be the exact number of bytes if known, or -1 when unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a staged object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the scratch store abstraction with disk and S3-compatible
// implementations.
type Storage interface {
	// Put stages an object under key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get returns a streaming reader for a staged object alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Purge removes every object in the scratch area.
	Purge(ctx context.Context) (int, error)
}
