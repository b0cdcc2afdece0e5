package storage

import (
	"context"
	"io"
	"time"
)

// Package storage contains read-side object storage abstractions for
// S3-compatible backends. The service only fetches shared resources
// (typefaces) from a bucket; submission data is never written anywhere.

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// ObjectStore fetches objects by key using streaming I/O only; no local disk.
type ObjectStore interface {
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
}
