package storage

import (
	"context"
	"io"
)

// ObjectInfo is metadata for one archived report object.
type ObjectInfo struct {
	Key  string
	Size int64
}

// ObjectStorage captures the minimal S3-compatible operations report
// archival needs.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader, size int64) error
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
}
