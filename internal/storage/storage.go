package storage

import (
	"context"
	"io"
)

// PutOptions conveys upload destination metadata.
type PutOptions struct {
	Bucket      string
	KeyPrefix   string
	Name        string
	ContentType string
}

// Service archives generated documents to remote object storage.
type Service interface {
	PutObject(ctx context.Context, opts PutOptions, body io.Reader) (string, error)
}
