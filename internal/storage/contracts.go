// Package storage defines the blob store contract for uploaded invoice
// documents.
package storage

import (
	"context"
	"time"
)

// BlobStore persists raw invoice documents and hands out read access to them.
type BlobStore interface {
	// Put uploads content under a generated blob name derived from fileName
	// and returns the full blob URL.
	Put(ctx context.Context, content []byte, fileName, contentType string) (string, error)

	// Get downloads the blob at blobURL and returns its content and
	// content type.
	Get(ctx context.Context, blobURL string) ([]byte, string, error)

	// SASURL returns a time-limited read URL for the blob at blobURL.
	SASURL(ctx context.Context, blobURL string, ttl time.Duration) (string, error)
}
