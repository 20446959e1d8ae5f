// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"io"
)

// StorageService defines the interface for object storage operations.
// Objects are keyed by a path prefix (e.g. "cards/{id}/...").
type StorageService interface {
	// Put uploads an object under the given key.
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error

	// PresignedURL issues a time-limited signed download URL for the given key.
	PresignedURL(ctx context.Context, key string) (string, error)

	// List returns the object keys under the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// Remove deletes the object under the given key.
	Remove(ctx context.Context, key string) error
}
