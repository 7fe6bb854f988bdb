// Package cache stores rendered frames between CLI runs.
//
// A frame is the full text output of one presentation. Rendering is cheap,
// but documents are often re-rendered unchanged while being edited in a
// watch loop or embedded in generated docs, so the CLI keeps the last
// frames on disk keyed by the document content and the render options.
//
// # Implementations
//
//   - [FileCache]: entries as JSON files under a directory, with expiry
//   - [NullCache]: stores nothing, used with --no-cache
//
// # Keys
//
// Keys come from a [Keyer]. [DefaultKeyer] hashes the document content
// together with the options that change the output; [ScopedKeyer] adds a
// prefix so that different builds never read each other's frames.
package cache

import (
	"context"
	"time"
)

// TTLFrame is the default lifetime of a cached frame.
const TTLFrame = 7 * 24 * time.Hour

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value stored under key. A miss is reported with
	// ok == false and a nil error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
