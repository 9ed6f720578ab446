// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/gpscore/schema"
)

// HTTPGetter performs a single GET request.
// This allows the name resolver to be tested without any network access.
type HTTPGetter interface {
	// Get fetches url and returns the status code and body. A non-2xx status is
	// not an error; only transport failures are.
	Get(ctx context.Context, url string) (schema.HTTPResponse, error)
}

// NameResolver maps a practice code to a human-readable name.
type NameResolver interface {
	// Resolve never fails; it returns schema.UnknownName when no name can be found.
	Resolve(ctx context.Context, code string) string
}

// DatasetLoader reads a practice table from disk.
type DatasetLoader interface {
	Load(ctx context.Context, path string, opts DatasetOptions) (*schema.Dataset, error)
}

// DatasetOptions narrows what a DatasetLoader returns.
type DatasetOptions struct {
	Sheet string // XLSX sheet name; empty means the first sheet
	ICB   string // Keep only rows with this ICB code; empty keeps all rows
}
