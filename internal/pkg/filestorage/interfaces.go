package filestorage

import (
	"context"
	"io"
)

// BlobStore is path-addressed binary storage, separate from the document
// store. An upload to an existing path replaces the previous content.
type BlobStore interface {
	// Upload writes everything from r under path.
	Upload(ctx context.Context, path string, r io.Reader) error
}

// URLResolver maps a blob path to the address clients fetch it from.
type URLResolver interface {
	URL(path string) string
}
