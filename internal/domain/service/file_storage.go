package service

import (
	"context"
	"errors"
	"io"
)

// ErrFileNotFound is returned by Open when no object exists under the key.
var ErrFileNotFound = errors.New("file not found")

// FileStorage is the upload boundary. The returned reference is opaque to the
// domain and is stored as-is on Store.LogoURL and Product.ImageURL.
type FileStorage interface {
	// Save writes r under key and returns the public reference.
	Save(ctx context.Context, key, contentType string, r io.Reader) (string, error)

	// Open streams a stored object. The caller closes the reader.
	Open(ctx context.Context, key string) (rc io.ReadCloser, contentType string, err error)
}
