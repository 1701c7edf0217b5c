// Package storage keeps uploaded images in a gocloud bucket. The bucket URL
// picks the driver: file:// for local disks, gs:// in production, mem:// in tests.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const defaultContentType = "application/octet-stream"

// BlobStorage implements service.FileStorage on a gocloud bucket.
type BlobStorage struct {
	bucket       *blob.Bucket
	publicPrefix string
}

// Params holds dependencies for the blob storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens the configured bucket and closes it on shutdown.
func NewBlobStorage(params Params) (service.FileStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Blob storage ready", slog.String("bucket", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBucketStorage(bucket, cfg.PublicPrefix), nil
}

// NewBucketStorage wraps an already opened bucket.
func NewBucketStorage(bucket *blob.Bucket, publicPrefix string) *BlobStorage {
	return &BlobStorage{bucket: bucket, publicPrefix: publicPrefix}
}

func (s *BlobStorage) Save(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	if contentType == "" {
		contentType = defaultContentType
	}

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	// Close commits the object; a failure here means nothing was stored.
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit %s", key)
	}

	return s.publicPrefix + key, nil
}

func (s *BlobStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if err := validateKey(key); err != nil {
		return nil, "", service.ErrFileNotFound
	}

	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrFileNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open %s", key)
	}

	contentType := r.ContentType()
	if contentType == "" {
		contentType = defaultContentType
	}

	return r, contentType, nil
}

func validateKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") {
		return errors.Errorf("invalid object key %q", key)
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." || part == "." || part == "" {
			return errors.Errorf("invalid object key %q", key)
		}
	}

	return nil
}

// Module provides the blob storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewBlobStorage),
)
