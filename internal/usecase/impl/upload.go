package impl

import (
	"context"
	"path"
	"strings"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
)

// uploadKey names a new object under prefix, keeping the client's extension.
func uploadKey(prefix, filename string) string {
	return prefix + "/" + uuid.NewString() + strings.ToLower(path.Ext(filename))
}

// saveUpload stores upload and returns its public reference. A nil upload is a no-op.
func saveUpload(ctx context.Context, storage service.FileStorage, prefix string, upload *usecase.Upload) (*string, error) {
	if upload == nil || upload.Content == nil {
		return nil, nil
	}

	ref, err := storage.Save(ctx, uploadKey(prefix, upload.Filename), upload.ContentType, upload.Content)
	if err != nil {
		return nil, domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}

	return &ref, nil
}
