package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"
	"marketplace/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// errResponded signals that the helper already wrote the error envelope.
var errResponded = errors.New("response already written")

// done turns errResponded back into a nil handler result.
func done(err error) error {
	if errors.Is(err, errResponded) {
		return nil
	}

	return err
}

func principalOf(c echo.Context) (entity.Principal, error) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		if err := response.Unauthorized(c, "UNAUTHORIZED", "Not authenticated"); err != nil {
			return entity.Principal{}, err
		}

		return entity.Principal{}, errResponded
	}

	return principal, nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		if err := response.BadRequest(c, "INVALID_ID", "Invalid "+name); err != nil {
			return uuid.Nil, err
		}

		return uuid.Nil, errResponded
	}

	return id, nil
}

// pagination reads ?skip=&limit=; absent values fall back to the usecase defaults.
func pagination(c echo.Context) (usecase.Pagination, error) {
	var page usecase.Pagination
	for key, dst := range map[string]*int{"skip": &page.Skip, "limit": &page.Limit} {
		raw := c.QueryParam(key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			if err := response.BadRequest(c, "INVALID_QUERY", key+" must be a non-negative integer"); err != nil {
				return page, err
			}

			return page, errResponded
		}
		*dst = n
	}

	return page, nil
}

// bind decodes and validates a request body.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		if err := response.BindingError(c, "INVALID_INPUT", "Malformed request body"); err != nil {
			return err
		}

		return errResponded
	}
	if err := c.Validate(req); err != nil {
		if err := response.BadRequest(c, "VALIDATION_ERROR", err.Error()); err != nil {
			return err
		}

		return errResponded
	}

	return nil
}

// multipartForm parses the upload request once. Oversized bodies get 413.
func multipartForm(c echo.Context) (*multipart.Form, error) {
	form, err := c.MultipartForm()
	if err == nil {
		return form, nil
	}

	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		err = response.Error(c, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE",
			"Upload exceeds the limit of "+util.FormatBytes(tooLarge.Limit), nil)
	default:
		err = response.BindingError(c, "INVALID_INPUT", "Expected a multipart form")
	}
	if err != nil {
		return nil, err
	}

	return nil, errResponded
}

// formValue returns nil when the field was not submitted at all.
func formValue(form *multipart.Form, key string) *string {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}

	return &values[0]
}

// formFile opens the first file under key. The returned closer is never nil.
func formFile(form *multipart.Form, key string) (*usecase.Upload, func(), error) {
	files := form.File[key]
	if len(files) == 0 || files[0].Filename == "" {
		return nil, func() {}, nil
	}

	header := files[0]
	f, err := header.Open()
	if err != nil {
		return nil, func() {}, errors.WithStack(err)
	}

	upload := &usecase.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Content:     f,
	}

	return upload, func() { _ = f.Close() }, nil
}

func optionalUUID(c echo.Context, raw *string, field string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		if err := response.BadRequest(c, "VALIDATION_ERROR", field+" must be a UUID"); err != nil {
			return nil, err
		}

		return nil, errResponded
	}

	return &id, nil
}
