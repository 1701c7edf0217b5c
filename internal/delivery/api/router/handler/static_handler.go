package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StaticHandlerParams holds dependencies for StaticHandler, injected by Fx.
type StaticHandlerParams struct {
	fx.In

	Storage service.FileStorage
	Logger  *slog.Logger
}

// StaticHandler streams uploaded logos and product images out of the bucket.
type StaticHandler struct {
	storage service.FileStorage
	logger  *slog.Logger
}

func NewStaticHandler(params StaticHandlerParams) *StaticHandler {
	return &StaticHandler{storage: params.Storage, logger: params.Logger}
}

func (h *StaticHandler) Serve(c echo.Context) error {
	key := strings.TrimPrefix(c.Param("*"), "/")
	if key == "" || strings.Contains(key, "..") {
		return response.NotFound(c, "NOT_FOUND", "File not found")
	}

	ctx := c.Request().Context()
	rc, contentType, err := h.storage.Open(ctx, key)
	if err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			return response.NotFound(c, "NOT_FOUND", "File not found")
		}

		return errors.Wrapf(err, "open static object %s", key)
	}
	defer func() {
		if err := rc.Close(); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Failed to close static object", slog.Any("error", err))
		}
	}()

	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Stream(http.StatusOK, contentType, rc)
}
