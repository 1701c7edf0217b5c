package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// UploadLimit caps multipart bodies at limit bytes. Zero disables the cap.
func UploadLimit(limit int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limit > 0 {
				req := c.Request()
				req.Body = http.MaxBytesReader(c.Response(), req.Body, limit)
			}

			return next(c)
		}
	}
}

// IsMultipart reports whether the request carries a multipart form.
func IsMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}
