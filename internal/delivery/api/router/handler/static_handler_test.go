package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/internal/domain/service"
	mockSvc "marketplace/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newStaticTestServer(t *testing.T) (*echo.Echo, *mockSvc.MockFileStorage) {
	t.Helper()

	storage := mockSvc.NewMockFileStorage(t)
	h := NewStaticHandler(StaticHandlerParams{Storage: storage, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/static/*", h.Serve)

	return e, storage
}

func TestStaticHandler(t *testing.T) {
	t.Run("streams object", func(t *testing.T) {
		e, storage := newStaticTestServer(t)
		storage.EXPECT().Open(mock.Anything, "store_logos/a.png").
			Return(io.NopCloser(strings.NewReader("png")), "image/png", nil).Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/store_logos/a.png", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "png", rec.Body.String())
	})

	t.Run("missing object", func(t *testing.T) {
		e, storage := newStaticTestServer(t)
		storage.EXPECT().Open(mock.Anything, "images/products/x.jpg").Return(nil, "", service.ErrFileNotFound).Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/images/products/x.jpg", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("path traversal", func(t *testing.T) {
		e, _ := newStaticTestServer(t)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/..%2fconfig.yaml", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
