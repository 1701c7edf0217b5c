package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUC "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDeviceTestServer(t *testing.T, principal entity.Principal) (*echo.Echo, *mockUC.MockDeviceUsecase) {
	t.Helper()

	deviceUC := mockUC.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("/devices", as(principal))
	g.POST("", h.RegisterDevice)
	g.GET("", h.GetUserDevices)
	g.PUT("/:id/token", h.UpdateFCMToken)
	g.DELETE("/:id", h.DeactivateDevice)

	return e, deviceUC
}

func TestDeviceHandler(t *testing.T) {
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleOwner}

	t.Run("register web device", func(t *testing.T) {
		e, deviceUC := newDeviceTestServer(t, owner)
		info := &usecase.DeviceInfo{FCMToken: "tok", DeviceID: "browser-1", Platform: "web"}
		deviceUC.EXPECT().RegisterDevice(mock.Anything, owner.UserID, info).
			Return(&entity.UserDevice{ID: uuid.New(), UserID: owner.UserID, FCMToken: "tok", Platform: "web", IsActive: true}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/devices", strings.NewReader(`{"fcm_token":"tok","device_id":"browser-1","platform":"web"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unknown platform", func(t *testing.T) {
		e, _ := newDeviceTestServer(t, owner)

		req := httptest.NewRequest(http.MethodPost, "/devices", strings.NewReader(`{"fcm_token":"tok","device_id":"d","platform":"symbian"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update token of someone else's device", func(t *testing.T) {
		e, deviceUC := newDeviceTestServer(t, owner)
		deviceID := uuid.New()
		deviceUC.EXPECT().UpdateFCMToken(mock.Anything, owner.UserID, deviceID, "new").Return(domainerrors.ErrForbidden).Once()

		req := httptest.NewRequest(http.MethodPut, "/devices/"+deviceID.String()+"/token", strings.NewReader(`{"fcm_token":"new"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("deactivate", func(t *testing.T) {
		e, deviceUC := newDeviceTestServer(t, owner)
		deviceID := uuid.New()
		deviceUC.EXPECT().DeactivateDevice(mock.Anything, owner.UserID, deviceID).Return(nil).Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/devices/"+deviceID.String(), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		e, deviceUC := newDeviceTestServer(t, owner)
		deviceUC.EXPECT().GetUserDevices(mock.Anything, owner.UserID).Return([]*entity.UserDevice{}, nil).Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/devices", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
