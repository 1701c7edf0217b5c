package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
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

func newUserTestServer(t *testing.T, principal *entity.Principal) (*echo.Echo, *mockUC.MockUserUsecase) {
	t.Helper()

	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	var mw []echo.MiddlewareFunc
	if principal != nil {
		mw = append(mw, as(*principal))
	}
	e.POST("/auth/register", h.Register)
	e.POST("/auth/token", h.Login)
	e.GET("/auth/users/me", h.Me, mw...)
	e.GET("/users", h.ListUsers, mw...)
	e.GET("/users/:id", h.GetUser, mw...)
	e.PUT("/users/:id/role", h.SetRole, mw...)

	return e, userUC
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("created without password hash", func(t *testing.T) {
		e, userUC := newUserTestServer(t, nil)
		user := &entity.User{ID: uuid.New(), Email: "a@b.io", PasswordHash: "secret-hash", IsActive: true, Role: entity.RoleAdmin}
		userUC.EXPECT().Register(mock.Anything, usecase.RegisterInput{Email: "a@b.io", Password: "password1"}).
			Return(user, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"a@b.io","password":"password1"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret-hash")
		var got UserResponse
		decodeData(t, rec, &got)
		assert.Equal(t, entity.RoleAdmin, got.Role)
		assert.Empty(t, got.Stores)
	})

	t.Run("invalid email never reaches the usecase", func(t *testing.T) {
		e, _ := newUserTestServer(t, nil)

		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"nope","password":"password1"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		e, userUC := newUserTestServer(t, nil)
		userUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists).Once()

		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"a@b.io","password":"password1"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("oauth2 password form", func(t *testing.T) {
		e, userUC := newUserTestServer(t, nil)
		userUC.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "a@b.io", Password: "pw"}).
			Return(&usecase.LoginOutput{AccessToken: "at", RefreshToken: "rt", TokenType: "bearer", ExpiresIn: 900}, nil).Once()

		form := url.Values{"username": {"a@b.io"}, "password": {"pw"}}
		req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got TokenResponse
		decodeData(t, rec, &got)
		assert.Equal(t, "at", got.AccessToken)
		assert.Equal(t, "bearer", got.TokenType)
		assert.Equal(t, int64(900), got.ExpiresIn)
	})

	t.Run("wrong password", func(t *testing.T) {
		e, userUC := newUserTestServer(t, nil)
		userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Once()

		req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"username":"a@b.io","password":"bad"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	})
}

func TestUserHandler_AdminRoutes(t *testing.T) {
	admin := entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}
	target := &entity.User{ID: uuid.New(), Email: "c@d.io", IsActive: true, Role: entity.RoleCustomer}

	t.Run("list passes pagination", func(t *testing.T) {
		e, userUC := newUserTestServer(t, &admin)
		userUC.EXPECT().ListUsers(mock.Anything, admin, usecase.Pagination{Skip: 10, Limit: 5}).
			Return([]*entity.User{target}, nil).Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users?skip=10&limit=5", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []UserResponse
		decodeData(t, rec, &got)
		assert.Len(t, got, 1)
	})

	t.Run("negative skip", func(t *testing.T) {
		e, _ := newUserTestServer(t, &admin)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users?skip=-1", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get unknown user", func(t *testing.T) {
		e, userUC := newUserTestServer(t, &admin)
		userUC.EXPECT().GetUser(mock.Anything, admin, target.ID).Return(nil, domainerrors.ErrUserNotFound).Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/"+target.ID.String(), nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("set role is case insensitive", func(t *testing.T) {
		e, userUC := newUserTestServer(t, &admin)
		promoted := *target
		promoted.Role = entity.RoleOwner
		userUC.EXPECT().SetRole(mock.Anything, admin, target.ID, entity.RoleOwner).Return(&promoted, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/users/"+target.ID.String()+"/role", strings.NewReader(`{"role":"owner"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("set unknown role", func(t *testing.T) {
		e, _ := newUserTestServer(t, &admin)

		req := httptest.NewRequest(http.MethodPut, "/users/"+target.ID.String()+"/role", strings.NewReader(`{"role":"king"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("me without principal", func(t *testing.T) {
		e, _ := newUserTestServer(t, nil)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/users/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
