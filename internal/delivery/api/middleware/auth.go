package middleware

import (
	"log/slog"
	"strings"

	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	principalKey = "principal"
	bearerPrefix = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// AuthMiddleware resolves bearer tokens into a Principal.
type AuthMiddleware struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{userUC: params.UserUC, logger: params.Logger}
}

// Authenticate rejects the request with 401 unless it carries a valid access
// token of an active user.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := BearerToken(c)
		if !ok {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

			return response.Unauthorized(c, "UNAUTHORIZED", "Not authenticated")
		}

		user, err := m.userUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected bearer token", slog.Any("error", err))
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

			return response.HandleAppError(c, err)
		}

		SetPrincipal(c, user.Principal())

		return next(c)
	}
}

// RequireAdmin must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := GetPrincipal(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Not authenticated")
		}
		if !principal.IsAdmin() {
			return response.Forbidden(c, "FORBIDDEN", "Admin role required")
		}

		return next(c)
	}
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}

func SetPrincipal(c echo.Context, principal entity.Principal) {
	c.Set(principalKey, principal)
}

// GetPrincipal returns the identity set by Authenticate.
func GetPrincipal(c echo.Context) (entity.Principal, bool) {
	principal, ok := c.Get(principalKey).(entity.Principal)

	return principal, ok && principal.UserID != uuid.Nil
}

// GetUserID returns the authenticated user's id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	principal, ok := GetPrincipal(c)

	return principal.UserID, ok
}
