package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves /auth and the admin /users routes.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest accepts the OAuth2 password form as well as JSON.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type SetRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		return done(err)
	}

	user, err := h.userUC.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user))
}

// Login issues a bearer token pair.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return done(err)
	}

	out, err := h.userUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Username,
		Password: req.Password,
	})
	if err != nil {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TokenResponse{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		TokenType:    out.TokenType,
		ExpiresIn:    out.ExpiresIn,
	})
}

func (h *UserHandler) Me(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return done(err)
	}

	user, err := h.userUC.Me(c.Request().Context(), principal.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return done(err)
	}
	page, err := pagination(c)
	if err != nil {
		return done(err)
	}

	users, err := h.userUC.ListUsers(c.Request().Context(), principal, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponses(users))
}

func (h *UserHandler) GetUser(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return done(err)
	}
	userID, err := uuidParam(c, "id")
	if err != nil {
		return done(err)
	}

	user, err := h.userUC.GetUser(c.Request().Context(), principal, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// SetRole accepts roles in any letter case.
func (h *UserHandler) SetRole(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return done(err)
	}
	userID, err := uuidParam(c, "id")
	if err != nil {
		return done(err)
	}

	var req SetRoleRequest
	if err := bind(c, &req); err != nil {
		return done(err)
	}
	role, ok := entity.ParseRole(req.Role)
	if !ok {
		return response.BadRequest(c, "VALIDATION_ERROR", "role must be one of ADMIN, OWNER, CUSTOMER")
	}

	user, err := h.userUC.SetRole(c.Request().Context(), principal, userID, role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// HealthCheck is used by load balancers and the container runtime.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
