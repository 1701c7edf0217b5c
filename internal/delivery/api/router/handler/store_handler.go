package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
	Logger  *slog.Logger
}

// StoreHandler serves /stores. Writes are multipart so a logo can ride along.
type StoreHandler struct {
	storeUC usecase.StoreUsecase
	logger  *slog.Logger
}

func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC: params.StoreUC,
		logger:  params.Logger,
	}
}

func (h *StoreHandler) CreateStore(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return done(err)
	}
	form, err := multipartForm(c)
	if err != nil {
		return done(err)
	}

	ownerRaw := formValue(form, "owner_id")
	if ownerRaw == nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "owner_id is required")
	}
	ownerID, err := optionalUUID(c, ownerRaw, "owner_id")
	if err != nil {
		return done(err)
	}

	logo, closeLogo, err := formFile(form, "logo")
	if err != nil {
		return err
	}
	defer closeLogo()

	input := usecase.CreateStoreInput{OwnerID: *ownerID, Logo: logo}
	if name := formValue(form, "name"); name != nil {
		input.Name = *name
	}
	if desc := formValue(form, "description"); desc != nil {
		input.Description = *desc
	}

	store, err := h.storeUC.CreateStore(c.Request().Context(), principal, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newStoreResponse(store))
}

// ListStores answers with the stores visible to the caller's role.
func (h *StoreHandler) ListStores(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return done(err)
	}
	page, err := pagination(c)
	if err != nil {
		return done(err)
	}

	stores, err := h.storeUC.ListStores(c.Request().Context(), principal, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newStoreResponses(stores))
}

func (h *StoreHandler) GetStore(c echo.Context) error {
	storeID, err := uuidParam(c, "id")
	if err != nil {
		return done(err)
	}

	store, err := h.storeUC.GetStore(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newStoreResponse(store))
}

func (h *StoreHandler) UpdateStore(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return done(err)
	}
	storeID, err := uuidParam(c, "id")
	if err != nil {
		return done(err)
	}
	form, err := multipartForm(c)
	if err != nil {
		return done(err)
	}

	ownerID, err := optionalUUID(c, formValue(form, "owner_id"), "owner_id")
	if err != nil {
		return done(err)
	}
	logo, closeLogo, err := formFile(form, "logo")
	if err != nil {
		return err
	}
	defer closeLogo()

	store, err := h.storeUC.UpdateStore(c.Request().Context(), principal, storeID, usecase.UpdateStoreInput{
		Name:        formValue(form, "name"),
		Description: formValue(form, "description"),
		OwnerID:     ownerID,
		Logo:        logo,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newStoreResponse(store))
}

// StoreQRCode returns a PNG pointing at the public storefront.
func (h *StoreHandler) StoreQRCode(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return done(err)
	}
	storeID, err := uuidParam(c, "id")
	if err != nil {
		return done(err)
	}

	png, err := h.storeUC.StoreQRCode(c.Request().Context(), principal, storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
