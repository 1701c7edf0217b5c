package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return done(err)
	}
	storeID, err := uuidParam(c, "storeId")
	if err != nil {
		return done(err)
	}
	form, err := multipartForm(c)
	if err != nil {
		return done(err)
	}

	price, err := parsePrice(c, formValue(form, "price"))
	if err != nil {
		return done(err)
	}
	if price == nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "price is required")
	}

	image, closeImage, err := formFile(form, "image")
	if err != nil {
		return err
	}
	defer closeImage()

	input := usecase.CreateProductInput{Price: *price, Image: image}
	if name := formValue(form, "name"); name != nil {
		input.Name = *name
	}
	if desc := formValue(form, "description"); desc != nil {
		input.Description = *desc
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), principal, storeID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, usecase.NewProductSnapshot(product))
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return done(err)
	}
	productID, err := uuidParam(c, "id")
	if err != nil {
		return done(err)
	}
	form, err := multipartForm(c)
	if err != nil {
		return done(err)
	}

	price, err := parsePrice(c, formValue(form, "price"))
	if err != nil {
		return done(err)
	}
	image, closeImage, err := formFile(form, "image")
	if err != nil {
		return err
	}
	defer closeImage()

	product, err := h.productUC.UpdateProduct(c.Request().Context(), principal, productID, usecase.UpdateProductInput{
		Name:        formValue(form, "name"),
		Description: formValue(form, "description"),
		Price:       price,
		Image:       image,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, usecase.NewProductSnapshot(product))
}

// ListStoreProducts is public so storefronts can render without a session.
func (h *ProductHandler) ListStoreProducts(c echo.Context) error {
	storeID, err := uuidParam(c, "storeId")
	if err != nil {
		return done(err)
	}
	page, err := pagination(c)
	if err != nil {
		return done(err)
	}

	products, err := h.productUC.ListStoreProducts(c.Request().Context(), storeID, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductResponses(products))
}

func parsePrice(c echo.Context, raw *string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	price, err := decimal.NewFromString(*raw)
	if err != nil {
		if err := response.BadRequest(c, "VALIDATION_ERROR", "price must be a decimal number"); err != nil {
			return nil, err
		}

		return nil, errResponded
	}

	return &price, nil
}
