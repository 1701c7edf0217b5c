package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUC "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProductTestServer(t *testing.T, principal entity.Principal) (*echo.Echo, *mockUC.MockProductUsecase) {
	t.Helper()

	productUC := mockUC.NewMockProductUsecase(t)
	h := NewProductHandler(ProductHandlerParams{ProductUC: productUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/products/stores/:storeId", h.CreateProduct, as(principal))
	e.GET("/products/stores/:storeId", h.ListStoreProducts)
	e.PUT("/products/:id", h.UpdateProduct, as(principal))

	return e, productUC
}

func TestProductHandler(t *testing.T) {
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleOwner}
	storeID := uuid.New()

	t.Run("create parses decimal price", func(t *testing.T) {
		e, productUC := newProductTestServer(t, owner)
		productUC.EXPECT().CreateProduct(mock.Anything, owner, storeID, mock.MatchedBy(func(in usecase.CreateProductInput) bool {
			return in.Name == "Bread" && in.Price.Equal(decimal.RequireFromString("4.10")) && in.Image == nil
		})).Return(&entity.Product{ID: uuid.New(), Name: "Bread", Price: decimal.RequireFromString("4.1"), StoreID: storeID}, nil).Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, multipartRequest(t, http.MethodPost, "/products/stores/"+storeID.String(),
			map[string]string{"name": "Bread", "price": "4.10"}, nil))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var got usecase.ProductSnapshot
		decodeData(t, rec, &got)
		assert.Equal(t, "4.10", got.Price)
	})

	t.Run("price required", func(t *testing.T) {
		e, _ := newProductTestServer(t, owner)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, multipartRequest(t, http.MethodPost, "/products/stores/"+storeID.String(),
			map[string]string{"name": "Bread"}, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("price not a number", func(t *testing.T) {
		e, _ := newProductTestServer(t, owner)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, multipartRequest(t, http.MethodPost, "/products/stores/"+storeID.String(),
			map[string]string{"name": "Bread", "price": "cheap"}, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update with image", func(t *testing.T) {
		e, productUC := newProductTestServer(t, owner)
		productID := uuid.New()
		productUC.EXPECT().UpdateProduct(mock.Anything, owner, productID, mock.MatchedBy(func(in usecase.UpdateProductInput) bool {
			return in.Name == nil && in.Price == nil && in.Image != nil && in.Image.Filename == "p.jpg"
		})).Return(&entity.Product{ID: productID, StoreID: storeID}, nil).Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, multipartRequest(t, http.MethodPut, "/products/"+productID.String(), nil,
			&formFileField{field: "image", name: "p.jpg", content: []byte("jpg")}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("list of missing store", func(t *testing.T) {
		e, productUC := newProductTestServer(t, owner)
		productUC.EXPECT().ListStoreProducts(mock.Anything, storeID, usecase.Pagination{Limit: 2}).
			Return(nil, domainerrors.ErrStoreNotFound).Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/stores/"+storeID.String()+"?limit=2", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
