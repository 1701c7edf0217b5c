package impl

import (
	"context"
	"strings"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service     usecase.ProductUsecase
	storeRepo   *mockRepo.MockStoreRepository
	productRepo *mockRepo.MockProductRepository
	storage     *mockSvc.MockFileStorage
}

func createTestProductService(t *testing.T) productServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	storage := mockSvc.NewMockFileStorage(t)

	service := NewProductService(ProductServiceParams{
		StoreRepo:   storeRepo,
		ProductRepo: productRepo,
		Storage:     storage,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return productServiceFixtures{
		service:     service,
		storeRepo:   storeRepo,
		productRepo: productRepo,
		storage:     storage,
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	owner := entity.Principal{UserID: uuid.New(), Role: entity.RoleOwner}
	storeID := uuid.New()

	fx.storeRepo.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID, OwnerID: owner.UserID}, nil)
	fx.storage.EXPECT().
		Save(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "images/products/") && strings.HasSuffix(key, ".jpg")
		}), "image/jpeg", mock.Anything).
		Return("/static/images/products/p.jpg", nil)
	fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.CreateProduct(ctx, owner, storeID, usecase.CreateProductInput{
		Name:  "Sourdough",
		Price: decimal.RequireFromString("4.50"),
		Image: &usecase.Upload{Filename: "bread.jpg", ContentType: "image/jpeg", Content: strings.NewReader("jpg")},
	})

	require.NoError(t, err)
	assert.Equal(t, storeID, product.StoreID)
	assert.Equal(t, "4.5", product.Price.String())
	require.NotNil(t, product.ImageURL)
}

func TestProductService_CreateProduct_Rejections(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()

	t.Run("negative price", func(t *testing.T) {
		fx := createTestProductService(t)
		_, err := fx.service.CreateProduct(ctx, testAdmin, storeID, usecase.CreateProductInput{Name: "x", Price: decimal.NewFromInt(-1)})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("price beyond numeric(12,2)", func(t *testing.T) {
		fx := createTestProductService(t)
		price := decimal.RequireFromString("10000000000.00")
		_, err := fx.service.CreateProduct(ctx, testAdmin, storeID, usecase.CreateProductInput{Name: "x", Price: price})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("sub-cent price", func(t *testing.T) {
		fx := createTestProductService(t)
		price := decimal.RequireFromString("1.999")
		_, err := fx.service.CreateProduct(ctx, testAdmin, storeID, usecase.CreateProductInput{Name: "x", Price: price})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("missing store", func(t *testing.T) {
		fx := createTestProductService(t)
		fx.storeRepo.EXPECT().FindByID(ctx, storeID).Return(nil, repository.ErrStoreNotFound)

		_, err := fx.service.CreateProduct(ctx, testAdmin, storeID, usecase.CreateProductInput{Name: "x"})
		assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound))
	})

	t.Run("not the owner", func(t *testing.T) {
		fx := createTestProductService(t)
		fx.storeRepo.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID, OwnerID: uuid.New()}, nil)

		_, err := fx.service.CreateProduct(ctx, entity.Principal{UserID: uuid.New(), Role: entity.RoleOwner}, storeID, usecase.CreateProductInput{Name: "x"})
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}

func TestProductService_UpdateProduct_Partial(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	storeID := uuid.New()
	productID := uuid.New()
	existing := &entity.Product{ID: productID, Name: "Bagel", Description: "plain", Price: decimal.NewFromInt(2), StoreID: storeID}
	price := decimal.RequireFromString("2.75")

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(existing, nil)
	fx.storeRepo.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID}, nil)
	fx.productRepo.EXPECT().Update(ctx, existing).Return(nil)

	product, err := fx.service.UpdateProduct(ctx, testAdmin, productID, usecase.UpdateProductInput{Price: &price})

	require.NoError(t, err)
	assert.Equal(t, "Bagel", product.Name)
	assert.Equal(t, "plain", product.Description)
	assert.True(t, price.Equal(product.Price))
	assert.Nil(t, product.ImageURL)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.UpdateProduct(ctx, testAdmin, productID, usecase.UpdateProductInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_ListStoreProducts(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()

	t.Run("paginated", func(t *testing.T) {
		fx := createTestProductService(t)
		products := []*entity.Product{{ID: uuid.New(), StoreID: storeID}}
		fx.storeRepo.EXPECT().FindByID(ctx, storeID).Return(&entity.Store{ID: storeID}, nil)
		fx.productRepo.EXPECT().ListByStore(ctx, storeID, repository.Page{Skip: 2, Limit: 3}).Return(products, nil)

		got, err := fx.service.ListStoreProducts(ctx, storeID, usecase.Pagination{Skip: 2, Limit: 3})
		require.NoError(t, err)
		assert.Equal(t, products, got)
	})

	t.Run("missing store", func(t *testing.T) {
		fx := createTestProductService(t)
		fx.storeRepo.EXPECT().FindByID(ctx, storeID).Return(nil, repository.ErrStoreNotFound)

		_, err := fx.service.ListStoreProducts(ctx, storeID, usecase.Pagination{})
		assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound))
	})
}
