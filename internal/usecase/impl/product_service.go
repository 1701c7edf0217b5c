package impl

import (
	"context"
	"log/slog"
	"strings"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/access"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type productService struct {
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	storage     service.FileStorage
	pageSize    int
	maxPage     int
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	StoreRepo   repository.StoreRepository
	ProductRepo repository.ProductRepository
	Storage     service.FileStorage
	Config      *config.Config
	Logger      *slog.Logger
}

func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	var pageSize, maxPage int
	if params.Config != nil && params.Config.Orders != nil {
		pageSize, maxPage = params.Config.Orders.DefaultPageSize, params.Config.Orders.MaxPageSize
	}

	return &productService{
		storeRepo:   params.StoreRepo,
		productRepo: params.ProductRepo,
		storage:     params.Storage,
		pageSize:    pageSize,
		maxPage:     maxPage,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) CreateProduct(ctx context.Context, principal entity.Principal, storeID uuid.UUID, input usecase.CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product name is required")
	}
	if err := entity.ValidatePrice(input.Price); err != nil {
		return nil, err
	}

	if _, err := srv.authorizedStore(ctx, principal, storeID); err != nil {
		return nil, err
	}

	image, err := saveUpload(ctx, srv.storage, constants.ProductImagePrefix, input.Image)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:        name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    image,
		StoreID:     storeID,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.String("product_id", product.ID.String()),
		slog.String("store_id", storeID.String()),
	)

	return product, nil
}

// UpdateProduct is guarded by the store the product belongs to. Existing
// orders keep their own price snapshot.
func (srv *productService) UpdateProduct(ctx context.Context, principal entity.Principal, productID uuid.UUID, input usecase.UpdateProductInput) (*entity.Product, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product name must not be blank")
	}
	if input.Price != nil {
		if err := entity.ValidatePrice(*input.Price); err != nil {
			return nil, err
		}
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, mapProductError(err)
	}
	if _, err := srv.authorizedStore(ctx, principal, product.StoreID); err != nil {
		return nil, err
	}

	image, err := saveUpload(ctx, srv.storage, constants.ProductImagePrefix, input.Image)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if image != nil {
		product.ImageURL = image
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, mapProductError(err)
	}

	return product, nil
}

func (srv *productService) ListStoreProducts(ctx context.Context, storeID uuid.UUID, page usecase.Pagination) ([]*entity.Product, error) {
	if _, err := srv.storeRepo.FindByID(ctx, storeID); err != nil {
		return nil, mapStoreError(err)
	}

	products, err := srv.productRepo.ListByStore(ctx, storeID, page.Page(srv.pageSize, srv.maxPage))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) authorizedStore(ctx context.Context, principal entity.Principal, storeID uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if err := access.AuthorizeStore(principal, store); err != nil {
		return nil, err
	}

	return store, nil
}

func mapProductError(err error) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound
	}

	return errors.Wrap(err, "product repository failure")
}
