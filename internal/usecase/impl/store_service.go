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

type storeService struct {
	txManager repository.TransactionManager
	storeRepo repository.StoreRepository
	storage   service.FileStorage
	qrCodes   service.QRCodeService
	pageSize  int
	maxPage   int
	logger    *slog.Logger
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	StoreRepo repository.StoreRepository
	Storage   service.FileStorage
	QRCodes   service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	var pageSize, maxPage int
	if params.Config != nil && params.Config.Orders != nil {
		pageSize, maxPage = params.Config.Orders.DefaultPageSize, params.Config.Orders.MaxPageSize
	}

	return &storeService{
		txManager: params.TxManager,
		storeRepo: params.StoreRepo,
		storage:   params.Storage,
		qrCodes:   params.QRCodes,
		pageSize:  pageSize,
		maxPage:   maxPage,
		logger:    params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateStore is admin only. A CUSTOMER owner is promoted to OWNER in the same transaction.
func (srv *storeService) CreateStore(ctx context.Context, principal entity.Principal, input usecase.CreateStoreInput) (*entity.Store, error) {
	if err := access.RequireAdmin(principal); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("store name is required")
	}

	logo, err := saveUpload(ctx, srv.storage, constants.StoreLogoPrefix, input.Logo)
	if err != nil {
		return nil, err
	}

	store := &entity.Store{
		Name:        name,
		Description: input.Description,
		LogoURL:     logo,
		OwnerID:     input.OwnerID,
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := promoteOwner(ctx, repos.UserRepo(), input.OwnerID); err != nil {
			return err
		}
		if err := repos.StoreRepo().Create(ctx, store); err != nil {
			return errors.Wrap(err, "failed to create store")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Store created",
		slog.String("store_id", store.ID.String()),
		slog.String("owner_id", store.OwnerID.String()),
	)

	return store, nil
}

// ListStores returns every store to an admin and the owned ones to an owner.
// Customers own nothing and get an empty list.
func (srv *storeService) ListStores(ctx context.Context, principal entity.Principal, page usecase.Pagination) ([]*entity.Store, error) {
	window := page.Page(srv.pageSize, srv.maxPage)

	var (
		stores []*entity.Store
		err    error
	)
	switch principal.Role {
	case entity.RoleAdmin:
		stores, err = srv.storeRepo.List(ctx, window)
	case entity.RoleOwner:
		stores, err = srv.storeRepo.ListByOwner(ctx, principal.UserID, window)
	default:
		return []*entity.Store{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}

func (srv *storeService) GetStore(ctx context.Context, storeID uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByIDWithProducts(ctx, storeID)
	if err != nil {
		return nil, mapStoreError(err)
	}

	return store, nil
}

// UpdateStore applies a partial update. Reassigning the owner requires ADMIN
// even when the caller owns the store.
func (srv *storeService) UpdateStore(ctx context.Context, principal entity.Principal, storeID uuid.UUID, input usecase.UpdateStoreInput) (*entity.Store, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("store name must not be blank")
	}

	current, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if err := access.AuthorizeStore(principal, current); err != nil {
		return nil, err
	}
	ownerChanged := input.OwnerID != nil && *input.OwnerID != current.OwnerID
	if ownerChanged {
		if err := access.AuthorizeOwnerChange(principal); err != nil {
			return nil, err
		}
	}

	logo, err := saveUpload(ctx, srv.storage, constants.StoreLogoPrefix, input.Logo)
	if err != nil {
		return nil, err
	}

	var updated *entity.Store
	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		storeRepo := repos.StoreRepo()

		store, err := storeRepo.FindByID(ctx, storeID)
		if err != nil {
			return mapStoreError(err)
		}

		if input.Name != nil {
			store.Name = strings.TrimSpace(*input.Name)
		}
		if input.Description != nil {
			store.Description = *input.Description
		}
		if logo != nil {
			store.LogoURL = logo
		}
		if ownerChanged {
			if err := promoteOwner(ctx, repos.UserRepo(), *input.OwnerID); err != nil {
				return err
			}
			store.OwnerID = *input.OwnerID
		}

		if err := storeRepo.Update(ctx, store); err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return domainerrors.ErrStoreNotFound
			}

			return errors.Wrap(err, "failed to update store")
		}

		updated, err = storeRepo.FindByIDWithProducts(ctx, storeID)
		if err != nil {
			return mapStoreError(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if ownerChanged {
		srv.log(ctx).Info("Store owner changed",
			slog.String("store_id", storeID.String()),
			slog.String("owner_id", updated.OwnerID.String()),
		)
	}

	return updated, nil
}

func (srv *storeService) StoreQRCode(ctx context.Context, principal entity.Principal, storeID uuid.UUID) ([]byte, error) {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if err := access.AuthorizeStore(principal, store); err != nil {
		return nil, err
	}

	png, err := srv.qrCodes.GenerateStoreQR(store.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render store QR code")
	}

	return png, nil
}

// promoteOwner checks that the future owner exists and turns a CUSTOMER into an OWNER.
func promoteOwner(ctx context.Context, userRepo repository.UserRepository, ownerID uuid.UUID) error {
	owner, err := userRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WithDetailsf("owner %s not found", ownerID)
		}

		return errors.Wrap(err, "failed to load store owner")
	}

	if !owner.PromoteToOwner() {
		return nil
	}
	if err := userRepo.UpdateRole(ctx, owner.ID, owner.Role); err != nil {
		return errors.Wrap(err, "failed to promote store owner")
	}

	return nil
}
