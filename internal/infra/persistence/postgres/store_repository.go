package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// storeRepository implements repository.StoreRepository.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	return repo.findByID(ctx, repo.db.WithContext(ctx), id)
}

func (repo *storeRepository) FindByIDWithProducts(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	return repo.findByID(ctx, repo.db.WithContext(ctx).Preload("Products", orderByCreation), id)
}

func (repo *storeRepository) findByID(_ context.Context, db *gorm.DB, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := db.Where("id = ?", id).First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	return toStoreDomain(&storeM), nil
}

func (repo *storeRepository) List(ctx context.Context, page repository.Page) ([]*entity.Store, error) {
	return repo.list(paginate(repo.db.WithContext(ctx), page))
}

func (repo *storeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, page repository.Page) ([]*entity.Store, error) {
	return repo.list(paginate(repo.db.WithContext(ctx), page).Where("owner_id = ?", ownerID))
}

func (repo *storeRepository) list(db *gorm.DB) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	if err := db.Preload("Products", orderByCreation).
		Order("created_at, id").
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Omit("Products").Create(storeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WithDetails("store owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

func (repo *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", store.ID).
		Updates(map[string]any{
			"name":        store.Name,
			"description": store.Description,
			"logo_url":    store.LogoURL,
			"owner_id":    store.OwnerID,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrUserNotFound.WithDetails("store owner does not exist")
		}

		return errors.Wrap(result.Error, "failed to update store")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

func orderByCreation(db *gorm.DB) *gorm.DB {
	return db.Order("created_at, id")
}

// --- Mapper Functions ---

func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	store := &entity.Store{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		LogoURL:     data.LogoURL,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Products != nil {
		store.Products = make([]*entity.Product, 0, len(data.Products))
		for _, productM := range data.Products {
			store.Products = append(store.Products, toProductDomain(productM))
		}
	}

	return store
}

func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		LogoURL:     data.LogoURL,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
