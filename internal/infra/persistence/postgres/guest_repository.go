package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// guestRepository implements repository.GuestRepository.
type guestRepository struct {
	db *gorm.DB
}

// NewGuestRepository is the constructor for guestRepository.
func NewGuestRepository(db *gorm.DB) repository.GuestRepository {
	return &guestRepository{db: db}
}

func (repo *guestRepository) FindByPhone(ctx context.Context, phone string) (*entity.GuestUser, error) {
	var guestM model.GuestUserModel

	if err := repo.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&guestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGuestNotFound
		}

		return nil, errors.Wrap(err, "failed to find guest by phone")
	}

	return toGuestDomain(&guestM), nil
}

// Create inserts a guest. The unique index on phone turns a lost race into ErrDuplicateGuest.
func (repo *guestRepository) Create(ctx context.Context, guest *entity.GuestUser) error {
	guestM := fromGuestDomain(guest)

	if err := repo.db.WithContext(ctx).Create(guestM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateGuest
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create guest")
	}

	guest.ID = guestM.ID

	return nil
}

// Update writes every non-key field, blank values included.
func (repo *guestRepository) Update(ctx context.Context, guest *entity.GuestUser) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GuestUserModel{}).
		Where("id = ?", guest.ID).
		Updates(map[string]any{
			"name":        guest.Name,
			"address":     guest.Address,
			"national_id": guest.NationalID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update guest")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGuestNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toGuestDomain(data *model.GuestUserModel) *entity.GuestUser {
	if data == nil {
		return nil
	}

	return &entity.GuestUser{
		ID:         data.ID,
		Phone:      data.Phone,
		Name:       data.Name,
		Address:    data.Address,
		NationalID: data.NationalID,
	}
}

func fromGuestDomain(data *entity.GuestUser) *model.GuestUserModel {
	if data == nil {
		return nil
	}

	return &model.GuestUserModel{
		ID:         data.ID,
		Phone:      data.Phone,
		Name:       data.Name,
		Address:    data.Address,
		NationalID: data.NationalID,
	}
}
