package impl

import (
	"context"
	"strings"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"
)

// maxPhoneLength matches the guest_users.phone column.
const maxPhoneLength = 20

// resolveGuest upserts the guest keyed by phone inside the caller's transaction.
// The insert runs in a savepoint so that losing a race on the unique phone index
// leaves the outer transaction usable; the loser re-reads and updates instead.
func resolveGuest(ctx context.Context, repos repository.RepositoryFactory, details usecase.GuestDetails) (*entity.GuestUser, error) {
	phone, err := normalizePhone(details.Phone)
	if err != nil {
		return nil, err
	}

	nationalID := details.NationalID
	if nationalID != nil && strings.TrimSpace(*nationalID) == "" {
		nationalID = nil
	}
	name := strings.TrimSpace(details.Name)
	address := strings.TrimSpace(details.Address)

	guest, err := repos.GuestRepo().FindByPhone(ctx, phone)
	switch {
	case err == nil:
		return overwriteGuest(ctx, repos, guest, name, address, nationalID)
	case !errors.Is(err, repository.ErrGuestNotFound):
		return nil, errors.Wrap(err, "failed to look up guest by phone")
	}

	guest = &entity.GuestUser{Phone: phone, Name: name, Address: address, NationalID: nationalID}
	err = repos.Savepoint(ctx, func(nested repository.RepositoryFactory) error {
		return nested.GuestRepo().Create(ctx, guest)
	})
	if err == nil {
		return guest, nil
	}
	if !errors.Is(err, repository.ErrDuplicateGuest) {
		return nil, errors.Wrap(err, "failed to create guest")
	}

	existing, err := repos.GuestRepo().FindByPhone(ctx, phone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-read guest after concurrent insert")
	}

	return overwriteGuest(ctx, repos, existing, name, address, nationalID)
}

func overwriteGuest(ctx context.Context, repos repository.RepositoryFactory, guest *entity.GuestUser, name, address string, nationalID *string) (*entity.GuestUser, error) {
	guest.Overwrite(name, address, nationalID)
	if err := repos.GuestRepo().Update(ctx, guest); err != nil {
		return nil, errors.Wrap(err, "failed to update guest")
	}

	return guest, nil
}

func normalizePhone(phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("customer phone is required")
	}
	if len(phone) > maxPhoneLength {
		return "", domainerrors.ErrValidationFailed.WithDetailsf("customer phone must be at most %d characters", maxPhoneLength)
	}

	return phone, nil
}
