// Package model holds the GORM table mappings. Primary keys are UUIDv7 generated
// in BeforeCreate so inserts do not depend on a database-side uuid extension.
package model

import (
	"github.com/google/uuid"
)

func newID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}

// All lists every model in dependency order, for migrations and test setup.
func All() []any {
	return []any{
		&UserModel{},
		&GuestUserModel{},
		&StoreModel{},
		&ProductModel{},
		&OrderModel{},
		&OrderItemModel{},
		&UserDeviceModel{},
	}
}
