package postgres

import (
	"marketplace/internal/domain/repository"

	"gorm.io/gorm"
)

// paginate applies skip/limit. A non-positive limit means no limit.
func paginate(db *gorm.DB, page repository.Page) *gorm.DB {
	if page.Skip > 0 {
		db = db.Offset(page.Skip)
	}
	if page.Limit > 0 {
		db = db.Limit(page.Limit)
	}

	return db
}
