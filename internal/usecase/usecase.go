// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"io"

	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/repository"
)

// Pagination is the skip/limit pair accepted by list endpoints.
type Pagination struct {
	Skip  int
	Limit int
}

// Page clamps the request to [1, maxLimit]; a zero limit means defaultLimit.
func (p Pagination) Page(defaultLimit, maxLimit int) repository.Page {
	if defaultLimit <= 0 {
		defaultLimit = constants.DefaultPageLimit
	}
	if maxLimit <= 0 {
		maxLimit = constants.MaxPageLimit
	}

	limit := p.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	return repository.Page{Skip: max(p.Skip, 0), Limit: limit}
}

// Upload is an optional file attached to a store or product write.
type Upload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}
