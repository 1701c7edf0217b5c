package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email    string `json:"email" validate:"required,email"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

func TestCustomValidator_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sample{Email: "nope", Platform: "symbian"})

	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "email must be a valid email")
		assert.Contains(t, err.Error(), "platform must be one of [ios android web]")
		assert.Contains(t, err.Error(), "quantity must be greater than 0")
	}
}

func TestCustomValidator_Valid(t *testing.T) {
	assert.NoError(t, New().Validate(&sample{Email: "a@b.co", Platform: "ios", Quantity: 1}))
}
