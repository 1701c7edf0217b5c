package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders storefront QR codes
type QRCodeService interface {
	// GenerateStoreQR returns a PNG encoding the public URL of the store.
	GenerateStoreQR(storeID uuid.UUID) ([]byte, error)

	// StorefrontURL is the link encoded by GenerateStoreQR.
	StorefrontURL(storeID uuid.UUID) string
}
