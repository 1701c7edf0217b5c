package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"marketplace/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_RecoveryLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "h", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newQRCodeService(256, tt.level, "https://shop.example")
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_StorefrontURL(t *testing.T) {
	storeID := uuid.New()

	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{BaseURL: "https://shop.example/s/"}})
	assert.Equal(t, "https://shop.example/s/"+storeID.String(), svc.StorefrontURL(storeID))
}

func TestQRCodeService_GenerateStoreQR(t *testing.T) {
	svc := newQRCodeService(256, "M", "https://shop.example/s")

	qrBytes, err := svc.GenerateStoreQR(uuid.New())
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_GenerateStoreQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := newQRCodeService(size, "M", "https://shop.example/s")

		qrBytes, err := svc.GenerateStoreQR(uuid.New())
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(qrBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}

func TestNewQRCodeService_MissingSection(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	qrBytes, err := svc.GenerateStoreQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}
