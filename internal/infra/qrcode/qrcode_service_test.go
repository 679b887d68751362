package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateStoreQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://market.example.com")
	storeID := uuid.New()

	qrBytes, err := service.GenerateStoreQR(storeID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParseStoreQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")
	storeID := uuid.New()

	payload, err := json.Marshal(QRCodeData{
		StoreID: storeID.String(),
		Type:    "store",
	})
	require.NoError(t, err)

	parsedID, err := service.ParseStoreQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, storeID, parsedID)
}

func TestQRCodeService_ParseStoreQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	tests := []struct {
		name   string
		qrData string
	}{
		{"Not JSON", "not-json"},
		{"Wrong type", `{"store_id":"` + uuid.NewString() + `","type":"coupon"}`},
		{"Bad UUID", `{"store_id":"not-a-uuid","type":"store"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsedID, err := service.ParseStoreQR(tt.qrData)
			assert.Error(t, err)
			assert.Equal(t, uuid.Nil, parsedID)
		})
	}
}
