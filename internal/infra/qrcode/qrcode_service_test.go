package qrcode

import (
	"strings"
	"testing"

	"contactlog/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleContact() *entity.Contact {
	return &entity.Contact{
		ID:          "65a1b2c3d4e5f60718293a4b",
		Name:        entity.Name{FirstName: "Peter", LastName: "Parker"},
		Email:       "peter@example.com",
		PhoneNumber: "01701234567",
		Address: entity.Address{
			Street: "Ingram Street", HouseNumber: "20", City: "Queens", ZipCode: "11375",
		},
	}
}

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
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateContactQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateContactQR(sampleContact())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateContactQR_NilContact(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateContactQR(nil)
	assert.Error(t, err)
}

func TestVCard(t *testing.T) {
	card := VCard(sampleContact())

	assert.Contains(t, card, "BEGIN:VCARD\r\nVERSION:3.0\r\n")
	assert.Contains(t, card, "N:Parker;Peter;;;\r\n")
	assert.Contains(t, card, "FN:Peter Parker\r\n")
	assert.Contains(t, card, "EMAIL;TYPE=INTERNET:peter@example.com\r\n")
	assert.Contains(t, card, "TEL;TYPE=CELL:01701234567\r\n")
	assert.Contains(t, card, "ADR;TYPE=HOME:;;Ingram Street 20;Queens;;11375;\r\n")
	assert.True(t, strings.HasSuffix(card, "END:VCARD\r\n"))
}

func TestVCard_EscapesSeparators(t *testing.T) {
	contact := sampleContact()
	contact.Name.LastName = "Parker; Jr, III"

	assert.Contains(t, VCard(contact), `N:Parker\; Jr\, III;Peter;;;`)
}
