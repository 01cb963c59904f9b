package invoice

import (
	"encoding/json"
	"testing"
	"time"

	"hotelpms/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyJSON = `{
	"invoice_code": "INV-2026-0042",
	"booking_id": 17,
	"issued_at": "2026-05-01T10:30:00Z",
	"customer_name": "Nguyễn Văn A",
	"payment_method": "cash",
	"room_amount": "2400000.00",
	"service_amount": "200000.00",
	"discount_amount": "100000.00",
	"deposit_amount": "500000.00",
	"total_amount": "2500000.00",
	"services": [
		{"name": "Breakfast", "quantity": 2, "price": "100000.00"}
	]
}`

const structuredJSON = `{
	"invoice": {"code": "INV-2026-0042", "issued_at": "2026-05-01T10:30:00Z", "payment_method": "cash"},
	"booking": {"id": 17, "reference_code": "BK-AB12CD34", "customer_name": "Nguyễn Văn A"},
	"meta": {"version": 2, "source": "hotelpms"},
	"totals": {"saved": {
		"room": "2400000.00",
		"service": "200000.00",
		"amenity": "0.00",
		"discount": "100000.00",
		"deposit": "500000.00",
		"total": "2500000.00"
	}},
	"service_lines": [
		{"name": "Breakfast", "quantity": 2, "price": "100000.00"}
	],
	"amenity_lines": []
}`

func TestNormalize_BothShapesConverge(t *testing.T) {
	legacy, err := Normalize(json.RawMessage(legacyJSON))
	require.NoError(t, err)

	structured, err := Normalize(json.RawMessage(structuredJSON))
	require.NoError(t, err)

	assert.Equal(t, legacy.Code, structured.Code)
	assert.Equal(t, legacy.BookingID, structured.BookingID)
	assert.Equal(t, legacy.CustomerName, structured.CustomerName)
	assert.Equal(t, legacy.Amounts.Total, structured.Amounts.Total)
	assert.Equal(t, legacy.PaymentMethod, structured.PaymentMethod)
	assert.Equal(t, legacy.ServiceLines, structured.ServiceLines)
}

func TestNormalize_Legacy(t *testing.T) {
	v, err := Normalize(json.RawMessage(legacyJSON))
	require.NoError(t, err)

	assert.Equal(t, "INV-2026-0042", v.Code)
	assert.Equal(t, int64(17), v.BookingID)
	assert.Equal(t, "2500000.00", v.Amounts.Total)
	assert.Equal(t, "0.00", v.Amounts.Amenity)
	assert.Equal(t, "2.500.000 ₫", v.TotalText)
	require.Len(t, v.ServiceLines, 1)
	assert.Equal(t, "200000.00", v.ServiceLines[0].Total)
	assert.Empty(t, v.AmenityLines)
}

func TestNormalize_UnparsableAmountFallsBackToZero(t *testing.T) {
	raw := `{"invoice_code": "INV-X", "booking_id": 1, "total_amount": "oops"}`
	v, err := Normalize(json.RawMessage(raw))
	require.NoError(t, err)
	assert.Equal(t, "0.00", v.Amounts.Total)
	assert.Equal(t, "0 ₫", v.TotalText)
}

func TestNormalize_Garbage(t *testing.T) {
	_, err := Normalize(json.RawMessage(`[1,2,3]`))
	assert.ErrorIs(t, err, ErrUnknownPayload)

	_, err = Normalize(json.RawMessage(`{"foo": "bar"}`))
	assert.ErrorIs(t, err, ErrUnknownPayload)
}

func TestBuildStructuredPayload_RoundTrip(t *testing.T) {
	issued := time.Date(2026, 5, 1, 10, 30, 0, 0, time.UTC)
	roomID := int64(3)

	b := &domain.Booking{
		ID:            17,
		ReferenceCode: "BK-AB12CD34",
		DepositAmount: 500000,
		Customer:      &domain.Customer{FullName: "Nguyễn Văn A"},
		Services: []domain.ServiceUsage{
			{Name: "Breakfast", Kind: domain.KindService, Quantity: 2, Price: 100000},
			{Name: "Extra towels", Kind: domain.KindAmenity, Quantity: 1, Price: 20000, RoomID: &roomID},
		},
	}
	inv := &domain.Invoice{
		Code:           "INV-2026-0042",
		BookingID:      17,
		IssuedAt:       issued,
		RoomAmount:     2400000,
		ServiceAmount:  200000,
		AmenityAmount:  20000,
		DiscountAmount: 100000,
		TotalAmount:    2520000,
		PaymentMethod:  domain.PaymentCash,
	}

	raw, err := BuildStructuredPayload(b, inv)
	require.NoError(t, err)

	v, err := Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, "INV-2026-0042", v.Code)
	assert.Equal(t, int64(17), v.BookingID)
	assert.Equal(t, "Nguyễn Văn A", v.CustomerName)
	assert.Equal(t, "2520000.00", v.Amounts.Total)
	require.Len(t, v.ServiceLines, 1)
	require.Len(t, v.AmenityLines, 1)
	assert.Equal(t, &roomID, v.AmenityLines[0].RoomID)
}
