package booking

import (
	"testing"
	"time"

	"hotelpms/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNights(t *testing.T) {
	in := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, Nights(in, in.Add(48*time.Hour)))
	// A partial extra day bills as a full night.
	assert.Equal(t, 2, Nights(in, in.Add(30*time.Hour)))
	assert.Equal(t, 1, Nights(in, in.Add(2*time.Hour)))
	assert.Equal(t, 1, Nights(in, in))
}

func TestHourlyUnits(t *testing.T) {
	in := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, HourlyUnits(in, in.Add(time.Hour)))
	assert.Equal(t, 2, HourlyUnits(in, in.Add(90*time.Minute)))
	assert.Equal(t, 1, HourlyUnits(in, in))
}

func TestComputeTotals_TwoRoomsTwoNights(t *testing.T) {
	in := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	out := in.Add(48 * time.Hour)

	b := &domain.Booking{
		CheckInDate:  in,
		CheckOutDate: out,
		Rooms: []domain.BookingRoom{
			{RoomID: 1, Rate: 500000},
			{RoomID: 2, Rate: 700000},
		},
		Services: []domain.ServiceUsage{
			{Kind: domain.KindService, Price: 100000, Quantity: 2},
		},
	}

	got := ComputeTotals(b)

	assert.Equal(t, 2400000.0, got.RoomSubtotal)
	assert.Equal(t, 200000.0, got.ServiceSubtotal)
	assert.Equal(t, 0.0, got.AmenitySubtotal)
	assert.Equal(t, got.RoomSubtotal+got.ServiceSubtotal-got.Discount, got.GrandTotal)
}

func TestComputeTotals_DiscountAndDeposit(t *testing.T) {
	in := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	b := &domain.Booking{
		CheckInDate:    in,
		CheckOutDate:   in.Add(24 * time.Hour),
		DiscountAmount: 150000,
		DepositAmount:  300000,
		Rooms:          []domain.BookingRoom{{RoomID: 1, Rate: 500000}},
		Services: []domain.ServiceUsage{
			{Kind: domain.KindService, Price: 50000, Quantity: 1},
			{Kind: domain.KindAmenity, Price: 20000, Quantity: 3},
		},
	}

	got := ComputeTotals(b)

	assert.Equal(t, 500000.0, got.RoomSubtotal)
	assert.Equal(t, 50000.0, got.ServiceSubtotal)
	assert.Equal(t, 60000.0, got.AmenitySubtotal)
	assert.Equal(t, 610000.0, got.RawTotal())
	assert.Equal(t, 460000.0, got.GrandTotal)
	assert.Equal(t, 160000.0, got.BalanceDue())
}

func TestComputeTotals_Hourly(t *testing.T) {
	in := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	b := &domain.Booking{
		CheckInDate:  in,
		CheckOutDate: in.Add(150 * time.Minute), // 3 started hours
		IsHourly:     true,
		Rooms:        []domain.BookingRoom{{RoomID: 1, Rate: 120000}},
	}

	got := ComputeTotals(b)
	assert.Equal(t, 360000.0, got.RoomSubtotal)
}

func TestComputeTotals_EmptyServices(t *testing.T) {
	in := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	b := &domain.Booking{
		CheckInDate:  in,
		CheckOutDate: in.Add(24 * time.Hour),
		Rooms:        []domain.BookingRoom{{RoomID: 1, Rate: 500000}},
	}

	got := ComputeTotals(b)
	assert.Equal(t, 0.0, got.ServiceSubtotal)
	assert.Equal(t, 0.0, got.AmenitySubtotal)
	assert.Equal(t, 500000.0, got.GrandTotal)
}
