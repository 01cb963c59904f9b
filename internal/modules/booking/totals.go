package booking

import (
	"math"
	"time"

	"hotelpms/internal/domain"
	"hotelpms/internal/pkg/money"
)

// Totals is the derived billing breakdown of a booking. The stored
// raw_total/total_amount are written from this computation, never the
// other way around.
type Totals struct {
	RoomSubtotal    float64 `json:"room_subtotal"`
	ServiceSubtotal float64 `json:"service_subtotal"`
	AmenitySubtotal float64 `json:"amenity_subtotal"`
	Discount        float64 `json:"discount"`
	Deposit         float64 `json:"deposit"`
	GrandTotal      float64 `json:"grand_total"`
}

// RawTotal is the pre-discount sum of all three subtotals.
func (t Totals) RawTotal() float64 {
	return money.Round(t.RoomSubtotal + t.ServiceSubtotal + t.AmenitySubtotal)
}

// BalanceDue is what remains after the deposit already taken.
func (t Totals) BalanceDue() float64 {
	return money.Round(t.GrandTotal - t.Deposit)
}

// Nights counts billable nights between two instants: whole days rounded
// up, never less than one.
func Nights(checkIn, checkOut time.Time) int {
	if !checkOut.After(checkIn) {
		return 1
	}
	n := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if n < 1 {
		n = 1
	}
	return n
}

// HourlyUnits counts billable hours for an hourly booking: started hours
// count in full, never less than one.
func HourlyUnits(checkIn, checkOut time.Time) int {
	if !checkOut.After(checkIn) {
		return 1
	}
	n := int(math.Ceil(checkOut.Sub(checkIn).Hours()))
	if n < 1 {
		n = 1
	}
	return n
}

// RoomSubtotal sums room rates over the billing units.
func RoomSubtotal(rooms []domain.BookingRoom, units int) float64 {
	var total float64
	for _, r := range rooms {
		total += r.Rate * float64(units)
	}
	return money.Round(total)
}

// LinesSubtotal sums price x quantity over usage lines of one kind,
// regardless of per-room attribution.
func LinesSubtotal(lines []domain.ServiceUsage, kind domain.ServiceKind) float64 {
	var total float64
	for _, l := range lines {
		if l.Kind == kind {
			total += l.Total()
		}
	}
	return money.Round(total)
}

// ComputeTotals derives the full breakdown for a booking snapshot.
// Day bookings bill per night, hourly bookings per started hour.
func ComputeTotals(b *domain.Booking) Totals {
	units := Nights(b.CheckInDate, b.CheckOutDate)
	if b.IsHourly {
		units = HourlyUnits(b.CheckInDate, b.CheckOutDate)
	}

	t := Totals{
		RoomSubtotal:    RoomSubtotal(b.Rooms, units),
		ServiceSubtotal: LinesSubtotal(b.Services, domain.KindService),
		AmenitySubtotal: LinesSubtotal(b.Services, domain.KindAmenity),
		Discount:        money.Round(b.DiscountAmount),
		Deposit:         money.Round(b.DepositAmount),
	}
	t.GrandTotal = money.Round(t.RawTotal() - t.Discount)
	return t
}
