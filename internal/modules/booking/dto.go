package booking

import (
	"time"

	"hotelpms/internal/domain"
	"hotelpms/internal/pkg/money"
)

type CreateBookingRequest struct {
	CustomerID    int64     `json:"customer_id" binding:"required"`
	RoomIDs       []int64   `json:"room_ids" binding:"required,min=1"`
	CheckInDate   time.Time `json:"check_in_date" binding:"required"`
	CheckOutDate  time.Time `json:"check_out_date" binding:"required"`
	IsHourly      bool      `json:"is_hourly"`
	DepositAmount string    `json:"deposit_amount"`
	PromotionCode string    `json:"promotion_code"`
	Notes         string    `json:"notes"`
}

type UpdateBookingRequest struct {
	RoomIDs       []int64    `json:"room_ids"`
	CheckInDate   *time.Time `json:"check_in_date"`
	CheckOutDate  *time.Time `json:"check_out_date"`
	DepositAmount *string    `json:"deposit_amount"`
	Notes         *string    `json:"notes"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

type ServiceLineRequest struct {
	ItemID   int64  `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	RoomID   *int64 `json:"room_id"`
}

type AddServicesRequest struct {
	Services []ServiceLineRequest `json:"services" binding:"required,min=1"`
}

type RemoveServiceRequest struct {
	LineID int64 `json:"line_id" binding:"required"`
}

type ListFilters struct {
	Status string
	Search string
	Limit  int
	Offset int
}

// RoomView is a booking-attached room as the SPA consumes it.
type RoomView struct {
	RoomID       int64  `json:"room_id"`
	Number       string `json:"number"`
	RoomType     string `json:"room_type"`
	MaxOccupancy int    `json:"max_occupancy"`
	Rate         string `json:"rate"`
}

type ServiceLineView struct {
	LineID   int64  `json:"line_id"`
	ItemID   int64  `json:"item_id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Total    string `json:"total"`
	RoomID   *int64 `json:"room_id,omitempty"`
}

// TotalsView carries both the wire decimal strings and the display
// formatting so every dialog renders amounts the same way.
type TotalsView struct {
	RoomSubtotal    string `json:"room_subtotal"`
	ServiceSubtotal string `json:"service_subtotal"`
	AmenitySubtotal string `json:"amenity_subtotal"`
	RawTotal        string `json:"raw_total"`
	Discount        string `json:"discount_amount"`
	Deposit         string `json:"deposit_amount"`
	GrandTotal      string `json:"grand_total"`
	GrandTotalText  string `json:"grand_total_text"`
	DiscountText    string `json:"discount_text"`
}

type BookingView struct {
	ID            int64         `json:"id"`
	ReferenceCode string        `json:"reference_code"`
	Status        string        `json:"status"`
	StatusDisplay StatusDisplay `json:"status_display"`
	Actions       []Action      `json:"actions"`
	IsHourly      bool          `json:"is_hourly"`
	CheckInDate   time.Time     `json:"check_in_date"`
	CheckOutDate  time.Time     `json:"check_out_date"`
	CheckInAt     *time.Time    `json:"check_in_at,omitempty"`
	CheckOutAt    *time.Time    `json:"check_out_at,omitempty"`

	CustomerName string `json:"customer_name"`
	CustomerCCCD string `json:"customer_cccd"`

	Rooms    []RoomView        `json:"rooms"`
	Services []ServiceLineView `json:"services"`
	Totals   TotalsView        `json:"totals"`

	Notes              string `json:"notes,omitempty"`
	CancellationReason string `json:"cancellation_reason,omitempty"`
}

func newTotalsView(t Totals) TotalsView {
	return TotalsView{
		RoomSubtotal:    money.FormatDecimal(t.RoomSubtotal),
		ServiceSubtotal: money.FormatDecimal(t.ServiceSubtotal),
		AmenitySubtotal: money.FormatDecimal(t.AmenitySubtotal),
		RawTotal:        money.FormatDecimal(t.RawTotal()),
		Discount:        money.FormatDecimal(t.Discount),
		Deposit:         money.FormatDecimal(t.Deposit),
		GrandTotal:      money.FormatDecimal(t.GrandTotal),
		GrandTotalText:  money.FormatVND(t.GrandTotal),
		DiscountText:    money.FormatVND(t.Discount),
	}
}

// NewBookingView builds the SPA-facing snapshot: canonical status with its
// display tuple and action set, plus the recomputed totals.
func NewBookingView(b *domain.Booking) BookingView {
	status := Canonicalize(string(b.Status))
	v := BookingView{
		ID:            b.ID,
		ReferenceCode: b.ReferenceCode,
		Status:        string(status),
		StatusDisplay: Display(string(b.Status)),
		Actions:       AllowedActions(status),
		IsHourly:      b.IsHourly,
		CheckInDate:   b.CheckInDate,
		CheckOutDate:  b.CheckOutDate,
		CheckInAt:     b.CheckInAt,
		CheckOutAt:    b.CheckOutAt,
		Totals:        newTotalsView(ComputeTotals(b)),
		Notes:         b.Notes,

		CancellationReason: b.CancellationReason,
	}

	if b.Customer != nil {
		v.CustomerName = b.Customer.FullName
		v.CustomerCCCD = b.Customer.NationalID
	}

	v.Rooms = make([]RoomView, 0, len(b.Rooms))
	for _, r := range b.Rooms {
		rv := RoomView{RoomID: r.RoomID, Rate: money.FormatDecimal(r.Rate)}
		if r.Room != nil {
			rv.Number = r.Room.Number
			if r.Room.RoomType != nil {
				rv.RoomType = r.Room.RoomType.Name
				rv.MaxOccupancy = r.Room.RoomType.MaxOccupancy
			}
		}
		v.Rooms = append(v.Rooms, rv)
	}

	v.Services = make([]ServiceLineView, 0, len(b.Services))
	for _, l := range b.Services {
		v.Services = append(v.Services, ServiceLineView{
			LineID:   l.ID,
			ItemID:   l.ItemID,
			Name:     l.Name,
			Kind:     string(l.Kind),
			Quantity: l.Quantity,
			Price:    money.FormatDecimal(l.Price),
			Total:    money.FormatDecimal(l.Total()),
			RoomID:   l.RoomID,
		})
	}

	return v
}
