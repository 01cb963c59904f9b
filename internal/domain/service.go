package domain

import "time"

type ServiceKind string

const (
	KindService ServiceKind = "service"
	KindAmenity ServiceKind = "amenity"
)

// ServiceItem is a billable catalog entry (spa, breakfast, minibar, ...).
type ServiceItem struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name" validate:"required"`
	Kind      ServiceKind `json:"kind"`
	Price     float64     `json:"price" validate:"gte=0"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// ServiceUsage is one line of service or amenity consumption on a booking,
// optionally attributed to a single room of the booking. The unit price is
// frozen at the moment the line is added.
type ServiceUsage struct {
	ID        int64       `json:"id"`
	BookingID int64       `json:"booking_id"`
	ItemID    int64       `json:"item_id"`
	RoomID    *int64      `json:"room_id,omitempty"`
	Name      string      `json:"name"`
	Kind      ServiceKind `json:"kind"`
	Quantity  int         `json:"quantity"`
	Price     float64     `json:"price"`
	CreatedAt time.Time   `json:"created_at"`
}

// Total is always recomputed from price and quantity, never trusted
// from a stored or transmitted figure.
func (u ServiceUsage) Total() float64 {
	return u.Price * float64(u.Quantity)
}
