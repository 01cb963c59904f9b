package domain

import "time"

type Invoice struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code" gorm:"uniqueIndex"`
	BookingID int64     `json:"booking_id" gorm:"index"`
	IssuedAt  time.Time `json:"issued_at"`

	RoomAmount     float64 `json:"room_amount"`
	ServiceAmount  float64 `json:"service_amount"`
	AmenityAmount  float64 `json:"amenity_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	TotalAmount    float64 `json:"total_amount"`

	PaymentMethod PaymentMethod `json:"payment_method"`

	// Payload keeps the billing breakdown as it was serialized at issue
	// time. Rows imported from the previous system hold the legacy flat
	// shape; rows issued here hold the structured shape.
	Payload []byte `json:"-" gorm:"type:jsonb"`

	PrintCount    int        `json:"print_count"`
	LastPrintedAt *time.Time `json:"last_printed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
