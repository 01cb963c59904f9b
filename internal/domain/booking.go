package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked-in"
	BookingCheckedOut BookingStatus = "checked-out"
	BookingCancelled  BookingStatus = "cancelled"
	BookingUnknown    BookingStatus = "unknown"
)

type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentVNPay PaymentMethod = "vnpay"
)

type Booking struct {
	ID            int64         `json:"id"`
	ReferenceCode string        `json:"reference_code"`
	CustomerID    int64         `json:"customer_id" validate:"required"`
	CheckInDate   time.Time     `json:"check_in_date" validate:"required"`
	CheckOutDate  time.Time     `json:"check_out_date" validate:"required"`
	CheckInAt     *time.Time    `json:"check_in_at,omitempty"`
	CheckOutAt    *time.Time    `json:"check_out_at,omitempty"`
	Status        BookingStatus `json:"status"`
	IsHourly      bool          `json:"is_hourly"`

	DepositAmount  float64 `json:"deposit_amount"`
	RawTotal       float64 `json:"raw_total"`
	DiscountAmount float64 `json:"discount_amount"`
	TotalAmount    float64 `json:"total_amount"`

	PaymentMethod      PaymentMethod `json:"payment_method,omitempty"`
	CancellationReason string        `json:"cancellation_reason,omitempty" gorm:"type:text"`
	Notes              string        `json:"notes,omitempty" gorm:"type:text"`

	PromotionID *int64     `json:"promotion_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	Customer  *Customer      `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Promotion *Promotion     `json:"promotion,omitempty" gorm:"foreignKey:PromotionID"`
	Rooms     []BookingRoom  `json:"rooms" gorm:"foreignKey:BookingID"`
	Services  []ServiceUsage `json:"services" gorm:"foreignKey:BookingID"`
}

// BookingRoom is a room attached to a booking with the rate frozen at
// reservation time so later catalog edits do not change the bill.
type BookingRoom struct {
	ID        int64   `json:"id"`
	BookingID int64   `json:"booking_id"`
	RoomID    int64   `json:"room_id"`
	Rate      float64 `json:"rate"`

	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}
