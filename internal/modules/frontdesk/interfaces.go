package frontdesk

import (
	"context"
	"time"

	"hotelpms/internal/domain"
)

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	SetCheckedIn(ctx context.Context, id int64, at time.Time) error
	SetCheckedOut(ctx context.Context, id int64, at time.Time, method domain.PaymentMethod, raw, discount, total float64) error
}

type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
}

type EventPublisher interface {
	PublishStatus(bookingID int64, ref string, status domain.BookingStatus)
}
