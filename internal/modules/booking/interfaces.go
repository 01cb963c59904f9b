package booking

import (
	"context"
	"time"

	"hotelpms/internal/domain"
)

// BookingRepository is the persistence surface this module needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, f ListFilters) ([]domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	CancelWithReason(ctx context.Context, id int64, reason string) error
	AddServiceLines(ctx context.Context, id int64, lines []domain.ServiceUsage) error
	RemoveServiceLine(ctx context.Context, bookingID, lineID int64) error
	SaveTotals(ctx context.Context, id int64, raw, discount, total float64) error
	ListStale(ctx context.Context, now time.Time) ([]domain.Booking, error)
}

// RoomRepository resolves rooms and overlap conflicts.
type RoomRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Room, error)
	AnyBooked(ctx context.Context, roomIDs []int64, start, end time.Time, excludeBookingID int64) (bool, error)
}

type ServiceItemRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ServiceItem, error)
}

type PromotionRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Promotion, error)
}

// EventPublisher pushes lifecycle changes to the front-desk feed.
// A nil publisher is valid and means no feed.
type EventPublisher interface {
	PublishStatus(bookingID int64, ref string, status domain.BookingStatus)
}
