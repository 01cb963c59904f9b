package catalog

import (
	"context"
	"time"

	"hotelpms/internal/domain"
)

type RoomTypeRepository interface {
	List(ctx context.Context) ([]domain.RoomType, error)
}

type RoomRepository interface {
	List(ctx context.Context, status string) ([]domain.Room, error)
	AvailableIn(ctx context.Context, start, end time.Time) ([]domain.Room, error)
}

type ServiceItemRepository interface {
	List(ctx context.Context, activeOnly bool) ([]domain.ServiceItem, error)
}
