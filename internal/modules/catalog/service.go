package catalog

import (
	"context"
	"time"

	"hotelpms/internal/domain"
	"hotelpms/internal/modules/booking"
)

type Service struct {
	roomTypes RoomTypeRepository
	rooms     RoomRepository
	items     ServiceItemRepository

	now func() time.Time
}

func NewService(roomTypes RoomTypeRepository, rooms RoomRepository, items ServiceItemRepository) *Service {
	return &Service{
		roomTypes: roomTypes,
		rooms:     rooms,
		items:     items,
		now:       time.Now,
	}
}

// AvailableRooms lists rooms free for the requested window. The window
// is validated with the same rules the booking form applies, so the
// search can never offer a window the reservation would then reject.
func (s *Service) AvailableRooms(ctx context.Context, req AvailableRoomsRequest) ([]AvailableRoomView, error) {
	if req.IsHourly {
		if err := booking.ValidateHourlyWindow(req.CheckInDate, req.CheckOutDate); err != nil {
			return nil, err
		}
	} else {
		if err := booking.ValidateDayWindow(s.now(), req.CheckInDate, req.CheckOutDate); err != nil {
			return nil, err
		}
	}

	rooms, err := s.rooms.AvailableIn(ctx, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	views := make([]AvailableRoomView, 0, len(rooms))
	for _, r := range rooms {
		views = append(views, newAvailableRoomView(r, req.IsHourly))
	}
	return views, nil
}

func (s *Service) ListRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	return s.roomTypes.List(ctx)
}

func (s *Service) ListRooms(ctx context.Context, status string) ([]domain.Room, error) {
	return s.rooms.List(ctx, status)
}

func (s *Service) ListServiceItems(ctx context.Context, activeOnly bool) ([]domain.ServiceItem, error) {
	return s.items.List(ctx, activeOnly)
}
