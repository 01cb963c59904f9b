package repository

import (
	"context"
	"time"

	"hotelpms/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Room, error) {
	var rooms []domain.Room
	tx := r.db.WithContext(ctx).
		Preload("RoomType").
		Where("id IN ?", ids).
		Find(&rooms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rooms, nil
}

func (r *RoomRepository) List(ctx context.Context, status string) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Preload("RoomType")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var rooms []domain.Room
	tx := q.Order("number").Find(&rooms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rooms, nil
}

// AnyBooked reports whether any of the rooms holds a live reservation
// overlapping [start, end). Half-open comparison, same as the database
// constraint, so back-to-back stays never collide.
func (r *RoomRepository) AnyBooked(ctx context.Context, roomIDs []int64, start, end time.Time, excludeBookingID int64) (bool, error) {
	var cnt int64
	q := r.db.WithContext(ctx).
		Table("booking_rooms").
		Joins("JOIN bookings ON bookings.id = booking_rooms.booking_id").
		Where("booking_rooms.room_id IN ?", roomIDs).
		Where("bookings.status IN ?", occupyingStatuses).
		Where("bookings.check_in_date < ? AND bookings.check_out_date > ?", end, start)
	if excludeBookingID > 0 {
		q = q.Where("bookings.id <> ?", excludeBookingID)
	}

	tx := q.Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// AvailableIn lists rooms in service with no live reservation
// overlapping the window.
func (r *RoomRepository) AvailableIn(ctx context.Context, start, end time.Time) ([]domain.Room, error) {
	sub := r.db.
		Table("booking_rooms").
		Select("booking_rooms.room_id").
		Joins("JOIN bookings ON bookings.id = booking_rooms.booking_id").
		Where("bookings.status IN ?", occupyingStatuses).
		Where("bookings.check_in_date < ? AND bookings.check_out_date > ?", end, start)

	var rooms []domain.Room
	tx := r.db.WithContext(ctx).
		Preload("RoomType.Amenities.Amenity").
		Where("status = ?", domain.RoomAvailable).
		Where("id NOT IN (?)", sub).
		Order("number").
		Find(&rooms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rooms, nil
}
