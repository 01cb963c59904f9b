package repository

import (
	"context"
	"time"

	"hotelpms/internal/domain"
	"hotelpms/internal/modules/booking"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// bookingRoomModel is the storage row behind domain.BookingRoom. The
// reservation window and an active flag are denormalized here so the
// idx_no_overbooking constraint can see them on a single row.
type bookingRoomModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	BookingID int64     `gorm:"column:booking_id;index"`
	RoomID    int64     `gorm:"column:room_id;index"`
	Rate      float64   `gorm:"column:rate"`
	CheckIn   time.Time `gorm:"column:check_in"`
	CheckOut  time.Time `gorm:"column:check_out"`
	Active    bool      `gorm:"column:active"`
}

func (bookingRoomModel) TableName() string { return "booking_rooms" }

// statuses that still hold their rooms
var occupyingStatuses = []string{
	string(domain.BookingPending),
	string(domain.BookingConfirmed),
	string(domain.BookingCheckedIn),
}

func withBookingPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Customer").
		Preload("Promotion").
		Preload("Rooms.Room.RoomType").
		Preload("Services")
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rooms := b.Rooms
		services := b.Services
		b.Rooms, b.Services = nil, nil

		if err := tx.Omit(clause.Associations).Create(b).Error; err != nil {
			b.Rooms, b.Services = rooms, services
			return err
		}

		for i := range rooms {
			m := bookingRoomModel{
				BookingID: b.ID,
				RoomID:    rooms[i].RoomID,
				Rate:      rooms[i].Rate,
				CheckIn:   b.CheckInDate,
				CheckOut:  b.CheckOutDate,
				Active:    true,
			}
			if err := tx.Create(&m).Error; err != nil {
				b.Rooms, b.Services = rooms, services
				return err
			}
			rooms[i].ID = m.ID
			rooms[i].BookingID = b.ID
		}
		for i := range services {
			services[i].BookingID = b.ID
			if err := tx.Create(&services[i]).Error; err != nil {
				b.Rooms, b.Services = rooms, services
				return err
			}
		}

		b.Rooms, b.Services = rooms, services
		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := withBookingPreloads(r.db.WithContext(ctx)).First(&b, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context, f booking.ListFilters) ([]domain.Booking, error) {
	q := withBookingPreloads(r.db.WithContext(ctx)).Model(&domain.Booking{})

	if f.Status != "" {
		q = q.Where("bookings.status = ?", f.Status)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Joins("LEFT JOIN customers ON customers.id = bookings.customer_id").
			Where("bookings.reference_code LIKE ? OR customers.full_name LIKE ? OR customers.cccd LIKE ?",
				pattern, pattern, pattern)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var bookings []domain.Booking
	tx := q.Order("bookings.check_in_date DESC, bookings.id DESC").Find(&bookings)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return bookings, nil
}

// Update rewrites the booking core fields and replaces its room rows.
// Service lines are managed through AddServiceLines/RemoveServiceLine
// and stay untouched.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rooms := b.Rooms
		services := b.Services
		b.Rooms, b.Services = nil, nil

		if err := tx.Omit(clause.Associations).Save(b).Error; err != nil {
			b.Rooms, b.Services = rooms, services
			return err
		}

		if err := tx.Where("booking_id = ?", b.ID).Delete(&bookingRoomModel{}).Error; err != nil {
			b.Rooms, b.Services = rooms, services
			return err
		}
		for i := range rooms {
			m := bookingRoomModel{
				BookingID: b.ID,
				RoomID:    rooms[i].RoomID,
				Rate:      rooms[i].Rate,
				CheckIn:   b.CheckInDate,
				CheckOut:  b.CheckOutDate,
				Active:    true,
			}
			if err := tx.Create(&m).Error; err != nil {
				b.Rooms, b.Services = rooms, services
				return err
			}
			rooms[i].ID = m.ID
			rooms[i].BookingID = b.ID
		}

		b.Rooms, b.Services = rooms, services
		return nil
	})
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Booking{}).Where("id = ?", id).
			Update("status", status).Error; err != nil {
			return err
		}
		return r.syncRoomHold(tx, id, status)
	})
}

func (r *BookingRepository) CancelWithReason(ctx context.Context, id int64, reason string) error {
	now := time.Now()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Booking{}).Where("id = ?", id).
			Updates(map[string]any{
				"status":              domain.BookingCancelled,
				"cancellation_reason": reason,
				"cancelled_at":        now,
			}).Error; err != nil {
			return err
		}
		return r.syncRoomHold(tx, id, domain.BookingCancelled)
	})
}

func (r *BookingRepository) SetCheckedIn(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.Booking{}).Where("id = ?", id).
		Updates(map[string]any{
			"status":      domain.BookingCheckedIn,
			"check_in_at": at,
		}).Error
}

func (r *BookingRepository) SetCheckedOut(ctx context.Context, id int64, at time.Time, method domain.PaymentMethod, raw, discount, total float64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Booking{}).Where("id = ?", id).
			Updates(map[string]any{
				"status":          domain.BookingCheckedOut,
				"check_out_at":    at,
				"payment_method":  method,
				"raw_total":       raw,
				"discount_amount": discount,
				"total_amount":    total,
			}).Error; err != nil {
			return err
		}
		return r.syncRoomHold(tx, id, domain.BookingCheckedOut)
	})
}

func (r *BookingRepository) AddServiceLines(ctx context.Context, id int64, lines []domain.ServiceUsage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range lines {
			lines[i].BookingID = id
			if err := tx.Create(&lines[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *BookingRepository) RemoveServiceLine(ctx context.Context, bookingID, lineID int64) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND booking_id = ?", lineID, bookingID).
		Delete(&domain.ServiceUsage{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) SaveTotals(ctx context.Context, id int64, raw, discount, total float64) error {
	return r.db.WithContext(ctx).Model(&domain.Booking{}).Where("id = ?", id).
		Updates(map[string]any{
			"raw_total":       raw,
			"discount_amount": discount,
			"total_amount":    total,
		}).Error
}

func (r *BookingRepository) ListStale(ctx context.Context, now time.Time) ([]domain.Booking, error) {
	var bookings []domain.Booking
	tx := withBookingPreloads(r.db.WithContext(ctx)).
		Where("status IN ?", []string{string(domain.BookingPending), string(domain.BookingConfirmed)}).
		Where("check_out_date < ?", now).
		Find(&bookings)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return bookings, nil
}

// syncRoomHold keeps booking_rooms.active in step with the booking
// status so the exclusion constraint only sees live reservations.
func (r *BookingRepository) syncRoomHold(tx *gorm.DB, id int64, status domain.BookingStatus) error {
	active := false
	for _, s := range occupyingStatuses {
		if s == string(status) {
			active = true
			break
		}
	}
	return tx.Model(&bookingRoomModel{}).Where("booking_id = ?", id).
		Update("active", active).Error
}
