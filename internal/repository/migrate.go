package repository

import (
	"hotelpms/internal/domain"

	"gorm.io/gorm"
)

// Migrate creates the schema. booking_rooms is migrated from its row
// model because it carries columns the domain type does not expose:
// the reservation window is denormalized onto each room row so the
// database itself can reject overlapping reservations.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Customer{},
		&domain.Amenity{},
		&domain.RoomType{},
		&domain.RoomTypeAmenity{},
		&domain.Room{},
		&domain.ServiceItem{},
		&domain.Promotion{},
		&domain.Booking{},
		&bookingRoomModel{},
		&domain.ServiceUsage{},
		&domain.Invoice{},
		&domain.VNPayPayment{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		// SQLite is for local development only; the overlap pre-check in
		// the booking service is the sole guard there.
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}
	return db.Exec(`
DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'idx_no_overbooking') THEN
		ALTER TABLE booking_rooms
		ADD CONSTRAINT idx_no_overbooking
		EXCLUDE USING gist (room_id WITH =, tstzrange(check_in, check_out, '[)') WITH &&)
		WHERE (active);
	END IF;
END $$
`).Error
}
