package main

import (
	"fmt"
	"os"
	"time"

	"hotelpms/internal/database"
	"hotelpms/internal/domain"
	"hotelpms/internal/repository"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo hotel: staff accounts, room types with amenities, rooms,
// service catalog and a promotion. Run against a fresh database.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotelpms.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	log.Info().Msg("cleaning old data")
	for _, table := range []string{
		"vn_pay_payments", "invoices", "service_usages", "booking_rooms",
		"bookings", "promotions", "service_items", "rooms",
		"room_type_amenities", "room_types", "amenities", "customers", "users",
	} {
		db.Exec("DELETE FROM " + table)
	}

	log.Info().Msg("creating staff accounts")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	db.Create(&domain.User{
		Email:        "admin@hotelpms.vn",
		PasswordHash: string(adminHash),
		FullName:     "Quản trị viên",
		Role:         domain.RoleAdmin,
	})
	staffHash, _ := bcrypt.GenerateFromPassword([]byte("letan123"), bcrypt.DefaultCost)
	db.Create(&domain.User{
		Email:        "letan@hotelpms.vn",
		PasswordHash: string(staffHash),
		FullName:     "Lễ tân ca sáng",
		Role:         domain.RoleReceptionist,
	})

	log.Info().Msg("creating amenities and room types")
	towel := domain.Amenity{Name: "Khăn tắm", Price: 30000}
	water := domain.Amenity{Name: "Nước suối", Price: 15000}
	kettle := domain.Amenity{Name: "Ấm đun nước", Price: 0}
	db.Create(&towel)
	db.Create(&water)
	db.Create(&kettle)

	roomTypes := []domain.RoomType{
		{Name: "Standard", MaxOccupancy: 2, BaseRate: 500000, HourlyRate: 100000},
		{Name: "Deluxe", MaxOccupancy: 2, BaseRate: 700000, HourlyRate: 150000},
		{Name: "Family", MaxOccupancy: 4, BaseRate: 1200000, HourlyRate: 250000},
	}
	for i := range roomTypes {
		db.Create(&roomTypes[i])
		db.Create(&domain.RoomTypeAmenity{RoomTypeID: roomTypes[i].ID, AmenityID: towel.ID, Quantity: 2})
		db.Create(&domain.RoomTypeAmenity{RoomTypeID: roomTypes[i].ID, AmenityID: water.ID, Quantity: 2})
		db.Create(&domain.RoomTypeAmenity{RoomTypeID: roomTypes[i].ID, AmenityID: kettle.ID, Quantity: 1})
	}

	log.Info().Msg("creating rooms")
	count := 0
	for floor := 1; floor <= 3; floor++ {
		for n := 1; n <= 6; n++ {
			rt := roomTypes[(n-1)%len(roomTypes)]
			db.Create(&domain.Room{
				Number:     fmt.Sprintf("%d%02d", floor, n),
				Floor:      floor,
				RoomTypeID: rt.ID,
				Status:     domain.RoomAvailable,
			})
			count++
		}
	}
	log.Info().Int("rooms", count).Msg("rooms created")

	log.Info().Msg("creating service catalog")
	items := []domain.ServiceItem{
		{Name: "Ăn sáng", Kind: domain.KindService, Price: 80000, Active: true},
		{Name: "Giặt ủi", Kind: domain.KindService, Price: 50000, Active: true},
		{Name: "Đưa đón sân bay", Kind: domain.KindService, Price: 250000, Active: true},
		{Name: "Khăn tắm thêm", Kind: domain.KindAmenity, Price: 30000, Active: true},
		{Name: "Nước suối thêm", Kind: domain.KindAmenity, Price: 15000, Active: true},
	}
	for i := range items {
		db.Create(&items[i])
	}

	log.Info().Msg("creating promotion")
	db.Create(&domain.Promotion{
		Code:            "HE2026",
		Description:     "Khuyến mãi hè",
		DiscountPercent: 10,
		StartsAt:        time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:          time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Active:          true,
	})

	log.Info().Msg("seed complete: admin@hotelpms.vn/admin123, letan@hotelpms.vn/letan123")
}
