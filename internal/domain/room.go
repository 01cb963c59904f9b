package domain

import "time"

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

type Room struct {
	ID         int64      `json:"id"`
	Number     string     `json:"number" validate:"required"`
	Floor      int        `json:"floor"`
	RoomTypeID int64      `json:"room_type_id" validate:"required"`
	Status     RoomStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	RoomType *RoomType `json:"room_type,omitempty" gorm:"foreignKey:RoomTypeID"`
}

type RoomType struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name" validate:"required"`
	MaxOccupancy int     `json:"max_occupancy"`
	BaseRate     float64 `json:"base_rate" validate:"gte=0"`
	HourlyRate   float64 `json:"hourly_rate" validate:"gte=0"`

	Amenities []RoomTypeAmenity `json:"amenities" gorm:"foreignKey:RoomTypeID"`
}

type Amenity struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

// RoomTypeAmenity carries the default per-room quantity of an amenity
// for a room type (two towels, one kettle, ...).
type RoomTypeAmenity struct {
	ID         int64 `json:"id"`
	RoomTypeID int64 `json:"room_type_id"`
	AmenityID  int64 `json:"amenity_id"`
	Quantity   int   `json:"quantity"`

	Amenity *Amenity `json:"amenity,omitempty" gorm:"foreignKey:AmenityID"`
}
