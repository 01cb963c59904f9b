package repository

import (
	"context"

	"hotelpms/internal/domain"

	"gorm.io/gorm"
)

type RoomTypeRepository struct {
	db *gorm.DB
}

func NewRoomTypeRepository(db *gorm.DB) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

func (r *RoomTypeRepository) List(ctx context.Context) ([]domain.RoomType, error) {
	var types []domain.RoomType
	tx := r.db.WithContext(ctx).
		Preload("Amenities.Amenity").
		Order("name").
		Find(&types)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return types, nil
}
