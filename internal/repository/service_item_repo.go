package repository

import (
	"context"

	"hotelpms/internal/domain"

	"gorm.io/gorm"
)

type ServiceItemRepository struct {
	db *gorm.DB
}

func NewServiceItemRepository(db *gorm.DB) *ServiceItemRepository {
	return &ServiceItemRepository{db: db}
}

func (r *ServiceItemRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceItem, error) {
	var item domain.ServiceItem
	tx := r.db.WithContext(ctx).First(&item, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &item, nil
}

func (r *ServiceItemRepository) List(ctx context.Context, activeOnly bool) ([]domain.ServiceItem, error) {
	q := r.db.WithContext(ctx).Model(&domain.ServiceItem{})
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var items []domain.ServiceItem
	tx := q.Order("kind, name").Find(&items)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return items, nil
}
