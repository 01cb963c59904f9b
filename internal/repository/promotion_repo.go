package repository

import (
	"context"

	"hotelpms/internal/domain"

	"gorm.io/gorm"
)

type PromotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{db: db}
}

func (r *PromotionRepository) Create(ctx context.Context, p *domain.Promotion) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PromotionRepository) GetByID(ctx context.Context, id int64) (*domain.Promotion, error) {
	var p domain.Promotion
	tx := r.db.WithContext(ctx).First(&p, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *PromotionRepository) GetByCode(ctx context.Context, code string) (*domain.Promotion, error) {
	var p domain.Promotion
	tx := r.db.WithContext(ctx).Where("code = ?", code).First(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *PromotionRepository) List(ctx context.Context, activeOnly bool) ([]domain.Promotion, error) {
	q := r.db.WithContext(ctx).Model(&domain.Promotion{})
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var promotions []domain.Promotion
	tx := q.Order("code").Find(&promotions)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return promotions, nil
}

func (r *PromotionRepository) Update(ctx context.Context, p *domain.Promotion) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PromotionRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Promotion{}, id).Error
}
