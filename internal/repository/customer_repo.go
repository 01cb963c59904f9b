package repository

import (
	"context"

	"hotelpms/internal/domain"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var c domain.Customer
	tx := r.db.WithContext(ctx).First(&c, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *CustomerRepository) GetByNationalID(ctx context.Context, nationalID string) (*domain.Customer, error) {
	var c domain.Customer
	tx := r.db.WithContext(ctx).Where("cccd = ?", nationalID).First(&c)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context, search string, limit, offset int) ([]domain.Customer, error) {
	q := r.db.WithContext(ctx).Model(&domain.Customer{})
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("full_name LIKE ? OR cccd LIKE ? OR phone LIKE ?", pattern, pattern, pattern)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var customers []domain.Customer
	tx := q.Order("full_name").Find(&customers)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return customers, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Customer{}, id).Error
}
