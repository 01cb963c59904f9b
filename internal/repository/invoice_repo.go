package repository

import (
	"context"
	"time"

	"hotelpms/internal/domain"

	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	var inv domain.Invoice
	tx := r.db.WithContext(ctx).First(&inv, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &inv, nil
}

func (r *InvoiceRepository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Invoice, error) {
	var inv domain.Invoice
	tx := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("issued_at DESC").
		First(&inv)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &inv, nil
}

func (r *InvoiceRepository) MarkPrinted(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.Invoice{}).Where("id = ?", id).
		Updates(map[string]any{
			"print_count":     gorm.Expr("print_count + 1"),
			"last_printed_at": at,
		}).Error
}
