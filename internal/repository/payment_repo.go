package repository

import (
	"context"
	"time"

	"hotelpms/internal/domain"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.VNPayPayment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByTxnRef(ctx context.Context, txnRef string) (*domain.VNPayPayment, error) {
	var p domain.VNPayPayment
	tx := r.db.WithContext(ctx).Where("txn_ref = ?", txnRef).First(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *PaymentRepository) MarkPaid(ctx context.Context, txnRef, responseCode string, paidAt time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.VNPayPayment{}).
		Where("txn_ref = ?", txnRef).
		Updates(map[string]any{
			"status":        domain.VNPayPaid,
			"response_code": responseCode,
			"paid_at":       paidAt,
		}).Error
}

func (r *PaymentRepository) MarkFailed(ctx context.Context, txnRef, responseCode string) error {
	return r.db.WithContext(ctx).Model(&domain.VNPayPayment{}).
		Where("txn_ref = ?", txnRef).
		Updates(map[string]any{
			"status":        domain.VNPayFailed,
			"response_code": responseCode,
		}).Error
}
