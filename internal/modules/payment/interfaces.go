package payment

import (
	"context"
	"time"

	"hotelpms/internal/domain"
	"hotelpms/internal/modules/frontdesk"
)

type paymentRepo interface {
	Create(ctx context.Context, p *domain.VNPayPayment) error
	GetByTxnRef(ctx context.Context, txnRef string) (*domain.VNPayPayment, error)
	MarkPaid(ctx context.Context, txnRef, responseCode string, paidAt time.Time) error
	MarkFailed(ctx context.Context, txnRef, responseCode string) error
}

type bookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// settler finalizes the booking once the gateway confirms the money.
// The front desk service is the production implementation.
type settler interface {
	Settle(ctx context.Context, id int64, method domain.PaymentMethod) (*frontdesk.SettleResult, error)
}
