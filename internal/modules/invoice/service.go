package invoice

import (
	"context"
	"errors"
	"time"

	"hotelpms/internal/domain"

	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("invoice not found")

type InvoiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.Invoice, error)
	MarkPrinted(ctx context.Context, id int64, at time.Time) error
}

type Service struct {
	invoices InvoiceRepository

	now func() time.Time
}

func NewService(invoices InvoiceRepository) *Service {
	return &Service{invoices: invoices, now: time.Now}
}

// Get loads an invoice and normalizes its stored payload, whichever of
// the two wire shapes it carries.
func (s *Service) Get(ctx context.Context, id int64) (*View, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return Normalize(inv.Payload)
}

// Print resolves the invoice for a booking, normalizes it and records the
// print. Rendering/emailing is delegated to the printer spooler; here we
// only produce the payload and count the request.
func (s *Service) Print(ctx context.Context, bookingID int64) (*View, error) {
	inv, err := s.invoices.GetByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	view, err := Normalize(inv.Payload)
	if err != nil {
		return nil, err
	}

	if err := s.invoices.MarkPrinted(ctx, inv.ID, s.now()); err != nil {
		// The print itself succeeded from the caller's point of view.
		log.Error().Err(err).Int64("invoice_id", inv.ID).Msg("failed to record invoice print")
	}
	log.Info().Str("code", view.Code).Int64("booking_id", bookingID).Msg("invoice print requested")

	return view, nil
}
