package frontdesk

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotelpms/internal/domain"
	"hotelpms/internal/modules/booking"
	"hotelpms/internal/modules/invoice"
	"hotelpms/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Service struct {
	bookings BookingRepository
	invoices InvoiceRepository
	events   EventPublisher

	now func() time.Time
}

func NewService(bookings BookingRepository, invoices InvoiceRepository, events EventPublisher) *Service {
	return &Service{
		bookings: bookings,
		invoices: invoices,
		events:   events,
		now:      time.Now,
	}
}

// CheckinPreview returns the check-in dialog payload. An early arrival is
// reported, not rejected; the commit endpoint enforces the confirmation.
func (s *Service) CheckinPreview(ctx context.Context, id int64) (*CheckinView, error) {
	b, err := s.loadComplete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.ActionAllowed(booking.Canonicalize(string(b.Status)), booking.ActionCheckIn) {
		return nil, ErrInvalidStatusTransition
	}

	view := CheckinView{Booking: booking.NewBookingView(b)}
	if wait, early := booking.EarlyCheckinWait(s.now(), b.CheckInDate); early {
		view.Early = true
		view.Wait = &wait
	}
	return &view, nil
}

// CommitCheckin moves the booking to checked-in. When the scheduled
// check-in time has not been reached the commit is blocked until the
// caller repeats it with the explicit early confirmation; once the time
// has passed no confirmation step happens at all.
func (s *Service) CommitCheckin(ctx context.Context, id int64, confirmEarly bool) (*booking.BookingView, error) {
	b, err := s.loadComplete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.ActionAllowed(booking.Canonicalize(string(b.Status)), booking.ActionCheckIn) {
		return nil, ErrInvalidStatusTransition
	}

	now := s.now()
	if wait, early := booking.EarlyCheckinWait(now, b.CheckInDate); early && !confirmEarly {
		return nil, &EarlyCheckinError{Wait: wait}
	}

	if err := s.bookings.SetCheckedIn(ctx, id, now); err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.PublishStatus(b.ID, b.ReferenceCode, domain.BookingCheckedIn)
	}

	b, err = s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v := booking.NewBookingView(b)
	return &v, nil
}

// CheckoutPreview returns the payment preview with the recomputed totals
// and the balance after deposit.
func (s *Service) CheckoutPreview(ctx context.Context, id int64) (*CheckoutView, error) {
	b, err := s.loadComplete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.ActionAllowed(booking.Canonicalize(string(b.Status)), booking.ActionCheckOut) {
		return nil, ErrInvalidStatusTransition
	}

	view := newCheckoutView(booking.NewBookingView(b), booking.ComputeTotals(b))
	return &view, nil
}

// PayCash settles the booking in cash: checked-out status, actual
// check-out timestamp, final totals and a structured invoice.
func (s *Service) PayCash(ctx context.Context, id int64) (*SettleResult, error) {
	return s.Settle(ctx, id, domain.PaymentCash)
}

// Settle finalizes a checked-in booking with the given payment method.
// The online payment flow reuses it after gateway confirmation.
func (s *Service) Settle(ctx context.Context, id int64, method domain.PaymentMethod) (*SettleResult, error) {
	b, err := s.loadComplete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.ActionAllowed(booking.Canonicalize(string(b.Status)), booking.ActionCheckOut) {
		return nil, ErrInvalidStatusTransition
	}

	now := s.now()
	t := booking.ComputeTotals(b)

	if err := s.bookings.SetCheckedOut(ctx, id, now, method, t.RawTotal(), t.Discount, t.GrandTotal); err != nil {
		return nil, err
	}

	inv := &domain.Invoice{
		Code:           newInvoiceCode(now),
		BookingID:      b.ID,
		IssuedAt:       now,
		RoomAmount:     t.RoomSubtotal,
		ServiceAmount:  t.ServiceSubtotal,
		AmenityAmount:  t.AmenitySubtotal,
		DiscountAmount: t.Discount,
		TotalAmount:    t.GrandTotal,
		PaymentMethod:  method,
	}
	payload, err := invoice.BuildStructuredPayload(b, inv)
	if err != nil {
		return nil, err
	}
	inv.Payload = payload

	if err := s.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.PublishStatus(b.ID, b.ReferenceCode, domain.BookingCheckedOut)
	}

	log.Info().
		Int64("booking_id", b.ID).
		Str("invoice_code", inv.Code).
		Str("method", string(method)).
		Str("total", money.FormatVND(t.GrandTotal)).
		Msg("booking settled")

	b, err = s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &SettleResult{
		Booking:     booking.NewBookingView(b),
		InvoiceID:   inv.ID,
		InvoiceCode: inv.Code,
	}, nil
}

// loadComplete fetches a booking and refuses to act on one missing its
// customer or rooms; dialogs render an explicit incomplete-data state
// instead of partial fields.
func (s *Service) loadComplete(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Customer == nil || len(b.Rooms) == 0 {
		return nil, ErrIncompleteData
	}
	return b, nil
}

func newInvoiceCode(now time.Time) string {
	return fmt.Sprintf("INV-%s-%s", now.Format("2006"), strings.ToUpper(uuid.NewString()[:8]))
}
