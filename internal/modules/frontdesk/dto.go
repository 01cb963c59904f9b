package frontdesk

import (
	"fmt"

	"hotelpms/internal/modules/booking"
	"hotelpms/internal/pkg/money"
)

type CommitCheckinRequest struct {
	ConfirmEarly bool `json:"confirm_early"`
}

// CheckinView is the check-in dialog payload: the booking snapshot plus,
// when the guest is early, the exact remaining wait.
type CheckinView struct {
	Booking booking.BookingView `json:"booking"`
	Early   bool                `json:"early"`
	Wait    *booking.Wait       `json:"wait,omitempty"`
}

// CheckoutView is the payment preview for the check-out dialog.
type CheckoutView struct {
	Booking        booking.BookingView `json:"booking"`
	BalanceDue     string              `json:"balance_due"`
	BalanceDueText string              `json:"balance_due_text"`
}

func newCheckoutView(v booking.BookingView, t booking.Totals) CheckoutView {
	return CheckoutView{
		Booking:        v,
		BalanceDue:     money.FormatDecimal(t.BalanceDue()),
		BalanceDueText: money.FormatVND(t.BalanceDue()),
	}
}

// SettleResult reports a completed checkout with the issued invoice.
type SettleResult struct {
	Booking     booking.BookingView `json:"booking"`
	InvoiceID   int64               `json:"invoice_id"`
	InvoiceCode string              `json:"invoice_code"`
}

// EarlyCheckinError carries the remaining wait so the dialog can ask for
// the explicit "check in early anyway" confirmation.
type EarlyCheckinError struct {
	Wait booking.Wait
}

func (e *EarlyCheckinError) Error() string {
	return fmt.Sprintf("check-in time not reached, remaining %s", e.Wait)
}

func (e *EarlyCheckinError) Unwrap() error { return ErrEarlyCheckin }
