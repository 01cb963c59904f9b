package booking

import (
	"strings"

	"hotelpms/internal/domain"
)

// StatusDisplay is the canonical presentation tuple for a booking status.
// Every list and dialog shows the status through this one table; there is
// deliberately no second copy anywhere in the tree.
type StatusDisplay struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Canonicalize maps a raw wire status, case-insensitively and tolerant of
// hyphen/underscore spelling, to the canonical set. Anything unrecognized
// collapses to BookingUnknown rather than failing.
func Canonicalize(raw string) domain.BookingStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return domain.BookingPending
	case "confirmed":
		return domain.BookingConfirmed
	case "checked-in", "checked_in":
		return domain.BookingCheckedIn
	case "checked-out", "checked_out":
		return domain.BookingCheckedOut
	case "cancelled", "canceled":
		return domain.BookingCancelled
	default:
		return domain.BookingUnknown
	}
}

// Display resolves a raw status string to its label and semantic color.
func Display(raw string) StatusDisplay {
	switch Canonicalize(raw) {
	case domain.BookingPending:
		return StatusDisplay{Label: "Chờ xác nhận", Color: "warning"}
	case domain.BookingConfirmed:
		return StatusDisplay{Label: "Đã xác nhận", Color: "success"}
	case domain.BookingCheckedIn:
		return StatusDisplay{Label: "Đã nhận phòng", Color: "info"}
	case domain.BookingCheckedOut:
		return StatusDisplay{Label: "Đã trả phòng", Color: "neutral"}
	case domain.BookingCancelled:
		return StatusDisplay{Label: "Đã hủy", Color: "error"}
	default:
		return StatusDisplay{Label: "Không xác định", Color: "neutral"}
	}
}

type Action string

const (
	ActionEdit     Action = "edit"
	ActionCheckIn  Action = "check-in"
	ActionCancel   Action = "cancel"
	ActionCheckOut Action = "check-out"
	ActionInvoice  Action = "invoice"
)

// AllowedActions is the action-eligibility table: a pure function of the
// canonical status. Checked-out bookings only expose the read-only invoice
// view; cancelled bookings expose nothing.
func AllowedActions(status domain.BookingStatus) []Action {
	switch status {
	case domain.BookingPending, domain.BookingConfirmed:
		return []Action{ActionEdit, ActionCheckIn, ActionCancel}
	case domain.BookingCheckedIn:
		return []Action{ActionCheckOut}
	case domain.BookingCheckedOut:
		return []Action{ActionInvoice}
	default:
		return nil
	}
}

// ActionAllowed reports whether a single action is permitted for a status.
func ActionAllowed(status domain.BookingStatus, a Action) bool {
	for _, allowed := range AllowedActions(status) {
		if allowed == a {
			return true
		}
	}
	return false
}
