package booking

import (
	"fmt"
	"time"

	"hotelpms/internal/domain"
)

// Hourly bookings cannot start at or after this hour of day.
const hourlyLatestStartHour = 20

// Wait is a remaining duration decomposed into whole days, hours and
// minutes with floor semantics (no rounding up anywhere).
type Wait struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

func (w Wait) String() string {
	return fmt.Sprintf("%d ngày %d giờ %d phút", w.Days, w.Hours, w.Minutes)
}

// EarlyCheckinWait reports how long until the scheduled check-in. The
// second result is false once now has reached the check-in time, meaning
// no extra confirmation is required.
func EarlyCheckinWait(now, checkIn time.Time) (Wait, bool) {
	if !now.Before(checkIn) {
		return Wait{}, false
	}
	remaining := checkIn.Sub(now)
	minutes := int(remaining.Minutes())
	return Wait{
		Days:    minutes / (24 * 60),
		Hours:   (minutes / 60) % 24,
		Minutes: minutes % 60,
	}, true
}

// ValidateHourlyWindow enforces the hourly-booking rules: at least one
// hour long, and the stay cannot start at 20:00 or later local time.
func ValidateHourlyWindow(checkIn, checkOut time.Time) error {
	if checkIn.Hour() >= hourlyLatestStartHour {
		return fmt.Errorf("%w: hourly bookings cannot start at or after %d:00", ErrValidation, hourlyLatestStartHour)
	}
	if checkOut.Sub(checkIn) < time.Hour {
		return fmt.Errorf("%w: check-out must be at least 1 hour after check-in", ErrValidation)
	}
	return nil
}

// ValidateDayWindow enforces the day-booking rules: check-in no earlier
// than today (date-only, time of day ignored) and check-out strictly
// after check-in.
func ValidateDayWindow(now, checkIn, checkOut time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, checkIn.Location())
	if in.Before(today) {
		return fmt.Errorf("%w: check-in date cannot be in the past", ErrValidation)
	}
	if !checkOut.After(checkIn) {
		return fmt.Errorf("%w: check-out date must be after check-in date", ErrValidation)
	}
	return nil
}

// IsStale reports whether a booking still pending or confirmed has
// already passed its check-out date and should be treated as cancelled.
func IsStale(status domain.BookingStatus, checkOut, now time.Time) bool {
	if status != domain.BookingPending && status != domain.BookingConfirmed {
		return false
	}
	return checkOut.Before(now)
}
