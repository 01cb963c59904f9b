package booking

import (
	"testing"
	"time"

	"hotelpms/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestEarlyCheckinWait_Early(t *testing.T) {
	now := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	checkIn := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

	wait, early := EarlyCheckinWait(now, checkIn)

	assert.True(t, early)
	assert.Equal(t, Wait{Days: 1, Hours: 2, Minutes: 0}, wait)
}

func TestEarlyCheckinWait_FloorSemantics(t *testing.T) {
	now := time.Date(2026, 4, 1, 8, 0, 30, 0, time.UTC)
	checkIn := time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)

	wait, early := EarlyCheckinWait(now, checkIn)

	// 1h29m30s remaining floors to 1 hour 29 minutes.
	assert.True(t, early)
	assert.Equal(t, Wait{Days: 0, Hours: 1, Minutes: 29}, wait)
}

func TestEarlyCheckinWait_OnTime(t *testing.T) {
	checkIn := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

	_, early := EarlyCheckinWait(checkIn, checkIn)
	assert.False(t, early)

	_, early = EarlyCheckinWait(checkIn.Add(time.Minute), checkIn)
	assert.False(t, early)
}

func TestValidateHourlyWindow(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	// 19:30 start with a 1 hour stay is the last valid slot shape.
	in := day.Add(19*time.Hour + 30*time.Minute)
	assert.NoError(t, ValidateHourlyWindow(in, in.Add(time.Hour)))

	// Starting at or after 20:00 is rejected regardless of duration.
	in = day.Add(20*time.Hour + time.Minute)
	err := ValidateHourlyWindow(in, in.Add(3*time.Hour))
	assert.ErrorIs(t, err, ErrValidation)

	in = day.Add(20 * time.Hour)
	assert.ErrorIs(t, ValidateHourlyWindow(in, in.Add(2*time.Hour)), ErrValidation)

	// 59 minutes is too short; exactly 60 is fine.
	in = day.Add(10 * time.Hour)
	assert.ErrorIs(t, ValidateHourlyWindow(in, in.Add(59*time.Minute)), ErrValidation)
	assert.NoError(t, ValidateHourlyWindow(in, in.Add(60*time.Minute)))
}

func TestValidateDayWindow(t *testing.T) {
	now := time.Date(2026, 4, 10, 15, 30, 0, 0, time.UTC)

	// Same calendar day is allowed even when the time of day has passed.
	in := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	out := in.Add(24 * time.Hour)
	assert.NoError(t, ValidateDayWindow(now, in, out))

	// Yesterday is not.
	in = time.Date(2026, 4, 9, 12, 0, 0, 0, time.UTC)
	assert.ErrorIs(t, ValidateDayWindow(now, in, out), ErrValidation)

	// Check-out must be strictly after check-in.
	in = time.Date(2026, 4, 11, 12, 0, 0, 0, time.UTC)
	assert.ErrorIs(t, ValidateDayWindow(now, in, in), ErrValidation)
}

func TestIsStale(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, IsStale(domain.BookingPending, past, now))
	assert.True(t, IsStale(domain.BookingConfirmed, past, now))
	assert.False(t, IsStale(domain.BookingPending, future, now))
	assert.False(t, IsStale(domain.BookingCheckedIn, past, now))
	assert.False(t, IsStale(domain.BookingCheckedOut, past, now))
	assert.False(t, IsStale(domain.BookingCancelled, past, now))
}
