package frontdesk

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotelpms/internal/domain"
	"hotelpms/internal/modules/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) SetCheckedIn(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockBookingRepository) SetCheckedOut(ctx context.Context, id int64, at time.Time, method domain.PaymentMethod, raw, discount, total float64) error {
	args := m.Called(ctx, id, at, method, raw, discount, total)
	return args.Error(0)
}

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	args := m.Called(ctx, inv)
	if inv != nil {
		inv.ID = 555 // simulate DB insert
	}
	return args.Error(0)
}

func newTestService(b *MockBookingRepository, i *MockInvoiceRepository, now time.Time) *Service {
	s := NewService(b, i, nil)
	s.now = func() time.Time { return now }
	return s
}

func confirmedBooking(checkIn time.Time) *domain.Booking {
	return &domain.Booking{
		ID:            42,
		ReferenceCode: "BK-TEST42",
		Status:        domain.BookingConfirmed,
		CheckInDate:   checkIn,
		CheckOutDate:  checkIn.Add(24 * time.Hour),
		Customer:      &domain.Customer{ID: 7, FullName: "Nguyễn Văn A"},
		Rooms: []domain.BookingRoom{
			{RoomID: 1, Rate: 500000, Room: &domain.Room{ID: 1, Number: "101"}},
		},
	}
}

func TestService_CheckinPreview_ReportsEarlyWait(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	checkIn := time.Date(2027, 6, 2, 10, 0, 0, 0, time.UTC)
	now := time.Date(2027, 6, 1, 8, 0, 0, 0, time.UTC)

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(confirmedBooking(checkIn), nil)

	service := newTestService(mockBookings, nil, now)

	v, err := service.CheckinPreview(context.Background(), 42)
	assert.NoError(t, err)
	assert.True(t, v.Early)
	assert.NotNil(t, v.Wait)
	assert.Equal(t, 1, v.Wait.Days)
	assert.Equal(t, 2, v.Wait.Hours)
	assert.Equal(t, 0, v.Wait.Minutes)
}

func TestService_CommitCheckin_BlockedWhenEarly(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	checkIn := time.Date(2027, 6, 2, 10, 0, 0, 0, time.UTC)
	now := time.Date(2027, 6, 1, 8, 0, 0, 0, time.UTC)

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(confirmedBooking(checkIn), nil)

	service := newTestService(mockBookings, nil, now)

	_, err := service.CommitCheckin(context.Background(), 42, false)
	assert.ErrorIs(t, err, ErrEarlyCheckin)

	var early *EarlyCheckinError
	assert.True(t, errors.As(err, &early))
	assert.Equal(t, booking.Wait{Days: 1, Hours: 2, Minutes: 0}, early.Wait)
	mockBookings.AssertNotCalled(t, "SetCheckedIn", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CommitCheckin_EarlyConfirmed(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	checkIn := time.Date(2027, 6, 2, 10, 0, 0, 0, time.UTC)
	now := time.Date(2027, 6, 1, 8, 0, 0, 0, time.UTC)

	b := confirmedBooking(checkIn)
	checkedIn := confirmedBooking(checkIn)
	checkedIn.Status = domain.BookingCheckedIn

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(b, nil).Once()
	mockBookings.On("SetCheckedIn", mock.Anything, int64(42), now).Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(checkedIn, nil).Once()

	service := newTestService(mockBookings, nil, now)

	v, err := service.CommitCheckin(context.Background(), 42, true)
	assert.NoError(t, err)
	assert.Equal(t, "checked-in", v.Status)
	mockBookings.AssertExpectations(t)
}

func TestService_CommitCheckin_OnTimeNeedsNoConfirmation(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	checkIn := time.Date(2027, 6, 2, 10, 0, 0, 0, time.UTC)
	now := checkIn.Add(30 * time.Minute)

	b := confirmedBooking(checkIn)
	checkedIn := confirmedBooking(checkIn)
	checkedIn.Status = domain.BookingCheckedIn

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(b, nil).Once()
	mockBookings.On("SetCheckedIn", mock.Anything, int64(42), now).Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(checkedIn, nil).Once()

	service := newTestService(mockBookings, nil, now)

	v, err := service.CommitCheckin(context.Background(), 42, false)
	assert.NoError(t, err)
	assert.Equal(t, "checked-in", v.Status)
}

func TestService_CommitCheckin_WrongStatus(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	checkIn := time.Date(2027, 6, 2, 10, 0, 0, 0, time.UTC)
	b := confirmedBooking(checkIn)
	b.Status = domain.BookingCheckedOut

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(b, nil)

	service := newTestService(mockBookings, nil, checkIn)

	_, err := service.CommitCheckin(context.Background(), 42, true)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_CheckoutPreview_BalanceAfterDeposit(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	checkIn := time.Date(2027, 6, 1, 14, 0, 0, 0, time.UTC)
	b := confirmedBooking(checkIn)
	b.Status = domain.BookingCheckedIn
	b.DepositAmount = 200000

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(b, nil)

	service := newTestService(mockBookings, nil, checkIn.Add(20*time.Hour))

	v, err := service.CheckoutPreview(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, "300000.00", v.BalanceDue)
	assert.Equal(t, "300.000 ₫", v.BalanceDueText)
}

func TestService_PayCash_SettlesAndIssuesInvoice(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockInvoices := new(MockInvoiceRepository)

	checkIn := time.Date(2027, 6, 1, 14, 0, 0, 0, time.UTC)
	now := checkIn.Add(26 * time.Hour)

	b := confirmedBooking(checkIn)
	b.Status = domain.BookingCheckedIn
	settled := confirmedBooking(checkIn)
	settled.Status = domain.BookingCheckedOut

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(b, nil).Once()
	mockBookings.On("SetCheckedOut", mock.Anything, int64(42), now, domain.PaymentCash,
		500000.0, 0.0, 500000.0).Return(nil)
	mockInvoices.On("Create", mock.Anything, mock.MatchedBy(func(inv *domain.Invoice) bool {
		return inv.BookingID == 42 &&
			inv.TotalAmount == 500000 &&
			inv.PaymentMethod == domain.PaymentCash &&
			len(inv.Payload) > 0
	})).Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(settled, nil).Once()

	service := newTestService(mockBookings, mockInvoices, now)

	res, err := service.PayCash(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, int64(555), res.InvoiceID)
	assert.Contains(t, res.InvoiceCode, "INV-2027-")
	assert.Equal(t, "checked-out", res.Booking.Status)
	mockBookings.AssertExpectations(t)
	mockInvoices.AssertExpectations(t)
}

func TestService_PayCash_RejectedBeforeCheckin(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	checkIn := time.Date(2027, 6, 1, 14, 0, 0, 0, time.UTC)
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(confirmedBooking(checkIn), nil)

	service := newTestService(mockBookings, nil, checkIn)

	_, err := service.PayCash(context.Background(), 42)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_IncompleteBookingRefused(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	checkIn := time.Date(2027, 6, 1, 14, 0, 0, 0, time.UTC)
	b := confirmedBooking(checkIn)
	b.Customer = nil

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(b, nil)

	service := newTestService(mockBookings, nil, checkIn)

	_, err := service.CheckinPreview(context.Background(), 42)
	assert.ErrorIs(t, err, ErrIncompleteData)
}
