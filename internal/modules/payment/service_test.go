package payment

import (
	"context"
	"net/url"
	"testing"
	"time"

	"hotelpms/internal/domain"
	"hotelpms/internal/modules/frontdesk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mocks

type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.VNPayPayment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepo) GetByTxnRef(ctx context.Context, txnRef string) (*domain.VNPayPayment, error) {
	args := m.Called(ctx, txnRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VNPayPayment), args.Error(1)
}

func (m *MockPaymentRepo) MarkPaid(ctx context.Context, txnRef, responseCode string, paidAt time.Time) error {
	args := m.Called(ctx, txnRef, responseCode, paidAt)
	return args.Error(0)
}

func (m *MockPaymentRepo) MarkFailed(ctx context.Context, txnRef, responseCode string) error {
	args := m.Called(ctx, txnRef, responseCode)
	return args.Error(0)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockSettler struct {
	mock.Mock
}

func (m *MockSettler) Settle(ctx context.Context, id int64, method domain.PaymentMethod) (*frontdesk.SettleResult, error) {
	args := m.Called(ctx, id, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*frontdesk.SettleResult), args.Error(1)
}

func newTestService(p *MockPaymentRepo, b *MockBookingReader, settle *MockSettler) *Service {
	s := NewService(p, b, settle)
	s.tmnCode = "TESTTMN"
	s.hashSecret = "testsecret"
	s.returnURL = "http://localhost:5173/payment/return"
	s.now = func() time.Time { return time.Date(2027, 6, 2, 12, 0, 0, 0, time.UTC) }
	return s
}

func checkedInBooking() *domain.Booking {
	in := time.Date(2027, 6, 1, 14, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:            42,
		ReferenceCode: "BK-TEST42",
		Status:        domain.BookingCheckedIn,
		CheckInDate:   in,
		CheckOutDate:  in.Add(24 * time.Hour),
		Rooms:         []domain.BookingRoom{{RoomID: 1, Rate: 500000}},
	}
}

// signedQuery builds a return-URL query the way the gateway would,
// signing with the same secret the service verifies with.
func signedQuery(s *Service, overrides map[string]string) url.Values {
	q := url.Values{}
	q.Set("vnp_TxnRef", "ABCD1234")
	q.Set("vnp_Amount", "50000000")
	q.Set("vnp_ResponseCode", "00")
	q.Set("vnp_TmnCode", s.tmnCode)
	for k, v := range overrides {
		q.Set(k, v)
	}
	q.Set("vnp_SecureHash", s.sign(q))
	return q
}

func TestService_CreatePayment(t *testing.T) {
	mockPayments := new(MockPaymentRepo)
	mockBookings := new(MockBookingReader)

	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(checkedInBooking(), nil)
	mockPayments.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.VNPayPayment) bool {
		return p.BookingID == 42 && p.Amount == 500000 && p.Status == domain.VNPayCreated
	})).Return(nil)

	service := newTestService(mockPayments, mockBookings, nil)

	resp, err := service.CreatePayment(context.Background(), CreatePaymentRequest{BookingID: 42}, "203.0.113.10")
	assert.NoError(t, err)
	assert.Equal(t, "500000.00", resp.Amount)
	assert.Contains(t, resp.PayURL, "vnp_Amount=50000000")
	assert.Contains(t, resp.PayURL, "vnp_SecureHash=")
	mockPayments.AssertExpectations(t)
}

func TestService_CreatePayment_NotCheckedIn(t *testing.T) {
	mockBookings := new(MockBookingReader)

	b := checkedInBooking()
	b.Status = domain.BookingConfirmed
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(b, nil)

	service := newTestService(new(MockPaymentRepo), mockBookings, nil)

	_, err := service.CreatePayment(context.Background(), CreatePaymentRequest{BookingID: 42}, "203.0.113.10")
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_CreatePayment_MissingCredentials(t *testing.T) {
	service := newTestService(new(MockPaymentRepo), new(MockBookingReader), nil)
	service.hashSecret = ""

	_, err := service.CreatePayment(context.Background(), CreatePaymentRequest{BookingID: 42}, "203.0.113.10")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestService_HandleReturn_PaidSettlesBooking(t *testing.T) {
	mockPayments := new(MockPaymentRepo)
	mockSettle := new(MockSettler)

	service := newTestService(mockPayments, new(MockBookingReader), mockSettle)

	mockPayments.On("GetByTxnRef", mock.Anything, "ABCD1234").Return(&domain.VNPayPayment{
		BookingID: 42, TxnRef: "ABCD1234", Amount: 500000, Status: domain.VNPayCreated,
	}, nil)
	mockPayments.On("MarkPaid", mock.Anything, "ABCD1234", "00", service.now()).Return(nil)
	mockSettle.On("Settle", mock.Anything, int64(42), domain.PaymentVNPay).
		Return(&frontdesk.SettleResult{InvoiceID: 555, InvoiceCode: "INV-2027-AAAA1111"}, nil)

	res, err := service.HandleReturn(context.Background(), signedQuery(service, nil))
	assert.NoError(t, err)
	assert.True(t, res.Paid)
	assert.Equal(t, int64(555), res.Settled.InvoiceID)
	mockPayments.AssertExpectations(t)
	mockSettle.AssertExpectations(t)
}

func TestService_HandleReturn_TamperedSignature(t *testing.T) {
	service := newTestService(new(MockPaymentRepo), new(MockBookingReader), nil)

	q := signedQuery(service, nil)
	q.Set("vnp_Amount", "1") // mutate after signing

	_, err := service.HandleReturn(context.Background(), q)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestService_HandleReturn_AmountMismatch(t *testing.T) {
	mockPayments := new(MockPaymentRepo)
	service := newTestService(mockPayments, new(MockBookingReader), nil)

	mockPayments.On("GetByTxnRef", mock.Anything, "ABCD1234").Return(&domain.VNPayPayment{
		BookingID: 42, TxnRef: "ABCD1234", Amount: 999999, Status: domain.VNPayCreated,
	}, nil)
	mockPayments.On("MarkFailed", mock.Anything, "ABCD1234", "00").Return(nil)

	_, err := service.HandleReturn(context.Background(), signedQuery(service, nil))
	assert.ErrorIs(t, err, ErrAmountMismatch)
	mockPayments.AssertExpectations(t)
}

func TestService_HandleReturn_GatewayDeclined(t *testing.T) {
	mockPayments := new(MockPaymentRepo)
	mockSettle := new(MockSettler)
	service := newTestService(mockPayments, new(MockBookingReader), mockSettle)

	mockPayments.On("GetByTxnRef", mock.Anything, "ABCD1234").Return(&domain.VNPayPayment{
		BookingID: 42, TxnRef: "ABCD1234", Amount: 500000, Status: domain.VNPayCreated,
	}, nil)
	mockPayments.On("MarkFailed", mock.Anything, "ABCD1234", "24").Return(nil)

	res, err := service.HandleReturn(context.Background(), signedQuery(service, map[string]string{"vnp_ResponseCode": "24"}))
	assert.NoError(t, err)
	assert.False(t, res.Paid)
	mockSettle.AssertNotCalled(t, "Settle", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_HandleReturn_ReplayOfPaidTxn(t *testing.T) {
	mockPayments := new(MockPaymentRepo)
	mockSettle := new(MockSettler)
	service := newTestService(mockPayments, new(MockBookingReader), mockSettle)

	mockPayments.On("GetByTxnRef", mock.Anything, "ABCD1234").Return(&domain.VNPayPayment{
		BookingID: 42, TxnRef: "ABCD1234", Amount: 500000, Status: domain.VNPayPaid,
	}, nil)

	res, err := service.HandleReturn(context.Background(), signedQuery(service, nil))
	assert.NoError(t, err)
	assert.True(t, res.Paid)
	mockSettle.AssertNotCalled(t, "Settle", mock.Anything, mock.Anything, mock.Anything)
	mockPayments.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
