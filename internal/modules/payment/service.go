package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"hotelpms/internal/domain"
	"hotelpms/internal/modules/booking"
	"hotelpms/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const responseCodeSuccess = "00"

type Service struct {
	payments paymentRepo
	bookings bookingReader
	settle   settler

	tmnCode    string
	hashSecret string
	payURL     string
	returnURL  string

	now func() time.Time
}

func NewService(payments paymentRepo, bookings bookingReader, settle settler) *Service {
	return &Service{
		payments:   payments,
		bookings:   bookings,
		settle:     settle,
		tmnCode:    os.Getenv("VNPAY_TMN_CODE"),
		hashSecret: os.Getenv("VNPAY_HASH_SECRET"),
		payURL:     envOrDefault("VNPAY_PAY_URL", "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html"),
		returnURL:  os.Getenv("VNPAY_RETURN_URL"),
		now:        time.Now,
	}
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

// CreatePayment builds a signed gateway redirect for the outstanding
// balance of a checked-in booking and records the attempt as created.
func (s *Service) CreatePayment(ctx context.Context, req CreatePaymentRequest, clientIP string) (*CreatePaymentResponse, error) {
	if s.tmnCode == "" || s.hashSecret == "" {
		return nil, ErrNotConfigured
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if !booking.ActionAllowed(booking.Canonicalize(string(b.Status)), booking.ActionCheckOut) {
		return nil, ErrInvalidStatusTransition
	}

	t := booking.ComputeTotals(b)
	amount := t.GrandTotal
	txnRef := newTxnRef()
	now := s.now()
	orderInfo := fmt.Sprintf("Thanh toan dat phong %s", b.ReferenceCode)

	params := url.Values{}
	params.Set("vnp_Version", "2.1.0")
	params.Set("vnp_Command", "pay")
	params.Set("vnp_TmnCode", s.tmnCode)
	// VND has no minor unit; the gateway still expects amount*100.
	params.Set("vnp_Amount", strconv.FormatInt(int64(money.Round(amount)*100), 10))
	params.Set("vnp_CurrCode", "VND")
	params.Set("vnp_TxnRef", txnRef)
	params.Set("vnp_OrderInfo", orderInfo)
	params.Set("vnp_OrderType", "other")
	params.Set("vnp_Locale", "vn")
	params.Set("vnp_IpAddr", clientIP)
	params.Set("vnp_CreateDate", now.Format("20060102150405"))
	if s.returnURL != "" {
		params.Set("vnp_ReturnUrl", s.returnURL)
	}
	params.Set("vnp_SecureHash", s.sign(params))

	payURL := s.payURL + "?" + params.Encode()

	p := &domain.VNPayPayment{
		BookingID: b.ID,
		TxnRef:    txnRef,
		Amount:    amount,
		OrderInfo: orderInfo,
		Status:    domain.VNPayCreated,
		PayURL:    payURL,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	log.Info().
		Int64("booking_id", b.ID).
		Str("txn_ref", txnRef).
		Str("amount", money.FormatVND(amount)).
		Msg("vnpay payment created")

	return &CreatePaymentResponse{
		TxnRef: txnRef,
		PayURL: payURL,
		Amount: money.FormatDecimal(amount),
		Status: string(domain.VNPayCreated),
	}, nil
}

// HandleReturn processes the gateway redirect. The signature is checked
// before anything else is trusted; a "00" response settles the booking.
// Replays of an already paid transaction report success without
// settling twice.
func (s *Service) HandleReturn(ctx context.Context, query url.Values) (*ReturnResult, error) {
	received := query.Get("vnp_SecureHash")
	params := url.Values{}
	for k, vs := range query {
		if k == "vnp_SecureHash" || k == "vnp_SecureHashType" {
			continue
		}
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	if received == "" || !hmac.Equal([]byte(strings.ToLower(received)), []byte(s.sign(params))) {
		return nil, ErrInvalidSignature
	}

	txnRef := query.Get("vnp_TxnRef")
	responseCode := query.Get("vnp_ResponseCode")

	p, err := s.payments.GetByTxnRef(ctx, txnRef)
	if err != nil {
		return nil, err
	}
	if p.Status == domain.VNPayPaid {
		return &ReturnResult{TxnRef: txnRef, ResponseCode: responseCode, Paid: true}, nil
	}

	callbackAmount, err := strconv.ParseInt(query.Get("vnp_Amount"), 10, 64)
	if err != nil || callbackAmount != int64(money.Round(p.Amount)*100) {
		_ = s.payments.MarkFailed(ctx, txnRef, responseCode)
		return nil, ErrAmountMismatch
	}

	if responseCode != responseCodeSuccess {
		if err := s.payments.MarkFailed(ctx, txnRef, responseCode); err != nil {
			return nil, err
		}
		log.Warn().
			Str("txn_ref", txnRef).
			Str("response_code", responseCode).
			Msg("vnpay payment failed")
		return &ReturnResult{TxnRef: txnRef, ResponseCode: responseCode, Paid: false}, nil
	}

	if err := s.payments.MarkPaid(ctx, txnRef, responseCode, s.now()); err != nil {
		return nil, err
	}
	settled, err := s.settle.Settle(ctx, p.BookingID, domain.PaymentVNPay)
	if err != nil {
		log.Error().Err(err).
			Int64("booking_id", p.BookingID).
			Str("txn_ref", txnRef).
			Msg("vnpay paid but booking settle failed")
		return nil, err
	}

	return &ReturnResult{
		TxnRef:       txnRef,
		ResponseCode: responseCode,
		Paid:         true,
		Settled:      settled,
	}, nil
}

// sign computes the lowercase hex HMAC-SHA512 the gateway expects over
// the key-sorted, URL-encoded parameter string.
func (s *Service) sign(params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(params.Get(k)))
	}

	mac := hmac.New(sha512.New, []byte(s.hashSecret))
	mac.Write([]byte(sb.String()))
	return hex.EncodeToString(mac.Sum(nil))
}

func newTxnRef() string {
	return strings.ToUpper(uuid.NewString()[:12])
}
