package domain

import "time"

type VNPayStatus string

const (
	VNPayCreated VNPayStatus = "created"
	VNPayPaid    VNPayStatus = "paid"
	VNPayFailed  VNPayStatus = "failed"
)

// VNPayPayment is one redirect attempt to the gateway. TxnRef is the
// vnp_TxnRef echoed back on the return URL and is unique per attempt.
type VNPayPayment struct {
	ID           int64       `json:"id"`
	BookingID    int64       `json:"booking_id" gorm:"index"`
	TxnRef       string      `json:"txn_ref" gorm:"uniqueIndex"`
	Amount       float64     `json:"amount"`
	OrderInfo    string      `json:"order_info"`
	Status       VNPayStatus `json:"status"`
	PayURL       string      `json:"pay_url" gorm:"type:text"`
	ResponseCode string      `json:"response_code,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	PaidAt       *time.Time  `json:"paid_at,omitempty"`
}
