package payment

import "hotelpms/internal/modules/frontdesk"

type CreatePaymentRequest struct {
	BookingID int64 `json:"booking_id" binding:"required"`
}

type CreatePaymentResponse struct {
	TxnRef string `json:"txn_ref"`
	PayURL string `json:"pay_url"`
	Amount string `json:"amount"`
	Status string `json:"status"`
}

// ReturnResult is what the SPA renders after the gateway redirects back.
type ReturnResult struct {
	TxnRef       string                  `json:"txn_ref"`
	ResponseCode string                  `json:"response_code"`
	Paid         bool                    `json:"paid"`
	Settled      *frontdesk.SettleResult `json:"settled,omitempty"`
}
