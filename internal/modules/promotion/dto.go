package promotion

import (
	"time"

	"hotelpms/internal/pkg/money"
)

type CreatePromotionRequest struct {
	Code            string    `json:"code" binding:"required"`
	Description     string    `json:"description"`
	DiscountPercent float64   `json:"discount_percent"`
	DiscountAmount  string    `json:"discount_amount"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	Active          bool      `json:"active"`
}

type UpdatePromotionRequest struct {
	Description     *string    `json:"description"`
	DiscountPercent *float64   `json:"discount_percent"`
	DiscountAmount  *string    `json:"discount_amount"`
	StartsAt        *time.Time `json:"starts_at"`
	EndsAt          *time.Time `json:"ends_at"`
	Active          *bool      `json:"active"`
}

type ValidateCodeRequest struct {
	Code     string `json:"code" binding:"required"`
	RawTotal string `json:"raw_total"`
}

// ValidateCodeResponse previews the discount a code would apply to the
// given raw total.
type ValidateCodeResponse struct {
	Code         string `json:"code"`
	Discount     string `json:"discount"`
	DiscountText string `json:"discount_text"`
}

func newValidateCodeResponse(code string, discount float64) ValidateCodeResponse {
	return ValidateCodeResponse{
		Code:         code,
		Discount:     money.FormatDecimal(discount),
		DiscountText: money.FormatVND(discount),
	}
}
