package domain

import "time"

type Promotion struct {
	ID              int64     `json:"id"`
	Code            string    `json:"code" gorm:"uniqueIndex" validate:"required"`
	Description     string    `json:"description"`
	DiscountPercent float64   `json:"discount_percent" validate:"gte=0,lte=100"`
	DiscountAmount  float64   `json:"discount_amount" validate:"gte=0"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// EffectiveAt reports whether the promotion can be applied at the given time.
func (p *Promotion) EffectiveAt(t time.Time) bool {
	if !p.Active {
		return false
	}
	if !p.StartsAt.IsZero() && t.Before(p.StartsAt) {
		return false
	}
	if !p.EndsAt.IsZero() && t.After(p.EndsAt) {
		return false
	}
	return true
}

// DiscountFor resolves the discount for a raw total: a fixed amount wins
// over a percentage when both are set.
func (p *Promotion) DiscountFor(rawTotal float64) float64 {
	if p.DiscountAmount > 0 {
		if p.DiscountAmount > rawTotal {
			return rawTotal
		}
		return p.DiscountAmount
	}
	return rawTotal * p.DiscountPercent / 100
}
