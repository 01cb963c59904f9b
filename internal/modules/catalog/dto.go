package catalog

import (
	"time"

	"hotelpms/internal/domain"
	"hotelpms/internal/pkg/money"
)

type AvailableRoomsRequest struct {
	CheckInDate  time.Time `json:"check_in_date" binding:"required"`
	CheckOutDate time.Time `json:"check_out_date" binding:"required"`
	IsHourly     bool      `json:"is_hourly"`
}

// AvailableRoomView carries the rate the booking would freeze, already
// picked for the requested pricing mode.
type AvailableRoomView struct {
	ID       int64  `json:"id"`
	Number   string `json:"number"`
	Floor    int    `json:"floor"`
	TypeName string `json:"type_name"`
	Rate     string `json:"rate"`
	RateText string `json:"rate_text"`
}

func newAvailableRoomView(r domain.Room, hourly bool) AvailableRoomView {
	v := AvailableRoomView{
		ID:     r.ID,
		Number: r.Number,
		Floor:  r.Floor,
	}
	if r.RoomType != nil {
		v.TypeName = r.RoomType.Name
		rate := r.RoomType.BaseRate
		if hourly {
			rate = r.RoomType.HourlyRate
		}
		v.Rate = money.FormatDecimal(rate)
		v.RateText = money.FormatVND(rate)
	}
	return v
}
