package domain

import "time"

type Customer struct {
	ID          int64     `json:"id"`
	FullName    string    `json:"full_name" validate:"required"`
	NationalID  string    `json:"cccd" gorm:"column:cccd;uniqueIndex"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Nationality string    `json:"nationality"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
