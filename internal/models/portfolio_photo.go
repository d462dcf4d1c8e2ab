package models

import "time"

type PortfolioPhoto struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index;not null" json:"barberId"`

	ObjectKey   string `gorm:"size:255;not null" json:"-"`
	URL         string `gorm:"size:512;not null" json:"url"`
	ContentType string `gorm:"size:50" json:"contentType"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`

	CreatedAt time.Time `json:"createdAt"`
}
