package models

import "time"

type Service struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	BarberID uint    `gorm:"index;not null" json:"barberId"`
	Barber   *Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Name            string  `gorm:"size:100;not null" json:"name"`
	Description     *string `gorm:"size:255" json:"description"`
	DurationMinutes int     `gorm:"not null" json:"durationMinutes"`
	Price           Money   `gorm:"not null" json:"price"`
	IsActive        bool    `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}
