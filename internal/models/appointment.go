package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID string `gorm:"size:128;index;not null" json:"customerId"`

	BarberID uint    `gorm:"index;not null" json:"barberId"`
	Barber   *Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"barber,omitempty"`

	ServiceID uint     `gorm:"not null" json:"serviceId"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service,omitempty"`

	StartTime time.Time `gorm:"type:timestamptz;index;not null" json:"startTime"`
	EndTime   time.Time `gorm:"type:timestamptz;not null" json:"endTime"`

	Status string  `gorm:"size:20;default:'pending';not null" json:"status"`
	Notes  *string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
