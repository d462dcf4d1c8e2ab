package models

import (
	"time"

	"gorm.io/datatypes"
)

// DayHours is one entry of a barber's weekly schedule, keyed by lowercase day name.
type DayHours struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	IsOpen bool   `json:"isOpen"`
}

type WorkingHours map[string]DayHours

type Barber struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"size:128;uniqueIndex;not null" json:"userId"`

	ShopName string  `gorm:"size:120;not null" json:"shopName"`
	Bio      *string `gorm:"type:text" json:"bio"`
	Location string  `gorm:"size:255;not null" json:"location"`
	Address  *string `gorm:"size:255" json:"address"`
	City     *string `gorm:"size:100;index" json:"city"`
	Country  string  `gorm:"size:100;default:'Germany'" json:"country"`

	WorkingHours *datatypes.JSONType[WorkingHours] `json:"workingHours"`

	IsVerified bool `gorm:"default:false" json:"isVerified"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Hours returns the schedule, or nil when none was set.
func (b *Barber) Hours() WorkingHours {
	if b.WorkingHours == nil {
		return nil
	}
	return b.WorkingHours.Data()
}

func (b *Barber) SetHours(wh WorkingHours) {
	if wh == nil {
		b.WorkingHours = nil
		return
	}
	v := datatypes.NewJSONType(wh)
	b.WorkingHours = &v
}
