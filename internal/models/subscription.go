package models

// Subscription is a plan in the platform catalog, e.g. the Gold Pass.
type Subscription struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description *string `gorm:"size:255" json:"description"`
	Price       Money   `gorm:"not null" json:"price"`
	MaxBarbers  *int    `json:"maxBarbers"`
}
