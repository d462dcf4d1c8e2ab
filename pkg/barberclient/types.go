package barberclient

import (
	"time"

	"github.com/shopspring/decimal"
)

type DayHours struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	IsOpen bool   `json:"isOpen"`
}

type Barber struct {
	ID           uint                `json:"id"`
	UserID       string              `json:"userId"`
	ShopName     string              `json:"shopName"`
	Bio          *string             `json:"bio"`
	Location     string              `json:"location"`
	Address      *string             `json:"address"`
	City         *string             `json:"city"`
	Country      string              `json:"country"`
	WorkingHours map[string]DayHours `json:"workingHours"`
	IsVerified   bool                `json:"isVerified"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

type Service struct {
	ID              uint            `json:"id"`
	BarberID        uint            `json:"barberId"`
	Name            string          `json:"name"`
	Description     *string         `json:"description"`
	DurationMinutes int             `json:"durationMinutes"`
	Price           decimal.Decimal `json:"price"`
	IsActive        bool            `json:"isActive"`
}

type Appointment struct {
	ID         uint      `json:"id"`
	CustomerID string    `json:"customerId"`
	BarberID   uint      `json:"barberId"`
	ServiceID  uint      `json:"serviceId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Status     string    `json:"status"`
	Notes      *string   `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`

	// Set on list responses only.
	Service *Service `json:"service,omitempty"`
	Barber  *Barber  `json:"barber,omitempty"`
}

type Subscription struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	MaxBarbers  *int            `json:"maxBarbers"`
}

type PopularService struct {
	ServiceID uint   `json:"serviceId"`
	Name      string `json:"name"`
	Count     int64  `json:"count"`
}

type Stats struct {
	TotalAppointments int64            `json:"totalAppointments"`
	TotalRevenue      decimal.Decimal  `json:"totalRevenue"`
	PopularServices   []PopularService `json:"popularServices"`
}

type Photo struct {
	ID          uint      `json:"id"`
	BarberID    uint      `json:"barberId"`
	URL         string    `json:"url"`
	ContentType string    `json:"contentType"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AuditLog struct {
	ID        uint      `json:"id"`
	BarberID  uint      `json:"barberId"`
	UserID    *string   `json:"userId"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  *uint     `json:"entityId"`
	Metadata  string    `json:"metadata"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuditPage struct {
	Data  []AuditLog `json:"data"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
	Total int64      `json:"total"`
}

// ====================================================
// REQUESTS
// ====================================================

type BarberFilter struct {
	City   string
	Search string
}

type BarberInput struct {
	ShopName     string              `json:"shopName"`
	Bio          *string             `json:"bio,omitempty"`
	Location     string              `json:"location"`
	Address      *string             `json:"address,omitempty"`
	City         *string             `json:"city,omitempty"`
	Country      *string             `json:"country,omitempty"`
	WorkingHours map[string]DayHours `json:"workingHours,omitempty"`
}

// BarberPatch only sends the fields that are set.
type BarberPatch struct {
	ShopName     *string             `json:"shopName,omitempty"`
	Bio          *string             `json:"bio,omitempty"`
	Location     *string             `json:"location,omitempty"`
	Address      *string             `json:"address,omitempty"`
	City         *string             `json:"city,omitempty"`
	Country      *string             `json:"country,omitempty"`
	WorkingHours map[string]DayHours `json:"workingHours,omitempty"`
}

type ServiceInput struct {
	Name            string          `json:"name"`
	Description     *string         `json:"description,omitempty"`
	DurationMinutes int             `json:"durationMinutes"`
	Price           decimal.Decimal `json:"price"`
	IsActive        *bool           `json:"isActive,omitempty"`
}

type ServicePatch struct {
	Name            *string          `json:"name,omitempty"`
	Description     *string          `json:"description,omitempty"`
	DurationMinutes *int             `json:"durationMinutes,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	IsActive        *bool            `json:"isActive,omitempty"`
}

type AppointmentInput struct {
	BarberID  uint      `json:"barberId"`
	ServiceID uint      `json:"serviceId"`
	StartTime time.Time `json:"startTime"`
	Notes     *string   `json:"notes,omitempty"`
}

type Role string

const (
	RoleCustomer Role = "customer"
	RoleBarber   Role = "barber"
)

type AppointmentFilter struct {
	Role Role
	From time.Time
	To   time.Time
}
