package appointment

import (
	"context"

	"github.com/shopspring/decimal"

	appt "github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type PopularService struct {
	ServiceID uint   `json:"serviceId"`
	Name      string `json:"name"`
	Count     int64  `json:"count"`
}

type Stats struct {
	TotalAppointments int64            `json:"totalAppointments"`
	TotalRevenue      models.Money     `json:"totalRevenue"`
	PopularServices   []PopularService `json:"popularServices"`
}

type GetBarberStats struct {
	repo appt.Repository
}

func NewGetBarberStats(repo appt.Repository) *GetBarberStats {
	return &GetBarberStats{repo: repo}
}

// Execute aggregates the barber's completed appointments. Revenue is the sum
// of the current service prices.
func (uc *GetBarberStats) Execute(
	ctx context.Context,
	barberID uint,
	userID string,
) (*Stats, error) {

	if userID == "" {
		return nil, errUnauthenticated
	}

	barber, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil {
		return nil, notFoundOr(err, "barber_not_found", "Barber not found.")
	}
	if barber.UserID != userID {
		return nil, httperr.Auth("not_barber_owner", "Only the barber can view these stats.")
	}

	rows, err := uc.repo.CompletedServiceCounts(ctx, barber.ID)
	if err != nil {
		return nil, httperr.Internal(err)
	}

	stats := &Stats{
		TotalRevenue:    models.NewMoney(decimal.Zero),
		PopularServices: make([]PopularService, 0, len(rows)),
	}

	revenue := decimal.Zero
	for _, row := range rows {
		stats.TotalAppointments += row.Count
		revenue = revenue.Add(row.Price.Mul(decimal.NewFromInt(row.Count)))
		stats.PopularServices = append(stats.PopularServices, PopularService{
			ServiceID: row.ServiceID,
			Name:      row.Name,
			Count:     row.Count,
		})
	}
	stats.TotalRevenue = models.NewMoney(revenue)

	return stats, nil
}
