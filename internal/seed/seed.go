// Package seed holds the reference data loaded into fresh environments.
package seed

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int { return &n }

func Plans() []models.Subscription {
	return []models.Subscription{
		{
			Name:        "Basic",
			Description: strPtr("List one barber profile on the marketplace."),
			Price:       models.MustMoney("0.00"),
			MaxBarbers:  intPtr(1),
		},
		{
			Name:        "Gold Pass",
			Description: strPtr("Up to five barbers with priority listing."),
			Price:       models.MustMoney("29.99"),
			MaxBarbers:  intPtr(5),
		},
		{
			Name:        "Platinum",
			Description: strPtr("Unlimited barbers and featured placement."),
			Price:       models.MustMoney("49.99"),
		},
	}
}

func Subscriptions(ctx context.Context, repo catalog.Repository) error {
	for _, p := range Plans() {
		if err := repo.UpsertSubscription(ctx, &p); err != nil {
			return err
		}
	}
	return nil
}

// SampleBarber creates a demo profile with two services for userID. It is a
// no-op when the user already has a profile.
func SampleBarber(ctx context.Context, repo catalog.Repository, userID string) (*models.Barber, error) {
	if b, err := repo.GetBarberByUserID(ctx, userID); err == nil {
		return b, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	b := &models.Barber{
		UserID:   userID,
		ShopName: "Sample Barbershop",
		Bio:      strPtr("Classic cuts and hot towel shaves."),
		Location: "Kreuzberg",
		City:     strPtr("Berlin"),
		Country:  "Germany",
	}
	hours := models.WorkingHours{}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
		hours[day] = models.DayHours{Start: "09:00", End: "18:00", IsOpen: true}
	}
	hours["saturday"] = models.DayHours{Start: "10:00", End: "14:00", IsOpen: true}
	b.SetHours(hours)

	if err := repo.CreateBarber(ctx, b); err != nil {
		return nil, err
	}

	for _, svc := range []models.Service{
		{Name: "Classic Cut", DurationMinutes: 30, Price: models.MustMoney("25.00"), IsActive: true},
		{Name: "Beard Trim", DurationMinutes: 15, Price: models.MustMoney("15.00"), IsActive: true},
	} {
		svc.BarberID = b.ID
		if err := repo.CreateService(ctx, &svc); err != nil {
			return nil, err
		}
	}
	return b, nil
}
