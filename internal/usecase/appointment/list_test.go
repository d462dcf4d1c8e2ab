package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
)

func TestListAppointments_CustomerRoundTrip(t *testing.T) {
	f := newFixture(t)
	created := f.book(t, "customer-1", f.cut, at(14, 0))
	f.book(t, "customer-2", f.beard, at(15, 0))

	apps, err := NewListAppointments(f.store).Execute(context.Background(), ListInput{
		UserID: "customer-1",
		Role:   RoleCustomer,
	})
	require.NoError(t, err)
	require.Len(t, apps, 1)

	got := apps[0]
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.EndTime.Equal(at(14, 30)))
	require.NotNil(t, got.Service)
	assert.Equal(t, "Classic Cut", got.Service.Name)
	assert.Equal(t, "25.00", got.Service.Price.String())
	require.NotNil(t, got.Barber)
	assert.Equal(t, "Fade Factory", got.Barber.ShopName)
}

func TestListAppointments_BarberSeesOwnBookingsNewestFirst(t *testing.T) {
	f := newFixture(t)
	early := f.book(t, "customer-1", f.cut, at(10, 0))
	late := f.book(t, "customer-2", f.cut, at(16, 0))
	mid := f.book(t, "customer-3", f.beard, at(12, 0))

	apps, err := NewListAppointments(f.store).Execute(context.Background(), ListInput{
		UserID: f.barber.UserID,
		Role:   RoleBarber,
	})
	require.NoError(t, err)
	require.Len(t, apps, 3)

	assert.Equal(t, late.ID, apps[0].ID)
	assert.Equal(t, mid.ID, apps[1].ID)
	assert.Equal(t, early.ID, apps[2].ID)
}

func TestListAppointments_BarberRoleWithoutProfile(t *testing.T) {
	f := newFixture(t)
	f.book(t, "customer-1", f.cut, at(14, 0))

	apps, err := NewListAppointments(f.store).Execute(context.Background(), ListInput{
		UserID: "customer-1",
		Role:   RoleBarber,
	})
	require.NoError(t, err)
	assert.NotNil(t, apps)
	assert.Empty(t, apps)
}

func TestListAppointments_DateWindow(t *testing.T) {
	f := newFixture(t)
	f.book(t, "customer-1", f.cut, at(9, 30))
	inside := f.book(t, "customer-1", f.cut, at(11, 0))
	f.book(t, "customer-1", f.cut, at(13, 0))

	from, to := at(10, 0), at(13, 0)
	apps, err := NewListAppointments(f.store).Execute(context.Background(), ListInput{
		UserID: "customer-1",
		Role:   RoleCustomer,
		From:   &from,
		To:     &to,
	})
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, inside.ID, apps[0].ID)
}

func TestListAppointments_Rejections(t *testing.T) {
	f := newFixture(t)
	uc := NewListAppointments(f.store)
	ctx := context.Background()

	_, err := uc.Execute(ctx, ListInput{UserID: "u", Role: "admin"})
	ae := httperr.As(err)
	assert.Equal(t, httperr.KindValidation, ae.Kind)
	assert.Equal(t, "role", ae.Field)

	_, err = uc.Execute(ctx, ListInput{Role: RoleCustomer})
	assert.True(t, httperr.IsKind(err, httperr.KindAuth))

	from, to := at(12, 0), at(10, 0)
	_, err = uc.Execute(ctx, ListInput{UserID: "u", Role: RoleCustomer, From: &from, To: &to})
	assert.Equal(t, "to", httperr.As(err).Field)
}
