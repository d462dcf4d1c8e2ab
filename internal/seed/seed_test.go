package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-marketplace/internal/infra/repository/memory"
)

func TestSubscriptions_Idempotent(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	require.NoError(t, Subscriptions(ctx, store))
	require.NoError(t, Subscriptions(ctx, store))

	subs, err := store.ListSubscriptions(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.Equal(t, "Basic", subs[0].Name)
	assert.Equal(t, "29.99", subs[1].Price.String())
	assert.Nil(t, subs[2].MaxBarbers)
}

func TestSampleBarber_CreatesServicesOnce(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	first, err := SampleBarber(ctx, store, "demo")
	require.NoError(t, err)
	second, err := SampleBarber(ctx, store, "demo")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	services, err := store.ListServices(ctx, first.ID, true)
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "Classic Cut", services[0].Name)
	assert.Equal(t, 30, services[0].DurationMinutes)
	assert.Equal(t, "15.00", services[1].Price.String())
	assert.True(t, first.Hours()["saturday"].IsOpen)
}
