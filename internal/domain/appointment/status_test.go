package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "cancelled", "completed"} {
		st, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, Status(s), st)
	}

	_, err := ParseStatus("Pending")
	assert.Error(t, err)
}

func TestStatusProperties(t *testing.T) {
	assert.True(t, StatusPending.Blocking())
	assert.True(t, StatusConfirmed.Blocking())
	assert.False(t, StatusCancelled.Blocking())
	assert.False(t, StatusCompleted.Blocking())

	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())

	assert.ElementsMatch(t, []string{"pending", "confirmed"}, BlockingStatuses())
}

func TestCheckTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusPending, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			err := CheckTransition(tc.from, tc.to)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			ae := httperr.As(err)
			assert.Equal(t, httperr.KindValidation, ae.Kind)
			assert.Equal(t, "status", ae.Field)
		})
	}
}

func TestTransition_Actors(t *testing.T) {
	barber := &models.Barber{ID: 1, UserID: "barber-user"}
	newAp := func() *models.Appointment {
		return &models.Appointment{BarberID: 1, CustomerID: "customer-user", Status: string(StatusPending)}
	}

	ap := newAp()
	assert.Equal(t, ActorBarber, ActorFor(ap, barber, "barber-user"))
	assert.Equal(t, ActorCustomer, ActorFor(ap, barber, "customer-user"))
	assert.Equal(t, ActorStranger, ActorFor(ap, barber, "someone"))

	require.NoError(t, Transition(ap, StatusConfirmed, ActorBarber))
	assert.Equal(t, "confirmed", ap.Status)

	ap = newAp()
	err := Transition(ap, StatusConfirmed, ActorCustomer)
	assert.True(t, httperr.IsCode(err, "customer_can_only_cancel"))
	assert.Equal(t, "pending", ap.Status)

	require.NoError(t, Transition(ap, StatusCancelled, ActorCustomer))

	ap = newAp()
	err = Transition(ap, StatusCancelled, ActorStranger)
	assert.True(t, httperr.IsKind(err, httperr.KindAuth))
}

func TestOverlaps(t *testing.T) {
	at := func(h, m int) time.Time { return time.Date(2030, 6, 2, h, m, 0, 0, time.UTC) }

	assert.True(t, Overlaps(at(14, 0), at(14, 30), at(14, 15), at(14, 45)))
	assert.True(t, Overlaps(at(14, 0), at(15, 0), at(14, 15), at(14, 30)))
	assert.False(t, Overlaps(at(14, 0), at(14, 30), at(14, 30), at(15, 0)))
	assert.False(t, Overlaps(at(14, 30), at(15, 0), at(14, 0), at(14, 30)))
}

func TestEndFor(t *testing.T) {
	start := time.Date(2030, 6, 2, 14, 0, 0, 0, time.UTC)
	end := EndFor(start, &models.Service{DurationMinutes: 45})
	assert.Equal(t, start.Add(45*time.Minute), end)
}
