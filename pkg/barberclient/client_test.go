package barberclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingServer(t *testing.T, gets *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/barbers":
			gets.Add(1)
			time.Sleep(20 * time.Millisecond)
			_, _ = w.Write([]byte(`[{"id":1,"shopName":"Fade Room","location":"Mitte"}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/barbers":
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":2,"shopName":"New Shop","location":"Kreuzberg"}`))
		case r.URL.Path == "/api/barbers/7":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error_code":"barber_not_found","message":"Barber not found"}`))
		case r.URL.Path == "/api/appointments":
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error_code":"time_conflict","message":"Time slot is already booked"}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_GetIsCachedUntilMutation(t *testing.T) {
	var gets atomic.Int32
	srv := countingServer(t, &gets)
	c := New(srv.URL, WithToken("tok"))
	ctx := context.Background()

	first, err := c.ListBarbers(ctx, BarberFilter{})
	require.NoError(t, err)
	require.Len(t, first, 1)

	_, err = c.ListBarbers(ctx, BarberFilter{})
	require.NoError(t, err)
	assert.Equal(t, int32(1), gets.Load())

	_, err = c.CreateBarber(ctx, BarberInput{ShopName: "New Shop", Location: "Kreuzberg"})
	require.NoError(t, err)

	_, err = c.ListBarbers(ctx, BarberFilter{})
	require.NoError(t, err)
	assert.Equal(t, int32(2), gets.Load())
}

func TestClient_CachedCopiesAreIndependent(t *testing.T) {
	var gets atomic.Int32
	srv := countingServer(t, &gets)
	c := New(srv.URL)
	ctx := context.Background()

	first, err := c.ListBarbers(ctx, BarberFilter{})
	require.NoError(t, err)
	first[0].ShopName = "changed"

	second, err := c.ListBarbers(ctx, BarberFilter{})
	require.NoError(t, err)
	assert.Equal(t, "Fade Room", second[0].ShopName)
}

func TestClient_ConcurrentReadsShareOneRequest(t *testing.T) {
	var gets atomic.Int32
	srv := countingServer(t, &gets)
	c := New(srv.URL, WithCacheTTL(0))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.ListBarbers(context.Background(), BarberFilter{})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Less(t, gets.Load(), int32(8))
}

func TestClient_Errors(t *testing.T) {
	var gets atomic.Int32
	srv := countingServer(t, &gets)
	c := New(srv.URL)
	ctx := context.Background()

	b, err := c.GetBarber(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, b)

	_, err = c.CreateAppointment(ctx, AppointmentInput{BarberID: 1, ServiceID: 1, StartTime: time.Now().Add(time.Hour)})
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "time_conflict", apiErr.Code)

	_, err = c.ListSubscriptions(ctx)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "upstream down", apiErr.Message)
}

func TestClient_SendsBearerToken(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithTokenSource(func(context.Context) (string, error) { return "abc", nil }))
	_, err := c.ListSubscriptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", got)
}

func TestClient_CacheIsScopedToToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		_, _ = w.Write([]byte(`[{"id":1,"customerId":"` + user + `","status":"pending"}]`))
	}))
	defer srv.Close()

	var current atomic.Value
	current.Store("alice")
	c := New(srv.URL, WithTokenSource(func(context.Context) (string, error) {
		return current.Load().(string), nil
	}))
	ctx := context.Background()
	filter := AppointmentFilter{Role: RoleCustomer}

	got, err := c.ListAppointments(ctx, filter)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].CustomerID)

	current.Store("bob")
	got, err = c.ListAppointments(ctx, filter)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "bob", got[0].CustomerID)
}

func TestClient_CancelledCallerDoesNotFailOthers(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() { close(started) })
		<-release
		_, _ = w.Write([]byte(`[{"id":1,"name":"Basic","price":"0.00"}]`))
	}))
	defer srv.Close()
	releaseAll := sync.OnceFunc(func() { close(release) })
	defer releaseAll()

	c := New(srv.URL, WithCacheTTL(0))

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := c.ListSubscriptions(firstCtx)
		firstErr <- err
	}()
	<-started

	secondDone := make(chan error, 1)
	var plans []Subscription
	go func() {
		var err error
		plans, err = c.ListSubscriptions(context.Background())
		secondDone <- err
	}()

	cancelFirst()
	err := <-firstErr
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	releaseAll()
	require.NoError(t, <-secondDone)
	require.Len(t, plans, 1)
	assert.Equal(t, "Basic", plans[0].Name)
}
