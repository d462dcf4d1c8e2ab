// Package barberclient is a typed Go client for the marketplace HTTP API.
//
// GET responses are cached per request path and concurrent identical
// reads share one round trip. Every mutation drops the cached queries it
// can affect, so a read after a successful write always reaches the server.
package barberclient

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// TokenSource returns the bearer token for the next request. An empty
// token sends the request anonymously.
type TokenSource func(ctx context.Context) (string, error)

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithToken(token string) Option {
	return func(c *Client) {
		c.token = func(context.Context) (string, error) { return token, nil }
	}
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.token = ts }
}

// WithCacheTTL sets how long GET responses stay fresh. Zero disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.cache = newQueryCache(ttl) }
}

type Client struct {
	base  string
	http  *http.Client
	token TokenSource
	cache *queryCache
	group singleflight.Group

	fetchTimeout time.Duration
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base:  strings.TrimRight(baseURL, "/"),
		http:  &http.Client{Timeout: 15 * time.Second},
		cache: newQueryCache(30 * time.Second),

		fetchTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Invalidate drops cached queries whose path starts with any prefix.
// With no prefixes the whole cache is cleared.
func (c *Client) Invalidate(prefixes ...string) {
	if len(prefixes) == 0 {
		prefixes = []string{""}
	}
	c.cache.invalidate(prefixes...)
}

// ====================================================
// BARBERS
// ====================================================

func (c *Client) ListBarbers(ctx context.Context, f BarberFilter) ([]Barber, error) {
	q := url.Values{}
	if f.City != "" {
		q.Set("city", f.City)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}

	var out []Barber
	if err := c.query(ctx, withQuery("/api/barbers", q), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBarber returns nil without an error when the barber does not exist.
func (c *Client) GetBarber(ctx context.Context, id uint) (*Barber, error) {
	var out Barber
	if err := c.query(ctx, fmt.Sprintf("/api/barbers/%d", id), &out); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

// MyBarber returns nil without an error when the caller has no profile.
func (c *Client) MyBarber(ctx context.Context) (*Barber, error) {
	var out Barber
	if err := c.query(ctx, "/api/me/barber", &out); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBarber(ctx context.Context, in BarberInput) (*Barber, error) {
	var out Barber
	if err := c.mutate(ctx, http.MethodPost, "/api/barbers", in, &out,
		"/api/barbers", "/api/me/barber"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBarber(ctx context.Context, id uint, in BarberPatch) (*Barber, error) {
	var out Barber
	if err := c.mutate(ctx, http.MethodPut, fmt.Sprintf("/api/barbers/%d", id), in, &out,
		"/api/barbers", "/api/me/barber", "/api/appointments"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) BarberStats(ctx context.Context, id uint) (*Stats, error) {
	var out Stats
	if err := c.query(ctx, fmt.Sprintf("/api/barbers/%d/stats", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ====================================================
// SERVICES
// ====================================================

func (c *Client) ListServices(ctx context.Context, barberID uint) ([]Service, error) {
	var out []Service
	if err := c.query(ctx, servicesPath(barberID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateService(ctx context.Context, barberID uint, in ServiceInput) (*Service, error) {
	var out Service
	if err := c.mutate(ctx, http.MethodPost, servicesPath(barberID), in, &out,
		servicesPath(barberID)); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateService(ctx context.Context, id uint, in ServicePatch) (*Service, error) {
	var out Service
	if err := c.mutate(ctx, http.MethodPatch, fmt.Sprintf("/api/services/%d", id), in, &out); err != nil {
		return nil, err
	}
	// The owning barber is only known from the response.
	c.cache.invalidate(servicesPath(out.BarberID), "/api/appointments")
	return &out, nil
}

func servicesPath(barberID uint) string {
	return fmt.Sprintf("/api/barbers/%d/services", barberID)
}

// ====================================================
// APPOINTMENTS
// ====================================================

func (c *Client) ListAppointments(ctx context.Context, f AppointmentFilter) ([]Appointment, error) {
	q := url.Values{}
	q.Set("role", string(f.Role))
	if !f.From.IsZero() {
		q.Set("from", f.From.UTC().Format(time.RFC3339))
	}
	if !f.To.IsZero() {
		q.Set("to", f.To.UTC().Format(time.RFC3339))
	}

	var out []Appointment
	if err := c.query(ctx, withQuery("/api/appointments", q), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAppointment(ctx context.Context, in AppointmentInput) (*Appointment, error) {
	var out Appointment
	if err := c.mutate(ctx, http.MethodPost, "/api/appointments", in, &out,
		"/api/appointments", fmt.Sprintf("/api/barbers/%d/stats", in.BarberID)); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAppointmentStatus(ctx context.Context, id uint, status string) (*Appointment, error) {
	var out Appointment
	body := map[string]string{"status": status}
	if err := c.mutate(ctx, http.MethodPatch, fmt.Sprintf("/api/appointments/%d/status", id), body, &out); err != nil {
		return nil, err
	}
	c.cache.invalidate("/api/appointments", fmt.Sprintf("/api/barbers/%d/stats", out.BarberID))
	return &out, nil
}

// ====================================================
// CATALOG
// ====================================================

func (c *Client) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	var out []Subscription
	if err := c.query(ctx, "/api/subscriptions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListPhotos(ctx context.Context, barberID uint) ([]Photo, error) {
	var out []Photo
	if err := c.query(ctx, photosPath(barberID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadPhoto sends r as a multipart "file" field.
func (c *Client) UploadPhoto(ctx context.Context, barberID uint, filename string, r io.Reader) (*Photo, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, errors.Wrap(err, "build upload")
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, errors.Wrap(err, "read upload")
	}
	if err := mw.Close(); err != nil {
		return nil, errors.Wrap(err, "build upload")
	}

	token, err := c.bearer(ctx)
	if err != nil {
		return nil, err
	}

	var out Photo
	if err := c.do(ctx, token, http.MethodPost, photosPath(barberID), mw.FormDataContentType(), &buf, &out); err != nil {
		return nil, err
	}
	c.cache.invalidate(photosPath(barberID))
	return &out, nil
}

func photosPath(barberID uint) string {
	return fmt.Sprintf("/api/barbers/%d/photos", barberID)
}

func (c *Client) AuditLogs(ctx context.Context, page, limit int) (*AuditPage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", fmt.Sprint(page))
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}

	var out AuditPage
	if err := c.query(ctx, withQuery("/api/me/audit-logs", q), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ====================================================
// TRANSPORT
// ====================================================

// query serves GETs from the cache, collapsing concurrent misses for the
// same path and caller identity into one request. The shared request is
// detached from any single caller's cancellation; each caller still stops
// waiting when its own context ends.
func (c *Client) query(ctx context.Context, path string, out any) error {
	token, err := c.bearer(ctx)
	if err != nil {
		return err
	}
	key := cacheKey(path, token)

	if body, ok := c.cache.get(key); ok {
		return decode(body, out)
	}

	ch := c.group.DoChan(key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
		defer cancel()

		var raw json.RawMessage
		if err := c.do(fetchCtx, token, http.MethodGet, path, "", nil, &raw); err != nil {
			return nil, err
		}
		c.cache.set(key, raw)
		return []byte(raw), nil
	})

	select {
	case <-ctx.Done():
		return errors.Wrapf(ctx.Err(), "GET %s", path)
	case res := <-ch:
		if res.Err != nil {
			return res.Err
		}
		return decode(res.Val.([]byte), out)
	}
}

// cacheKey starts with the path so prefix invalidation still matches, and
// ends with a token fingerprint so identities never share entries.
func cacheKey(path, token string) string {
	if token == "" {
		return path + "#anon"
	}
	sum := sha256.Sum256([]byte(token))
	return path + "#" + hex.EncodeToString(sum[:8])
}

func (c *Client) bearer(ctx context.Context) (string, error) {
	if c.token == nil {
		return "", nil
	}
	token, err := c.token(ctx)
	if err != nil {
		return "", errors.Wrap(err, "token source")
	}
	return token, nil
}

func (c *Client) mutate(ctx context.Context, method, path string, in, out any, invalidate ...string) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "encode request")
	}
	token, err := c.bearer(ctx)
	if err != nil {
		return err
	}
	if err := c.do(ctx, token, method, path, "application/json", bytes.NewReader(payload), out); err != nil {
		return err
	}
	if len(invalidate) > 0 {
		c.cache.invalidate(invalidate...)
	}
	return nil
}

func (c *Client) do(ctx context.Context, token, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "read %s %s", method, path)
	}

	if resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		if json.Unmarshal(raw, apiErr) != nil || apiErr.Code == "" {
			apiErr.Code = http.StatusText(resp.StatusCode)
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return decode(raw, out)
}

func decode(raw []byte, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
