// Package spaceapi is the HTTP client for the upstream space travel API.
//
// Every response body is normalized from snake_case to camelCase before it is
// decoded into the typed models, so the rest of the service never sees wire
// casing. Calls are one-shot: there are no retries.
package spaceapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"spaceBooker/internal/lib/normalize"
	"spaceBooker/internal/models"
)

// StatusError is returned when the upstream answers with a non-2xx status.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Code)
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
	limiter *rate.Limiter
	timeout time.Duration
	log     *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithRateLimit caps outgoing requests per second. A non-positive rps disables the limit.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), int(rps)+1)
	}
}

// WithTimeout bounds every call, in addition to any deadline on the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

func New(log *slog.Logger, baseURL string, opts ...Option) (*Client, error) {
	const op = "client.spaceapi.New"

	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%s: base url %q must be absolute", op, baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{},
		limiter: rate.NewLimiter(rate.Inf, 0),
		log:     log.With(slog.String("component", "spaceapi")),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) Destinations(ctx context.Context) ([]models.Destination, error) {
	var out []models.Destination
	if err := c.do(ctx, http.MethodGet, "/destinations", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) SeatClasses(ctx context.Context, destinationID int64) ([]models.SeatClass, error) {
	var out []models.SeatClass

	path := "/destinations/" + strconv.FormatInt(destinationID, 10) + "/seat-classes"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) Accommodations(ctx context.Context, destinationID int64) ([]models.Accommodation, error) {
	var out []models.Accommodation

	path := "/destinations/" + strconv.FormatInt(destinationID, 10) + "/accommodations"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.ConfirmedBooking, error) {
	const op = "client.spaceapi.CreateBooking"

	var wb wireBooking
	if err := c.do(ctx, http.MethodPost, "/bookings", req, &wb); err != nil {
		return nil, err
	}

	b, err := wb.toModel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (c *Client) UserBookings(ctx context.Context, userID int64) ([]models.ConfirmedBooking, error) {
	const op = "client.spaceapi.UserBookings"

	var wbs []wireBooking

	path := "/users/" + strconv.FormatInt(userID, 10) + "/bookings"
	if err := c.do(ctx, http.MethodGet, path, nil, &wbs); err != nil {
		return nil, err
	}

	out := make([]models.ConfirmedBooking, 0, len(wbs))
	for _, wb := range wbs {
		b, err := wb.toModel()
		if err != nil {
			return nil, fmt.Errorf("%s: booking %d: %w", op, wb.ID, err)
		}
		out = append(out, *b)
	}

	return out, nil
}

func (c *Client) UserProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	var out models.UserProfile
	if err := c.do(ctx, http.MethodGet, "/users/"+strconv.FormatInt(userID, 10), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) TravelTips(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/space-travel-tips", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := "client.spaceapi." + method + " " + path

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	c.log.Debug("upstream responded",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode}
	}

	if err = normalize.Decode(resp.Body, out); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
