package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

var (
	upstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "console_upstream_requests_total",
			Help: "Requests sent to the hospital API by method and status code.",
		},
		[]string{"method", "status"},
	)
	upstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "console_upstream_request_duration_seconds",
			Help:    "Hospital API request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// Client is the console's only path to the hospital API. Every screen
// fetch and every mutation goes through it: it attaches the session's
// bearer token, propagates request IDs, translates upstream failures into
// the gateway error taxonomy and sheds load through a circuit breaker
// when the hospital API is down.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	log     zerolog.Logger
}

// New builds a Client for the hospital API at baseURL. The timeout bounds
// each round trip; a screen that cannot be filled in time degrades to an
// error view rather than hanging the console.
func New(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     logger.With().Str("component", "gateway").Logger(),
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "hospital-api",
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state change")
		},
	})

	return c
}

// Get fetches path and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post sends in as JSON to path and decodes the response into out.
// Either may be nil.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

// Put sends in as JSON to path and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := TokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	result, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		// Only transport failures and 5xx count against the breaker.
		// A 401 or a validation rejection is the caller's problem, not
		// a sign the hospital API is unhealthy.
		if resp.StatusCode >= 500 {
			payload := readErrorMessage(resp.Body)
			resp.Body.Close()
			return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: payload, kind: ErrUnavailable}
		}
		return resp, nil
	})
	upstreamDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	if err != nil {
		return c.classify(method, path, err)
	}

	resp := result.(*http.Response)
	defer resp.Body.Close()
	upstreamRequests.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return &UpstreamError{StatusCode: resp.StatusCode, kind: ErrSessionExpired}
	case resp.StatusCode == http.StatusForbidden:
		return &UpstreamError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body), kind: ErrForbidden}
	case resp.StatusCode >= 400:
		return &UpstreamError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body), kind: ErrValidation}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("decode upstream response")
		return fmt.Errorf("%w: malformed response", ErrUnavailable)
	}
	return nil
}

func (c *Client) classify(method, path string, err error) error {
	upstreamRequests.WithLabelValues(method, "error").Inc()

	var ue *UpstreamError
	if errors.As(err, &ue) {
		c.log.Warn().Int("status", ue.StatusCode).Str("method", method).Str("path", path).Msg("hospital API server error")
		return err
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: circuit open", ErrUnavailable)
	}
	if errors.Is(err, context.Canceled) {
		// The operator navigated away; nothing to report.
		return err
	}
	c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("hospital API unreachable")
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// readErrorMessage pulls a human-readable message out of an upstream error
// payload. The hospital API answers with {"message": ...}; some endpoints
// use {"error": ...} and a few return plain text.
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 8<<10))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return strings.TrimSpace(string(raw))
}
