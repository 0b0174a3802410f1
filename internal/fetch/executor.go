// Package fetch issues bounded-latency requests against the content API.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/brainfeed/internal/apperr"
	"github.com/DjordjeVuckovic/brainfeed/internal/metrics"
)

const (
	DefaultTimeout      = 2000 * time.Millisecond
	DefaultMaxBodyBytes = 8 << 20
)

type Config struct {
	BaseURL      string
	Timeout      time.Duration
	MaxBodyBytes int64
}

// Payload is a raw 2xx response body.
type Payload struct {
	StatusCode int
	Body       []byte
	Latency    time.Duration
}

type Executor struct {
	baseURL      string
	timeout      time.Duration
	maxBodyBytes int64
	client       *http.Client
}

type Option func(*Executor)

// WithHTTPClient replaces the default client. Its own Timeout is ignored in
// favour of the executor deadline.
func WithHTTPClient(c *http.Client) Option {
	return func(e *Executor) {
		e.client = c
	}
}

func NewExecutor(cfg Config, opts ...Option) (*Executor, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid content api url %q", cfg.BaseURL)
	}

	e := &Executor{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		timeout:      cfg.Timeout,
		maxBodyBytes: cfg.MaxBodyBytes,
		client:       &http.Client{},
	}
	if e.timeout <= 0 {
		e.timeout = DefaultTimeout
	}
	if e.maxBodyBytes <= 0 {
		e.maxBodyBytes = DefaultMaxBodyBytes
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Executor) Timeout() time.Duration { return e.timeout }

// Fetch performs exactly one GET for resource. The deadline context is
// released before Fetch returns on every path, and no retry is attempted.
func (e *Executor) Fetch(ctx context.Context, resource, path string, params url.Values) (*Payload, error) {
	reqURL := e.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	tctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	payload, err := e.do(tctx, resource, reqURL)
	latency := time.Since(start)

	if err != nil && !hasStatus(err) {
		switch {
		case ctx.Err() != nil:
			err = ctx.Err()
		case errors.Is(tctx.Err(), context.DeadlineExceeded):
			err = &apperr.TimeoutError{Resource: resource, After: e.timeout}
		}
	}

	outcome := outcomeOf(err)
	metrics.ObserveFetch(resource, outcome, latency)
	if err != nil {
		slog.Warn("Content fetch failed", "resource", resource, "url", reqURL, "outcome", outcome, "latency", latency, "error", err)
		return nil, err
	}

	slog.Debug("Content fetch", "resource", resource, "url", reqURL, "status", payload.StatusCode, "latency", latency)
	payload.Latency = latency
	return payload, nil
}

func (e *Executor) do(ctx context.Context, resource, reqURL string) (*Payload, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &apperr.TransportError{Resource: resource, Err: fmt.Errorf("create request: %w", err)}
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, &apperr.TransportError{Resource: resource, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &apperr.TransportError{Resource: resource, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, e.maxBodyBytes+1))
	if err != nil {
		return nil, &apperr.TransportError{Resource: resource, Err: fmt.Errorf("read response: %w", err)}
	}
	if int64(len(body)) > e.maxBodyBytes {
		return nil, &apperr.TransportError{Resource: resource, Err: fmt.Errorf("response exceeds %d bytes", e.maxBodyBytes)}
	}

	return &Payload{StatusCode: resp.StatusCode, Body: body}, nil
}

func hasStatus(err error) bool {
	var te *apperr.TransportError
	return errors.As(err, &te) && te.StatusCode != 0
}

func outcomeOf(err error) string {
	if err == nil {
		return "success"
	}
	var te *apperr.TransportError
	if errors.As(err, &te) && te.StatusCode == http.StatusNotFound {
		return "not_found"
	}
	return string(apperr.KindOf(err))
}
