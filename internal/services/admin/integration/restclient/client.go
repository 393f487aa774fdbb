// Package restclient calls the remote maintenance REST API on behalf of the
// dashboard.
package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/louisbranch/conectareparo/internal/platform/errors"
	"github.com/louisbranch/conectareparo/internal/platform/timeouts"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is the API address used when none is configured.
const DefaultBaseURL = "http://localhost:8080"

// DefaultAttempts bounds how many times a read is tried.
const DefaultAttempts = 3

const tracerName = "github.com/louisbranch/conectareparo/internal/services/admin/integration/restclient"

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// Observer records API call latency.
type Observer interface {
	ObserveAPICall(operation string, status int, elapsed time.Duration)
}

// Config configures a Client.
type Config struct {
	// BaseURL is the API root, e.g. http://localhost:8080.
	BaseURL string
	// Timeout bounds each request attempt. Zero uses timeouts.APIRequest.
	Timeout time.Duration
	// HTTPClient overrides the transport; nil uses a default client.
	HTTPClient *http.Client
	// Observer receives per-call latency; nil disables it.
	Observer Observer
	// TracerProvider overrides the global tracer provider.
	TracerProvider trace.TracerProvider
	// Propagator overrides the global propagator for outgoing headers.
	Propagator propagation.TextMapPropagator
	// Attempts bounds tries for GET requests. Zero uses DefaultAttempts.
	Attempts int
	// RetryBase and RetryMax shape the doubling backoff between tries.
	RetryBase time.Duration
	RetryMax  time.Duration
}

// Client is a typed client for the maintenance API.
type Client struct {
	baseURL    *url.URL
	http       *http.Client
	timeout    time.Duration
	observer   Observer
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
	attempts   int
	retryBase  time.Duration
	retryMax   time.Duration
}

// New validates cfg and builds a client.
func New(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("parse api url: unsupported scheme %q", base.Scheme)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("parse api url: missing host in %q", raw)
	}

	client := &Client{
		baseURL:    base,
		http:       cfg.HTTPClient,
		timeout:    cfg.Timeout,
		observer:   cfg.Observer,
		propagator: cfg.Propagator,
		attempts:   cfg.Attempts,
		retryBase:  cfg.RetryBase,
		retryMax:   cfg.RetryMax,
	}
	if client.http == nil {
		client.http = &http.Client{}
	}
	provider := cfg.TracerProvider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	client.tracer = provider.Tracer(tracerName)
	if client.timeout <= 0 {
		client.timeout = timeouts.APIRequest
	}
	if client.attempts <= 0 {
		client.attempts = DefaultAttempts
	}
	if client.retryBase <= 0 {
		client.retryBase = timeouts.APIRetryBase
	}
	if client.retryMax < client.retryBase {
		client.retryMax = max(timeouts.APIRetryMax, client.retryBase)
	}
	return client, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// call describes one API request.
type call struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
}

// do runs the request, retrying reads, and decodes a 2xx body into out.
func (c *Client) do(ctx context.Context, req call, out any) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var payload []byte
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", req.op, err)
		}
		payload = encoded
	}

	target := c.endpoint(req.path, req.query)
	ctx, span := c.tracer.Start(ctx, "restclient."+req.op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			semconv.HTTPRequestMethodKey.String(req.method),
			semconv.URLFull(target),
		),
	)
	defer span.End()

	attempts := 1
	if req.method == http.MethodGet {
		attempts = c.attempts
	}
	delay := c.retryBase
	var lastErr error
retry:
	for attempt := 1; attempt <= attempts; attempt++ {
		status, retryable, err := c.attempt(ctx, req, target, payload, out)
		span.SetAttributes(semconv.HTTPResponseStatusCode(status))
		if err == nil {
			span.SetStatus(codes.Ok, "")
			return nil
		}
		lastErr = err
		if !retryable || attempt == attempts || ctx.Err() != nil {
			break
		}
		span.AddEvent("retry", trace.WithAttributes(attribute.Int("attempt", attempt)))
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			lastErr = errors.Join(lastErr, ctx.Err())
			break retry
		case <-timer.C:
		}
		delay *= 2
		if delay > c.retryMax {
			delay = c.retryMax
		}
	}
	span.RecordError(lastErr)
	span.SetStatus(codes.Error, lastErr.Error())
	return lastErr
}

// attempt performs a single HTTP exchange. retry reports whether the
// failure is worth another try.
func (c *Client) attempt(ctx context.Context, req call, target string, payload []byte, out any) (status int, retry bool, err error) {
	started := time.Now()
	defer func() {
		if c.observer != nil {
			c.observer.ObserveAPICall(req.op, status, time.Since(started))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return 0, false, fmt.Errorf("%s: build request: %w", req.op, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	propagator := c.propagator
	if propagator == nil {
		propagator = otel.GetTextMapPropagator()
	}
	propagator.Inject(ctx, propagation.HeaderCarrier(httpReq.Header))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return 0, true, apperrors.Wrap(apperrors.CodeUnavailable, req.op+": request failed", err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	if status < 200 || status > 299 {
		apiErr := decodeAPIError(resp, req.path)
		return status, retryableStatus(status), apiErr.wrap(req.op)
	}
	if out == nil || status == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return status, false, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return status, false, nil
		}
		return status, false, apperrors.Wrap(apperrors.CodeUnavailable, req.op+": decode response", err)
	}
	return status, false, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	target := c.baseURL.String() + path
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}
	return target
}

func retryableStatus(status int) bool {
	switch status {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// pathID escapes a single path segment.
func pathID(id string) string {
	return url.PathEscape(strings.TrimSpace(id))
}
