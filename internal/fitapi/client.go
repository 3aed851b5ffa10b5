package fitapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/2beens/fitsync/internal/telemetry/metrics"
	"github.com/2beens/fitsync/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const maxErrorBodySize = 4 << 10

// TokenSource provides the bearer token for personal endpoints.
// An empty token means there is no session.
type TokenSource interface {
	Token() string
}

// Client talks to the remote fitness API. It keeps no state besides its token source.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	metricsManager *metrics.Manager

	tokensMu sync.RWMutex
	tokens   TokenSource
}

func NewClient(baseURL string, httpClient *http.Client, metricsManager *metrics.Manager) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     httpClient,
		metricsManager: metricsManager,
	}
}

// SetTokenSource plugs in the session that owns the token. The session itself
// depends on the client for login, hence the setter.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokensMu.Lock()
	defer c.tokensMu.Unlock()
	c.tokens = tokens
}

func (c *Client) token() string {
	c.tokensMu.RLock()
	defer c.tokensMu.RUnlock()
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

type request struct {
	method string
	path   string
	// endpoint is the route template, used as a low cardinality metric label
	endpoint string
	query    url.Values
	body     any
	auth     bool
}

func (c *Client) do(ctx context.Context, r request, out any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fitapi."+r.endpoint)
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(
		attribute.String("http.method", r.method),
		attribute.String("fitapi.path", r.path),
	)

	var token string
	if r.auth {
		if token = c.token(); token == "" {
			return ErrMissingToken
		}
	}

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	reqURL := c.baseURL + r.path
	if len(r.query) > 0 {
		reqURL += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, reqURL, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	// the API rejects preflighted requests, so bodies go out without a Content-Type
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log.Tracef("fitapi: %s %s", r.method, reqURL)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.observe(r.endpoint, start, resp)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w", r.method, r.path, ctxErr)
		}
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, r.method, r.path, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(r, resp)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %w", ErrTransport, err)
	}

	if out == nil || len(bytes.TrimSpace(respBytes)) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("unmarshal %s response: %w", r.endpoint, err)
	}

	return nil
}

func (c *Client) observe(endpoint string, start time.Time, resp *http.Response) {
	if c.metricsManager == nil {
		return
	}
	status := "transport_error"
	if resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	c.metricsManager.CounterAPIRequests.WithLabelValues(endpoint, status).Inc()
	c.metricsManager.HistAPIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

func newAPIError(r request, resp *http.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Method:     r.method,
		Path:       r.path,
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return apiErr
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		switch {
		case payload.Message != "":
			apiErr.Message = payload.Message
		case payload.Error != "":
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(raw))
	return apiErr
}
