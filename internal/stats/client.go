// Package stats provides the client for the remote statistics service
// that answers the catalog's query-type answers. The service is treated
// as an unreliable external collaborator: calls may fail or be slow, and
// every failure is mapped onto a small sentinel error taxonomy so the
// dialog layer can recover per-answer.
package stats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client answers a numbered statistics query with a display string.
type Client interface {
	// Query sends the query identifier and returns the answer text.
	Query(ctx context.Context, id string) (string, error)

	// Available checks whether the stats service is reachable.
	Available(ctx context.Context) bool
}

// httpClient implements Client against the statsd HTTP protocol:
// GET <endpoint>/?question=<id>, success is a 200 with a plain-text body.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPClient creates a Client that talks to a statsd instance.
func NewHTTPClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *httpClient) Query(ctx context.Context, id string) (string, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		text, err := c.doRequest(ctx, id)
		if err == nil {
			c.observer.OnQueryComplete(QueryEvent{
				QueryID:   id,
				LatencyMs: time.Since(start).Milliseconds(),
				Success:   true,
			})
			return text, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout.
		if ctx.Err() != nil {
			break
		}
	}

	err := mapError(ctx, lastErr)
	c.observer.OnQueryComplete(QueryEvent{
		QueryID:   id,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(err),
	})
	return "", err
}

func (c *httpClient) doRequest(ctx context.Context, id string) (string, error) {
	u := c.cfg.Endpoint + "/?question=" + url.QueryEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d: %s", ErrBadStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return strings.TrimSpace(string(body)), nil
}

func (c *httpClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/healthz", nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func mapError(ctx context.Context, lastErr error) error {
	if ctx.Err() != nil {
		return ErrTimeout
	}
	if isConnectionError(lastErr) {
		return ErrUnavailable
	}
	if errors.Is(lastErr, ErrBadStatus) {
		return lastErr
	}
	return fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrBadStatus):
		return "BAD_STATUS"
	default:
		return "UNKNOWN"
	}
}
