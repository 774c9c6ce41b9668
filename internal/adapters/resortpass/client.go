// internal/adapters/resortpass/client.go
package resortpass

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"daypass/internal/adapters/observability"
	"daypass/internal/domain"
)

const maxAttempts = 4

type Client struct {
	hc *http.Client
	rl *rate.Limiter
}

func New(rps int) *Client {
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		hc: &http.Client{Timeout: 20 * time.Second},
		rl: rate.NewLimiter(rate.Limit(rps), rps),
	}
}

var (
	ErrNotFound     = fmt.Errorf("resortpass: %w", domain.ErrNotFound)
	ErrUnauthorized = errors.New("resortpass: unauthorized")
	ErrForbidden    = errors.New("resortpass: forbidden")
)

// GetStages downloads one search feed: a JSON array of result stages.
func (c *Client) GetStages(ctx context.Context, url string) ([]map[string]any, error) {
	var out []map[string]any
	start := time.Now()
	status, err := c.get(ctx, url, &out)
	observability.ObserveExternal("resortpass", "feed", status, time.Since(start))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// get performs a GET with client-side rate limiting, retries, and JSON decode into out.
// Retries on 429 and transient 5xx, honoring Retry-After when provided.
// The returned status is the last one seen, 0 when no response arrived.
func (c *Client) get(ctx context.Context, url string, out any) (int, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return 0, err
	}

	var (
		lastErr    error
		lastStatus int
	)
	for i := 0; i < maxAttempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return 0, err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "daypass/1.0")

		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return 0, ctx.Err()
			}
			lastErr = err
			if i < maxAttempts-1 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return 0, ctx.Err()
			}
			return 0, lastErr
		}
		lastStatus = resp.StatusCode

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			if err != nil {
				return resp.StatusCode, fmt.Errorf("decode feed: %w", err)
			}
			return resp.StatusCode, nil

		case http.StatusNotFound:
			resp.Body.Close()
			return resp.StatusCode, ErrNotFound

		case http.StatusUnauthorized:
			resp.Body.Close()
			return resp.StatusCode, ErrUnauthorized

		case http.StatusForbidden:
			resp.Body.Close()
			return resp.StatusCode, ErrForbidden

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < maxAttempts-1 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return resp.StatusCode, ctx.Err()
			}
			return resp.StatusCode, lastErr

		default:
			// small error body for diagnostics
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return resp.StatusCode, fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	return lastStatus, lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). 0 if absent or invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff doubles from 200ms per attempt with up to +50% jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	return base + time.Duration(0.5*f*float64(base))
}
