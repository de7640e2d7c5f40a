package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"jobsweep/internal/config"
	"jobsweep/internal/logging"
	"jobsweep/internal/logging/types"
	"jobsweep/pkg/utils"
)

// Client is the HTTP client shared by all adapters: one bounded upstream
// timeout, per-source rate limiting and defensive JSON decoding.
type Client struct {
	http    *http.Client
	limiter *RateLimiter
	logger  types.Logger
}

// NewClient creates a client with the configured upstream timeout.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Search.UpstreamTimeout},
		limiter: NewRateLimiter(cfg.Search.RateLimit),
		logger:  logging.GetGlobalLogger(),
	}
}

// GetJSON fetches url and decodes the response body into out. A non-2xx
// status or an unparsable body comes back as an error carrying the status
// and a truncated detail, never the full upstream body.
func (c *Client) GetJSON(ctx context.Context, source, url string, headers map[string]string, out interface{}) error {
	if err := c.limiter.Wait(ctx, source); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		if strings.EqualFold(k, "Host") {
			req.Host = v
			continue
		}
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Upstream returned error status", map[string]interface{}{
			"source": source,
			"status": resp.StatusCode,
			"body":   utils.Truncate(string(body), 200),
		})
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	if len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("invalid JSON from upstream: %s", utils.Truncate(err.Error(), 200))
	}

	return nil
}
