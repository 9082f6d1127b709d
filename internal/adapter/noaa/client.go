// Package noaa fetches plain-text bulletins from the NWS TGFTP repository.
package noaa

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/metar/internal/domain"
	"github.com/couchcryptid/metar/internal/observability"
)

// Client implements domain.Fetcher over HTTP. One Client is shared across
// all stations and bulletin kinds in a run; the underlying http.Client
// handles redirects and enforces the per-request timeout.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *observability.Metrics
	clock      clockwork.Clock
}

// NewClient creates a TGFTP repository client with the given per-request
// timeout.
func NewClient(timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: metrics,
		clock:   clockwork.NewRealClock(),
	}
}

// Fetch issues one GET against url and streams the response body to dst
// exactly as received. A 404 maps to domain.ErrNotFound; any other non-2xx
// status or transport condition is returned as an error. No retry is
// attempted.
func (c *Client) Fetch(ctx context.Context, url string, dst io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	start := c.clock.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch bulletin: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("repository returned status %d", resp.StatusCode)
	}

	n, err := io.Copy(dst, resp.Body)
	c.metrics.BytesStreamed.Add(float64(n))
	c.metrics.FetchDuration.Observe(c.clock.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("stream bulletin body: %w", err)
	}

	c.logger.Debug("bulletin fetched",
		"url", url,
		"bytes", n,
		"duration", c.clock.Since(start),
	)
	return nil
}
