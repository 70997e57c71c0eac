package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cambiolabs/cotacao-api/internal/apperrors"
	"github.com/cambiolabs/cotacao-api/internal/core/ports"
	"github.com/cambiolabs/cotacao-api/internal/dto"
)

// Client fetches exchange rates from a Frankfurter-compatible service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ ports.QuoteFetcher = (*Client)(nil)

// NewClient creates a Client for the given service base URL,
// e.g. https://api.frankfurter.dev/v1.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// FetchLatest requests the latest rate for the base/symbol pair.
// Any network failure, non-2xx status or unparsable body is reported as
// apperrors.ErrUpstreamUnavailable; no error escapes unclassified.
func (c *Client) FetchLatest(ctx context.Context, base, symbol string) (*dto.FetchedQuote, error) {
	url := fmt.Sprintf("%s/latest?base=%s&symbols=%s", c.baseURL, base, symbol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %s", apperrors.ErrUpstreamUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Frankfurter request failed", slog.String("url", url), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("Frankfurter returned non-success status", slog.String("url", url), slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: unexpected status %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var quote dto.FetchedQuote
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		c.logger.Error("Failed to decode Frankfurter response", slog.String("url", url), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: decoding response: %s", apperrors.ErrUpstreamUnavailable, err)
	}

	return &quote, nil
}
