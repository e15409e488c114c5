package heart

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"heartline/app/config"

	"github.com/samber/do"
)

// Client fetches the exported heart snapshot. Every fetch bypasses caches and
// there is no retry: a failed fetch is a failed turn.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Heart.TimeoutSeconds) * time.Second,
		},
	}, nil
}

func (c *Client) Fetch(ctx context.Context) (*Snapshot, error) {
	endpoint, err := url.Parse(c.cfg.Heart.EndpointURL)
	if err != nil {
		return nil, fmt.Errorf("invalid heart endpoint: %w", err)
	}

	query := endpoint.Query()
	query.Set("t", strconv.FormatInt(time.Now().UnixMilli(), 10))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch heart snapshot: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("heart snapshot fetch failed: status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read heart snapshot: %w", err)
	}

	var snapshot Snapshot
	if err = json.Unmarshal(body, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse heart snapshot: %w", err)
	}

	return &snapshot, nil
}
