package zora

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/blockfuselabs/CoinHawk/internal/core/domain"
)

const (
	defaultBaseURL = "https://api-sdk.zora.engineering"
	defaultTimeout = 15 * time.Second
)

// Client talks to the Zora coins REST API. It implements domain.CoinProvider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithTimeout overrides the upstream call timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// NewClient creates a Zora API client. The API key is optional; without one
// requests run against the public rate limit.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ExploreFeed fetches one page of a named explore listing.
func (c *Client) ExploreFeed(ctx context.Context, feed domain.Feed, count int, after string) (*domain.RawCoinPage, error) {
	query := url.Values{}
	query.Set("listType", string(feed))
	query.Set("count", strconv.Itoa(count))
	if after != "" {
		query.Set("after", after)
	}

	var payload exploreResponse
	if err := c.getJSON(ctx, "/explore", query, &payload); err != nil {
		return nil, fmt.Errorf("explore list %s: %w", feed, err)
	}

	coins := make([]domain.Coin, len(payload.ExploreList.Edges))
	for i, edge := range payload.ExploreList.Edges {
		coins[i] = edge.Node
	}

	return &domain.RawCoinPage{
		Coins:       coins,
		HasNextPage: payload.ExploreList.PageInfo.HasNextPage,
		Cursor:      payload.ExploreList.PageInfo.EndCursor,
	}, nil
}

// GetCoin fetches the full record for one coin address on Base.
func (c *Client) GetCoin(ctx context.Context, address string) (*domain.Coin, error) {
	query := url.Values{}
	query.Set("address", strings.ToLower(address))
	query.Set("chain", strconv.Itoa(domain.BaseChainID))

	var payload coinResponse
	if err := c.getJSON(ctx, "/coin", query, &payload); err != nil {
		return nil, fmt.Errorf("get coin %s: %w", address, err)
	}
	if payload.Zora20Token == nil {
		return nil, domain.ErrNotFound
	}
	return payload.Zora20Token, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("zora api returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
