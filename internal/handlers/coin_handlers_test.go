package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockfuselabs/CoinHawk/internal/core/domain"
	"github.com/blockfuselabs/CoinHawk/pkg/cache"
)

const validAddress = "0x742d35Cc6634C0532925a3b844Bc9e7595f2b21D"

type fakeCoinService struct {
	page    *domain.CoinPage
	pageErr error

	coin    *domain.Coin
	coinErr error

	listCalls   int
	detailCalls int
	gotFeed     domain.Feed
	gotCount    int
	gotPage     int
}

func (f *fakeCoinService) ListFeed(_ context.Context, feed domain.Feed, count, page int, _ string) (*domain.CoinPage, error) {
	f.listCalls++
	f.gotFeed = feed
	f.gotCount = count
	f.gotPage = page
	return f.page, f.pageErr
}

func (f *fakeCoinService) GetCoin(_ context.Context, _ string) (*domain.Coin, error) {
	f.detailCalls++
	return f.coin, f.coinErr
}

type fakeSummarizer struct {
	summary    string
	summaryErr error
	calls      int
	gotPrompt  string
}

func (f *fakeSummarizer) Summarize(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.gotPrompt = prompt
	return f.summary, f.summaryErr
}

func (f *fakeSummarizer) Answer(_ context.Context, _, _ string) (string, error) {
	return "", errors.New("not used in these tests")
}

func newTestRouter(t *testing.T, svc CoinService, summarizer domain.Summarizer) (*gin.Engine, *cache.MemoryCache) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	summaries := cache.NewMemoryCache(0)
	t.Cleanup(func() { summaries.Close() })

	router := gin.New()
	NewCoinHandler(svc, summarizer, summaries).RegisterRoutes(router)
	return router, summaries
}

func doRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestListNew_HappyPath(t *testing.T) {
	svc := &fakeCoinService{
		page: &domain.CoinPage{
			Coins:       []domain.Coin{{Address: "0xaaa"}, {Address: "0xbbb"}},
			Page:        1,
			Count:       2,
			Total:       2,
			HasNextPage: true,
			Cursor:      "next",
		},
	}
	router, _ := newTestRouter(t, svc, &fakeSummarizer{})

	w := doRequest(router, "/api/coins/new?count=2&page=1")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.FeedNew, svc.gotFeed)
	assert.Equal(t, 2, svc.gotCount)

	var body struct {
		Success    bool          `json:"success"`
		Data       []domain.Coin `json:"data"`
		Pagination Pagination    `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data, 2)
	assert.True(t, body.Pagination.HasNextPage)
	assert.Equal(t, "next", body.Pagination.Cursor)
}

func TestListFeeds_RouteToFeed(t *testing.T) {
	tests := []struct {
		path string
		feed domain.Feed
	}{
		{"/api/coins/new", domain.FeedNew},
		{"/api/coins/gainers", domain.FeedTopGainers},
		{"/api/coins/volume", domain.FeedTopVolume},
		{"/api/coins/most-valuable", domain.FeedMostValuable},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			svc := &fakeCoinService{page: &domain.CoinPage{Page: 1, Count: 10}}
			router, _ := newTestRouter(t, svc, &fakeSummarizer{})

			w := doRequest(router, tt.path)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.feed, svc.gotFeed)
			assert.Equal(t, defaultFeedCount, svc.gotCount)
			assert.Equal(t, defaultPage, svc.gotPage)
		})
	}
}

func TestListNew_UpstreamFailure(t *testing.T) {
	svc := &fakeCoinService{pageErr: errors.New("upstream down")}
	router, _ := newTestRouter(t, svc, &fakeSummarizer{})

	w := doRequest(router, "/api/coins/new")

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Failed to fetch coins.", body.Message)
}

func TestGetCoin_InvalidAddress(t *testing.T) {
	svc := &fakeCoinService{}
	router, _ := newTestRouter(t, svc, &fakeSummarizer{})

	w := doRequest(router, "/api/coins/not-an-address")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.detailCalls, "no provider call before validation passes")
}

func TestGetCoin_NotFound(t *testing.T) {
	svc := &fakeCoinService{coinErr: domain.ErrNotFound}
	router, _ := newTestRouter(t, svc, &fakeSummarizer{})

	w := doRequest(router, "/api/coins/"+validAddress)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCoin_HappyPath(t *testing.T) {
	svc := &fakeCoinService{coin: &domain.Coin{Address: validAddress, Name: "Hawk", IsFromBaseApp: true}}
	router, _ := newTestRouter(t, svc, &fakeSummarizer{})

	w := doRequest(router, "/api/coins/"+validAddress)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool        `json:"success"`
		Data    domain.Coin `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Hawk", body.Data.Name)
	assert.True(t, body.Data.IsFromBaseApp)
}

func TestGetSummary_MissingParam(t *testing.T) {
	svc := &fakeCoinService{}
	summarizer := &fakeSummarizer{}
	router, _ := newTestRouter(t, svc, summarizer)

	w := doRequest(router, "/api/coins/summary")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.detailCalls)
	assert.Zero(t, summarizer.calls)
}

func TestGetSummary_ReadThroughCachesPrompt(t *testing.T) {
	svc := &fakeCoinService{coin: &domain.Coin{Address: "0xabc", Name: "Hawk", Symbol: "HWK"}}
	summarizer := &fakeSummarizer{summary: "Sounds fine."}
	router, summaries := newTestRouter(t, svc, summarizer)

	w := doRequest(router, "/api/coins/summary?coinAddress=0xABC")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.detailCalls)

	// Cache key is the lower-cased address; the cached artifact is the
	// structured prompt, not the AI prose.
	cached, ok := summaries.Get(context.Background(), "0xabc")
	require.True(t, ok)
	assert.Contains(t, cached, "TOKEN DETAILS:")
	assert.Contains(t, cached, "- Name: Hawk")
	assert.NotContains(t, cached, "Sounds fine.")

	// Second request within the TTL: served from cache, no second fetch,
	// but the AI derivation still runs.
	w = doRequest(router, "/api/coins/summary?coinAddress=0xabc")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.detailCalls)
	assert.Equal(t, 2, summarizer.calls)
}

func TestGetSummary_NotFound(t *testing.T) {
	svc := &fakeCoinService{coinErr: domain.ErrNotFound}
	router, _ := newTestRouter(t, svc, &fakeSummarizer{})

	w := doRequest(router, "/api/coins/summary?coinAddress=0xmissing")

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSummary_ProviderFailure(t *testing.T) {
	svc := &fakeCoinService{coin: &domain.Coin{Address: "0xabc"}}
	summarizer := &fakeSummarizer{summaryErr: errors.New("rate limited")}
	router, _ := newTestRouter(t, svc, summarizer)

	w := doRequest(router, "/api/coins/summary?coinAddress=0xabc")

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t, &fakeCoinService{}, &fakeSummarizer{})

	w := doRequest(router, "/health")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
