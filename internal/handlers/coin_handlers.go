package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/blockfuselabs/CoinHawk/internal/core/domain"
	"github.com/blockfuselabs/CoinHawk/internal/core/service"
	"github.com/blockfuselabs/CoinHawk/pkg/cache"
)

const (
	defaultFeedCount = 10
	defaultPage      = 1
)

// CoinService is the aggregation surface the handlers depend on.
type CoinService interface {
	ListFeed(ctx context.Context, feed domain.Feed, count, page int, after string) (*domain.CoinPage, error)
	GetCoin(ctx context.Context, address string) (*domain.Coin, error)
}

// CoinHandler serves the /api/coins endpoints.
type CoinHandler struct {
	coins      CoinService
	summarizer domain.Summarizer
	summaries  cache.SummaryCache
	startedAt  time.Time
}

// NewCoinHandler creates a CoinHandler.
func NewCoinHandler(coins CoinService, summarizer domain.Summarizer, summaries cache.SummaryCache) *CoinHandler {
	return &CoinHandler{
		coins:      coins,
		summarizer: summarizer,
		summaries:  summaries,
		startedAt:  time.Now(),
	}
}

// RegisterRoutes mounts all coin endpoints on the router.
func (h *CoinHandler) RegisterRoutes(r gin.IRouter) {
	coins := r.Group("/api/coins")
	coins.GET("/new", h.ListNew)
	coins.GET("/gainers", h.ListTopGainers)
	coins.GET("/volume", h.ListTopVolume)
	coins.GET("/most-valuable", h.ListMostValuable)
	coins.GET("/summary", h.GetSummary)
	coins.GET("/:address", h.GetCoin)

	r.GET("/health", h.Health)
}

// ListNew serves the newest coins feed.
func (h *CoinHandler) ListNew(c *gin.Context) {
	h.listFeed(c, domain.FeedNew)
}

// ListTopGainers serves the top-gainers feed, filtered to coins attributed to
// the configured platform-reference address.
func (h *CoinHandler) ListTopGainers(c *gin.Context) {
	h.listFeed(c, domain.FeedTopGainers)
}

// ListTopVolume serves the 24h volume leaders feed.
func (h *CoinHandler) ListTopVolume(c *gin.Context) {
	h.listFeed(c, domain.FeedTopVolume)
}

// ListMostValuable serves the market-cap leaders feed.
func (h *CoinHandler) ListMostValuable(c *gin.Context) {
	h.listFeed(c, domain.FeedMostValuable)
}

func (h *CoinHandler) listFeed(c *gin.Context, feed domain.Feed) {
	count := queryInt(c, "count", defaultFeedCount)
	page := queryInt(c, "page", defaultPage)
	after := c.Query("after")

	result, err := h.coins.ListFeed(c.Request.Context(), feed, count, page, after)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to fetch coins.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Coins,
		"pagination": Pagination{
			Page:            result.Page,
			Count:           result.Count,
			Total:           result.Total,
			HasNextPage:     result.HasNextPage,
			HasPreviousPage: result.HasPreviousPage,
			Cursor:          result.Cursor,
		},
	})
}

// GetCoin serves one coin's detail record.
func (h *CoinHandler) GetCoin(c *gin.Context) {
	address := c.Param("address")
	if !common.IsHexAddress(address) {
		sendError(c, http.StatusBadRequest, "Invalid coin address.", nil)
		return
	}

	coin, err := h.coins.GetCoin(c.Request.Context(), address)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			sendError(c, http.StatusNotFound, "Coin not found.", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to fetch coin.", err)
		return
	}

	sendData(c, http.StatusOK, coin)
}

// GetSummary serves an AI-generated summary for one coin. The structured
// prompt is read through the summary cache; only the prose derivation hits
// the AI provider on every call.
func (h *CoinHandler) GetSummary(c *gin.Context) {
	address := c.Query("coinAddress")
	if address == "" {
		sendError(c, http.StatusBadRequest, "coinAddress query parameter is required.", nil)
		return
	}

	ctx := c.Request.Context()
	key := strings.ToLower(address)

	prompt, ok := h.summaries.Get(ctx, key)
	if !ok {
		coin, err := h.coins.GetCoin(ctx, address)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				sendError(c, http.StatusNotFound, "Coin not found.", err)
				return
			}
			sendError(c, http.StatusInternalServerError, "Failed to fetch coin.", err)
			return
		}
		prompt = service.BuildCoinPrompt(coin)
		if err := h.summaries.Set(ctx, key, prompt); err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to cache coin summary.", err)
			return
		}
	}

	summary, err := h.summarizer.Summarize(ctx, prompt)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to generate coin summary.", err)
		return
	}

	sendData(c, http.StatusOK, summary)
}

// Health reports liveness and uptime.
func (h *CoinHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.startedAt).Round(time.Second).String(),
	})
}
