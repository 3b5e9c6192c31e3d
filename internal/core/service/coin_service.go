package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/blockfuselabs/CoinHawk/internal/core/domain"
)

// ErrEmptyAddress is returned when a lookup is attempted without an address.
var ErrEmptyAddress = errors.New("coin address is required")

const (
	minPageSize = 1
	maxPageSize = 100

	// enrichConcurrency bounds the per-page detail fan-out.
	enrichConcurrency = 10
)

// CoinService aggregates feed pages from the upstream provider and enriches
// every entry with its full detail record.
type CoinService struct {
	provider domain.CoinProvider

	// baseAppReferrer is the configured platform-reference address,
	// lower-cased once at construction. Empty when not configured.
	baseAppReferrer string

	log *zap.Logger
}

// NewCoinService creates a CoinService. baseAppReferrer may be empty; the
// top-gainers filter then yields empty results.
func NewCoinService(provider domain.CoinProvider, baseAppReferrer string, log *zap.Logger) *CoinService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CoinService{
		provider:        provider,
		baseAppReferrer: strings.ToLower(baseAppReferrer),
		log:             log,
	}
}

// GetCoin resolves one coin address to its full detail record and derives the
// platform-origin flag. Provider failures propagate unchanged; there are no
// retries at this layer.
func (s *CoinService) GetCoin(ctx context.Context, address string) (*domain.Coin, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrEmptyAddress
	}

	coin, err := s.provider.GetCoin(ctx, strings.ToLower(address))
	if err != nil {
		return nil, err
	}

	coin.IsFromBaseApp = s.isFromBaseApp(coin.PlatformReferrerAddress)
	return coin, nil
}

// ListFeed fetches one page of the named feed and enriches every entry
// concurrently. Enrichment preserves upstream order and fails the whole page
// when any single detail lookup fails; partial pages are never returned.
func (s *CoinService) ListFeed(ctx context.Context, feed domain.Feed, count, page int, after string) (*domain.CoinPage, error) {
	count = clampCount(count)
	if page < 1 {
		page = 1
	}

	raw, err := s.provider.ExploreFeed(ctx, feed, count, after)
	if err != nil {
		return nil, fmt.Errorf("explore %s: %w", feed, err)
	}

	enriched := make([]domain.Coin, len(raw.Coins))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i, entry := range raw.Coins {
		g.Go(func() error {
			detail, err := s.GetCoin(gctx, entry.Address)
			if err != nil {
				return fmt.Errorf("enrich %s: %w", entry.Address, err)
			}
			enriched[i] = *detail
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	switch feed {
	case domain.FeedTopGainers:
		// Only coins attributed to the platform-reference address survive.
		// With no reference address configured this is always empty.
		filtered := make([]domain.Coin, 0, len(enriched))
		for _, coin := range enriched {
			if coin.IsFromBaseApp {
				filtered = append(filtered, coin)
			}
		}
		enriched = filtered
	case domain.FeedMostValuable:
		for i := range enriched {
			enriched[i].PercentChange = percentChange(enriched[i].MarketCap, enriched[i].MarketCapDelta24h)
		}
	}

	s.log.Debug("feed page assembled",
		zap.String("feed", string(feed)),
		zap.Int("count", count),
		zap.Int("coins", len(enriched)),
	)

	return &domain.CoinPage{
		Coins:           enriched,
		Page:            page,
		Count:           count,
		Total:           len(enriched),
		HasNextPage:     raw.HasNextPage,
		HasPreviousPage: page > 1,
		Cursor:          raw.Cursor,
	}, nil
}

func (s *CoinService) isFromBaseApp(referrer string) bool {
	if s.baseAppReferrer == "" || referrer == "" {
		return false
	}
	return strings.ToLower(referrer) == s.baseAppReferrer
}

func clampCount(count int) int {
	if count < minPageSize {
		return minPageSize
	}
	if count > maxPageSize {
		return maxPageSize
	}
	return count
}

// percentChange derives a 24h market-cap change from the current cap and its
// 24h delta. Returns empty when either value is non-numeric or the prior-period
// cap is not positive.
func percentChange(marketCap, delta24h string) string {
	cap64, err := strconv.ParseFloat(marketCap, 64)
	if err != nil {
		return ""
	}
	delta, err := strconv.ParseFloat(delta24h, 64)
	if err != nil {
		return ""
	}
	prev := cap64 - delta
	if prev <= 0 {
		return ""
	}
	return fmt.Sprintf("%+.2f%%", delta/prev*100)
}
