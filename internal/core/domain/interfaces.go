package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the upstream has no record for an address.
var ErrNotFound = errors.New("coin not found")

// CoinProvider defines the operations required from the upstream token-data API.
type CoinProvider interface {
	// ExploreFeed fetches one page of a named explore listing. The cursor is
	// opaque; an empty cursor starts from the beginning of the feed.
	ExploreFeed(ctx context.Context, feed Feed, count int, after string) (*RawCoinPage, error)

	// GetCoin fetches the full detail record for one coin address.
	// Returns ErrNotFound when the provider has no record for the address.
	GetCoin(ctx context.Context, address string) (*Coin, error)
}

// Summarizer defines how natural-language output is derived from coin data.
type Summarizer interface {
	// Summarize turns a structured coin prompt into a short prose summary.
	Summarize(ctx context.Context, prompt string) (string, error)

	// Answer answers a user question strictly from previously derived
	// summary material.
	Answer(ctx context.Context, summary, question string) (string, error)
}
