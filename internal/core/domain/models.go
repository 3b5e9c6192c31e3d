package domain

// Feed identifies one of the upstream explore listings.
type Feed string

const (
	FeedNew          Feed = "NEW"
	FeedTopGainers   Feed = "TOP_GAINERS"
	FeedTopVolume    Feed = "TOP_VOLUME_24H"
	FeedMostValuable Feed = "MOST_VALUABLE"
)

// BaseChainID is the chain all tracked coins are minted on.
const BaseChainID = 8453

// TokenPrice holds the price of a coin in its reference currencies.
// PriceInUsdc is empty when the upstream has no USDC quote for the coin.
type TokenPrice struct {
	PriceInUsdc      string `json:"priceInUsdc,omitempty"`
	CurrencyAddress  string `json:"currencyAddress"`
	PriceInPoolToken string `json:"priceInPoolToken"`
}

// PoolCurrencyToken describes the token the coin's liquidity pool is paired with.
type PoolCurrencyToken struct {
	Address  string `json:"address"`
	Name     string `json:"name"`
	Decimals int    `json:"decimals"`
}

// EarningAmount is a raw creator earning in a specific currency.
type EarningAmount struct {
	CurrencyAddress string  `json:"currencyAddress"`
	AmountRaw       string  `json:"amountRaw"`
	AmountDecimal   float64 `json:"amountDecimal"`
}

// CreatorEarning is one entry of a creator's accumulated earnings.
type CreatorEarning struct {
	Amount    EarningAmount `json:"amount"`
	AmountUsd string        `json:"amountUsd"`
}

// PreviewImage holds the resized variants of a media asset.
type PreviewImage struct {
	Small    string `json:"small,omitempty"`
	Medium   string `json:"medium,omitempty"`
	Blurhash string `json:"blurhash,omitempty"`
}

// MediaContent describes the media attached to a coin, if any.
type MediaContent struct {
	MimeType     string        `json:"mimeType,omitempty"`
	OriginalUri  string        `json:"originalUri,omitempty"`
	PreviewImage *PreviewImage `json:"previewImage,omitempty"`
}

// CreatorAvatar wraps the preview image of a creator profile avatar.
type CreatorAvatar struct {
	PreviewImage PreviewImage `json:"previewImage"`
}

// CreatorProfile is the platform profile of a coin's creator.
type CreatorProfile struct {
	ID     string         `json:"id,omitempty"`
	Handle string         `json:"handle,omitempty"`
	Avatar *CreatorAvatar `json:"avatar,omitempty"`
}

// UniswapV4PoolKey identifies the coin's Uniswap v4 pool.
type UniswapV4PoolKey struct {
	Token0Address string `json:"token0Address"`
	Token1Address string `json:"token1Address"`
	Fee           int    `json:"fee"`
	TickSpacing   int    `json:"tickSpacing"`
	HookAddress   string `json:"hookAddress"`
}

// Coin is the canonical enriched representation of one minted token.
// Built fresh on every detail fetch and never mutated afterwards.
type Coin struct {
	ID                      string            `json:"id,omitempty"`
	Name                    string            `json:"name"`
	Symbol                  string            `json:"symbol"`
	Description             string            `json:"description,omitempty"`
	Address                 string            `json:"address"`
	TotalSupply             string            `json:"totalSupply"`
	TotalVolume             string            `json:"totalVolume,omitempty"`
	Volume24h               string            `json:"volume24h"`
	CreatedAt               string            `json:"createdAt"`
	CreatorAddress          string            `json:"creatorAddress"`
	CreatorEarnings         []CreatorEarning  `json:"creatorEarnings,omitempty"`
	CreatorProfile          *CreatorProfile   `json:"creatorProfile,omitempty"`
	PoolCurrencyToken       PoolCurrencyToken `json:"poolCurrencyToken"`
	TokenPrice              *TokenPrice       `json:"tokenPrice,omitempty"`
	MarketCap               string            `json:"marketCap"`
	MarketCapDelta24h       string            `json:"marketCapDelta24h,omitempty"`
	ChainID                 int               `json:"chainId"`
	TokenURI                string            `json:"tokenUri"`
	PlatformReferrerAddress string            `json:"platformReferrerAddress,omitempty"`
	PayoutRecipientAddress  string            `json:"payoutRecipientAddress,omitempty"`
	MediaContent            *MediaContent     `json:"mediaContent,omitempty"`
	UniqueHolders           int               `json:"uniqueHolders"`
	UniswapV4PoolKey        *UniswapV4PoolKey `json:"uniswapV4PoolKey,omitempty"`

	// IsFromBaseApp reports whether the coin's creation was attributed to the
	// first-party client, derived from the platform referrer address.
	IsFromBaseApp bool `json:"isFromBaseApp"`

	// PercentChange is the derived 24h market-cap change, populated only for
	// the most-valuable feed.
	PercentChange string `json:"percentChange,omitempty"`
}

// CoinPage is one enriched page of a feed, in upstream order.
type CoinPage struct {
	Coins           []Coin `json:"coins"`
	Page            int    `json:"page"`
	Count           int    `json:"count"`
	Total           int    `json:"total"`
	HasNextPage     bool   `json:"hasNextPage"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
	Cursor          string `json:"cursor,omitempty"`
}

// RawCoinPage is one page of feed entries as returned by the upstream
// provider, before per-coin detail enrichment.
type RawCoinPage struct {
	Coins       []Coin
	HasNextPage bool
	Cursor      string
}
