package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/blockfuselabs/CoinHawk/internal/core/domain"
)

// Placeholders rendered when a coin record is missing a field. The prompt must
// state that data is absent rather than omitting the line, so the summarizer
// can call the gap out.
const (
	noDescription = "No description provided."
	unknownValue  = "Unknown"
	notAvailable  = "N/A"
)

// createdAtLayout matches how the dashboard renders creation dates.
const createdAtLayout = "Mon Jan 02 2006"

// BuildCoinPrompt renders one coin into the structured text block handed to
// the summarizer, and the artifact stored in the summary cache. Deterministic,
// no I/O, never fails: missing fields become placeholder text.
func BuildCoinPrompt(coin *domain.Coin) string {
	desc := strings.TrimSpace(coin.Description)
	if desc == "" {
		desc = noDescription
	}

	price := unknownValue
	if coin.TokenPrice != nil && coin.TokenPrice.PriceInUsdc != "" {
		price = coin.TokenPrice.PriceInUsdc
	}

	creator := coin.CreatorAddress
	if coin.CreatorProfile != nil && coin.CreatorProfile.Handle != "" {
		creator = coin.CreatorProfile.Handle
	}

	earnings := notAvailable
	if len(coin.CreatorEarnings) > 0 && coin.CreatorEarnings[0].AmountUsd != "" {
		earnings = coin.CreatorEarnings[0].AmountUsd
	}

	poolName := "unknown"
	if coin.PoolCurrencyToken.Name != "" {
		poolName = coin.PoolCurrencyToken.Name
	}

	hasMedia := "No"
	if coin.MediaContent != nil && coin.MediaContent.OriginalUri != "" {
		hasMedia = "Yes"
	}

	var sb strings.Builder
	sb.WriteString("TOKEN DETAILS:\n")
	fmt.Fprintf(&sb, "- Name: %s\n", coin.Name)
	fmt.Fprintf(&sb, "- Symbol: %s\n", coin.Symbol)
	fmt.Fprintf(&sb, "- Description: %s\n", desc)
	fmt.Fprintf(&sb, "- Total Supply: %s\n", coin.TotalSupply)
	fmt.Fprintf(&sb, "- Token Price (in USDC): %s\n", price)
	fmt.Fprintf(&sb, "- Market Cap: $%s\n", coin.MarketCap)
	fmt.Fprintf(&sb, "- 24h Volume: %s\n", coin.Volume24h)
	fmt.Fprintf(&sb, "- Created On: %s\n", readableDate(coin.CreatedAt))
	fmt.Fprintf(&sb, "- Chain ID: %d (%s)\n", coin.ChainID, chainName(coin.ChainID))
	fmt.Fprintf(&sb, "- Unique Holders: %d\n", coin.UniqueHolders)
	fmt.Fprintf(&sb, "- Creator: %s\n", creator)
	fmt.Fprintf(&sb, "- Creator Earnings: $%s\n", earnings)
	fmt.Fprintf(&sb, "- Pool Pair: %s / %s\n", coin.Symbol, poolName)
	fmt.Fprintf(&sb, "- Token URI: %s\n", coin.TokenURI)
	fmt.Fprintf(&sb, "- Has Media Content: %s\n", hasMedia)
	return sb.String()
}

func readableDate(createdAt string) string {
	if createdAt == "" {
		return unknownValue
	}
	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		// Keep the raw value rather than dropping the line.
		return createdAt
	}
	return ts.Format(createdAtLayout)
}

func chainName(chainID int) string {
	switch chainID {
	case 1:
		return "Ethereum"
	case 8453:
		return "Base"
	case 137:
		return "Polygon"
	default:
		return "Unknown Chain"
	}
}
