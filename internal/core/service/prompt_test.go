package service

import (
	"strings"
	"testing"

	"github.com/blockfuselabs/CoinHawk/internal/core/domain"
)

func fullCoin() *domain.Coin {
	return &domain.Coin{
		Name:        "Hawk Coin",
		Symbol:      "HAWK",
		Description: "A coin for hawks.",
		Address:     "0xabc",
		TotalSupply: "1000000000",
		Volume24h:   "54321.99",
		CreatedAt:   "2025-07-04T12:30:00Z",
		MarketCap:   "123456.78",
		ChainID:     8453,
		TokenURI:    "ipfs://hawk",
		CreatorAddress: "0xcreator",
		CreatorProfile: &domain.CreatorProfile{Handle: "hawkeye"},
		CreatorEarnings: []domain.CreatorEarning{
			{AmountUsd: "42.50"},
		},
		PoolCurrencyToken: domain.PoolCurrencyToken{Name: "ZORA"},
		TokenPrice:        &domain.TokenPrice{PriceInUsdc: "0.0012"},
		MediaContent:      &domain.MediaContent{OriginalUri: "ipfs://media"},
		UniqueHolders:     321,
	}
}

func TestBuildCoinPrompt_FullRecord(t *testing.T) {
	prompt := BuildCoinPrompt(fullCoin())

	wantLines := []string{
		"TOKEN DETAILS:",
		"- Name: Hawk Coin",
		"- Symbol: HAWK",
		"- Description: A coin for hawks.",
		"- Total Supply: 1000000000",
		"- Token Price (in USDC): 0.0012",
		"- Market Cap: $123456.78",
		"- 24h Volume: 54321.99",
		"- Created On: Fri Jul 04 2025",
		"- Chain ID: 8453 (Base)",
		"- Unique Holders: 321",
		"- Creator: hawkeye",
		"- Creator Earnings: $42.50",
		"- Pool Pair: HAWK / ZORA",
		"- Token URI: ipfs://hawk",
		"- Has Media Content: Yes",
	}
	for _, line := range wantLines {
		if !strings.Contains(prompt, line+"\n") {
			t.Errorf("prompt missing line %q\nprompt:\n%s", line, prompt)
		}
	}
}

func TestBuildCoinPrompt_MissingFieldsRenderPlaceholders(t *testing.T) {
	coin := &domain.Coin{
		Name:           "Bare",
		Symbol:         "BARE",
		CreatorAddress: "0xcreator",
		ChainID:        999,
	}

	prompt := BuildCoinPrompt(coin)

	wantLines := []string{
		"- Description: No description provided.",
		"- Token Price (in USDC): Unknown",
		"- Created On: Unknown",
		"- Chain ID: 999 (Unknown Chain)",
		"- Creator: 0xcreator",
		"- Creator Earnings: $N/A",
		"- Pool Pair: BARE / unknown",
		"- Has Media Content: No",
	}
	for _, line := range wantLines {
		if !strings.Contains(prompt, line+"\n") {
			t.Errorf("prompt missing line %q\nprompt:\n%s", line, prompt)
		}
	}
}

func TestBuildCoinPrompt_Deterministic(t *testing.T) {
	coin := fullCoin()
	if BuildCoinPrompt(coin) != BuildCoinPrompt(coin) {
		t.Error("prompt build must be deterministic")
	}
}

func TestBuildCoinPrompt_WhitespaceDescriptionTreatedAsMissing(t *testing.T) {
	coin := fullCoin()
	coin.Description = "   \n "

	if !strings.Contains(BuildCoinPrompt(coin), "- Description: No description provided.\n") {
		t.Error("whitespace-only description should render the placeholder")
	}
}

func TestChainName(t *testing.T) {
	tests := []struct {
		chainID int
		want    string
	}{
		{1, "Ethereum"},
		{8453, "Base"},
		{137, "Polygon"},
		{42161, "Unknown Chain"},
	}
	for _, tt := range tests {
		if got := chainName(tt.chainID); got != tt.want {
			t.Errorf("chainName(%d) = %q, want %q", tt.chainID, got, tt.want)
		}
	}
}
