package zora

import "github.com/blockfuselabs/CoinHawk/internal/core/domain"

// Wire shapes for the Zora coins REST API. Field names follow the upstream
// GraphQL schema, which is why they match the domain model closely enough to
// reuse domain.Coin as the node payload.

type exploreEdge struct {
	Node   domain.Coin `json:"node"`
	Cursor string      `json:"cursor"`
}

type pageInfo struct {
	EndCursor   string `json:"endCursor"`
	HasNextPage bool   `json:"hasNextPage"`
}

type exploreList struct {
	Edges    []exploreEdge `json:"edges"`
	PageInfo pageInfo      `json:"pageInfo"`
}

type exploreResponse struct {
	ExploreList exploreList `json:"exploreList"`
}

type coinResponse struct {
	Zora20Token *domain.Coin `json:"zora20Token"`
}
