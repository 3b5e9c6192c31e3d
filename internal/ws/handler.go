// Package ws carries the chat side of the API: a WebSocket endpoint that
// answers questions about a coin from its cached summary prompt.
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/blockfuselabs/CoinHawk/internal/core/domain"
	"github.com/blockfuselabs/CoinHawk/internal/core/service"
	"github.com/blockfuselabs/CoinHawk/internal/logger"
	"github.com/blockfuselabs/CoinHawk/pkg/cache"
)

const answerTimeout = 60 * time.Second

// CoinFetcher resolves one coin address to its detail record.
type CoinFetcher interface {
	GetCoin(ctx context.Context, address string) (*domain.Coin, error)
}

// ChatMessage is an inbound chat frame.
type ChatMessage struct {
	TokenAddress string `json:"tokenAddress"`
	UserMessage  string `json:"userMessage"`
}

// ChatReply is an outbound chat frame. Echo carries the AI answer on
// success; Error carries the rejection reason otherwise.
type ChatReply struct {
	Success bool   `json:"success"`
	Echo    string `json:"echo,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ChatHandler upgrades HTTP requests to WebSocket sessions and serves chat
// messages until the client disconnects. Every rejection is a frame, never a
// close: one bad message must not cost the client its session.
type ChatHandler struct {
	coins      CoinFetcher
	summarizer domain.Summarizer
	summaries  cache.SummaryCache
	upgrader   websocket.Upgrader
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(coins CoinFetcher, summarizer domain.Summarizer, summaries cache.SummaryCache) *ChatHandler {
	return &ChatHandler{
		coins:      coins,
		summarizer: summarizer,
		summaries:  summaries,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and runs the session read loop.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	logger.Log.Info("websocket client connected", zap.String("remote", conn.RemoteAddr().String()))

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			logger.Log.Info("websocket client disconnected", zap.Error(err))
			return
		}

		reply := h.handleMessage(r.Context(), data)
		if err := conn.WriteJSON(reply); err != nil {
			logger.Log.Warn("websocket write failed", zap.Error(err))
			return
		}
	}
}

func (h *ChatHandler) handleMessage(ctx context.Context, data []byte) ChatReply {
	var msg ChatMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return ChatReply{Success: false, Error: "Invalid message format"}
	}

	if strings.TrimSpace(msg.TokenAddress) == "" || strings.TrimSpace(msg.UserMessage) == "" {
		return ChatReply{Success: false, Error: "Token address or user message cannot be empty"}
	}

	ctx, cancel := context.WithTimeout(ctx, answerTimeout)
	defer cancel()

	summary, err := h.coinSummary(ctx, msg.TokenAddress)
	if err != nil {
		logger.Log.Error("chat summary lookup failed",
			zap.String("address", msg.TokenAddress), zap.Error(err))
		return ChatReply{Success: false, Error: "Failed to fetch coin details"}
	}

	answer, err := h.summarizer.Answer(ctx, summary, msg.UserMessage)
	if err != nil {
		logger.Log.Error("chat answer failed",
			zap.String("address", msg.TokenAddress), zap.Error(err))
		return ChatReply{Success: false, Error: "Failed to answer message"}
	}

	return ChatReply{Success: true, Echo: answer}
}

// coinSummary reads the coin's summary prompt through the cache. On a miss
// the coin is fetched, rendered and stored under its lower-cased address.
func (h *ChatHandler) coinSummary(ctx context.Context, address string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(address))

	if summary, ok := h.summaries.Get(ctx, key); ok {
		return summary, nil
	}

	coin, err := h.coins.GetCoin(ctx, address)
	if err != nil {
		return "", err
	}

	summary := service.BuildCoinPrompt(coin)
	if err := h.summaries.Set(ctx, key, summary); err != nil {
		logger.Log.Warn("summary cache write failed", zap.String("address", key), zap.Error(err))
	}
	return summary, nil
}
