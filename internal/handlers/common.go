package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/blockfuselabs/CoinHawk/internal/logger"
)

// ErrorResponse is the failure shape every endpoint returns.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Pagination describes the page of a list response.
type Pagination struct {
	Page            int    `json:"page"`
	Count           int    `json:"count"`
	Total           int    `json:"total"`
	HasNextPage     bool   `json:"hasNextPage"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
	Cursor          string `json:"cursor,omitempty"`
}

func sendError(c *gin.Context, statusCode int, message string, err error) {
	logger.Log.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", statusCode),
	)
	c.JSON(statusCode, ErrorResponse{Success: false, Message: message})
}

func sendData(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{"success": true, "data": data})
}

// queryInt reads an integer query parameter, falling back to a default on
// absence or garbage. Range validation belongs to the service layer.
func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
