// Package server assembles the gin engine and owns the HTTP listener
// lifecycle.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/blockfuselabs/CoinHawk/internal/handlers"
	"github.com/blockfuselabs/CoinHawk/internal/logger"
	"github.com/blockfuselabs/CoinHawk/internal/ws"
)

// Server wraps the HTTP listener serving both the REST API and the chat
// WebSocket endpoint.
type Server struct {
	engine *gin.Engine
	http   *http.Server
}

// New builds the router with all routes mounted and middleware applied.
func New(port string, coins *handlers.CoinHandler, chat *ws.ChatHandler) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	coins.RegisterRoutes(engine)
	engine.GET("/ws", gin.WrapH(chat))

	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:              ":" + port,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run blocks serving requests until the listener fails or is shut down.
func (s *Server) Run() error {
	logger.Log.Info("http server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
