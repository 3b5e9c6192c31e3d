package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Config holds everything the backend reads from the environment.
type Config struct {
	// Port the HTTP/WebSocket server listens on.
	Port string

	// Zora token-data API.
	ZoraBaseURL string
	ZoraAPIKey  string

	// OpenAI summarization provider.
	OpenAIAPIKey string

	// BaseAppReferrerAddress is the platform-reference address used to derive
	// isFromBaseApp and to filter the top-gainers feed. Optional: when empty
	// the flag is always false and the gainers feed is empty.
	BaseAppReferrerAddress string

	// UpstreamTimeout applies uniformly to token-data and AI provider calls.
	UpstreamTimeout time.Duration

	// SummaryTTL is the default lifetime of a cached coin prompt.
	SummaryTTL time.Duration

	// Optional Redis backend for the summary cache.
	RedisEnabled  bool
	RedisAddress  string
	RedisUsername string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
	RedisUseTLS   bool

	LogLevel string
	LogJSON  bool
}

// Load reads configuration from the environment. OPENAI_API_KEY is required;
// everything else has a default or is optional.
func Load() (*Config, error) {
	openAIKey := os.Getenv("OPENAI_API_KEY")
	if openAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	referrer := os.Getenv("BASEAPP_REFERRER_ADDRESS")
	if referrer != "" && !common.IsHexAddress(referrer) {
		return nil, fmt.Errorf("BASEAPP_REFERRER_ADDRESS is not a valid address: %s", referrer)
	}

	redisDB, err := envInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	timeoutSecs, err := envInt("UPSTREAM_TIMEOUT_SECONDS", 15)
	if err != nil {
		return nil, err
	}
	ttlSecs, err := envInt("SUMMARY_CACHE_TTL_SECONDS", 500)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:                   envDefault("PORT", "5000"),
		ZoraBaseURL:            envDefault("ZORA_API_BASE_URL", "https://api-sdk.zora.engineering"),
		ZoraAPIKey:             os.Getenv("ZORA_API_KEY"),
		OpenAIAPIKey:           openAIKey,
		BaseAppReferrerAddress: referrer,
		UpstreamTimeout:        time.Duration(timeoutSecs) * time.Second,
		SummaryTTL:             time.Duration(ttlSecs) * time.Second,
		RedisEnabled:           envBool("REDIS_ENABLED"),
		RedisAddress:           envDefault("REDIS_ADDRESS", "localhost:6379"),
		RedisUsername:          os.Getenv("REDIS_USERNAME"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:                redisDB,
		RedisPrefix:            envDefault("REDIS_KEY_PREFIX", "coinhawk:summary:"),
		RedisUseTLS:            envBool("REDIS_USE_TLS"),
		LogLevel:               envDefault("LOG_LEVEL", "info"),
		LogJSON:                envBool("LOG_JSON"),
	}, nil
}

func envDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envBool(key string) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && value
}

func envInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}
