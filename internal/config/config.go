package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"

	"github.com/serein-care/serein/backend/internal/analysis/crisis"
)

// Config aggregates every runtime setting of the service.
type Config struct {
	Server    ServerConfig
	AI        AIConfig
	Fallback  FallbackConfig
	Crisis    CrisisConfig
	Store     StoreConfig
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	fallback, err := loadFallbackConfig()
	if err != nil {
		return nil, err
	}

	crisisCfg, err := loadCrisisConfig()
	if err != nil {
		return nil, err
	}

	store, err := loadStoreConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai, Fallback: fallback, Crisis: crisisCfg, Store: store}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig describes the primary (Ark) completion backend.
type AIConfig struct {
	APIKey      string
	AccessKey   string
	SecretKey   string
	Model       string
	BaseURL     string
	Region      string
	Temperature *float64
	TopP        *float64
	MaxTokens   *int
}

// Enabled reports whether the required credentials are present.
func (c AIConfig) Enabled() bool {
	return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
}

// NewChatModel builds an Ark chat model instance from this configuration.
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("ark credentials missing: provide ARK_API_KEY + ARK_MODEL or an AK/SK pair")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var topP *float32
	if c.TopP != nil {
		val := float32(*c.TopP)
		topP = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   c.MaxTokens,
		Temperature: temperature,
		TopP:        topP,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("ARK_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	topP, err := parseOptionalFloatEnv("ARK_TOP_P")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("ARK_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	return AIConfig{
		APIKey:      strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		AccessKey:   strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		SecretKey:   strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		Model:       strings.TrimSpace(os.Getenv("ARK_MODEL")),
		BaseURL:     getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		Region:      getEnvOrDefault("ARK_REGION", "cn-beijing"),
		Temperature: temperature,
		TopP:        topP,
		MaxTokens:   maxTokens,
	}, nil
}

// FallbackConfig describes the secondary, OpenAI-compatible backend.
type FallbackConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// Enabled reports whether the secondary backend is configured.
func (c FallbackConfig) Enabled() bool {
	return c.BaseURL != "" && c.Model != ""
}

func loadFallbackConfig() (FallbackConfig, error) {
	temperature, err := parseOptionalFloatEnv("FALLBACK_TEMPERATURE")
	if err != nil {
		return FallbackConfig{}, err
	}
	temp := 0.7
	if temperature != nil {
		temp = *temperature
	}

	maxTokens, err := parseOptionalIntEnv("FALLBACK_MAX_TOKENS")
	if err != nil {
		return FallbackConfig{}, err
	}
	tokens := 1024
	if maxTokens != nil {
		tokens = *maxTokens
	}

	timeoutSeconds, err := parseOptionalIntEnv("FALLBACK_TIMEOUT_SECONDS")
	if err != nil {
		return FallbackConfig{}, err
	}
	timeout := 30 * time.Second
	if timeoutSeconds != nil {
		timeout = time.Duration(*timeoutSeconds) * time.Second
	}

	return FallbackConfig{
		BaseURL:     strings.TrimSpace(os.Getenv("FALLBACK_BASE_URL")),
		APIKey:      strings.TrimSpace(os.Getenv("FALLBACK_API_KEY")),
		Model:       strings.TrimSpace(os.Getenv("FALLBACK_MODEL")),
		Temperature: temp,
		MaxTokens:   tokens,
		Timeout:     timeout,
	}, nil
}

// CrisisConfig exposes the detector tuning. Defaults preserve the historical
// weights; they are configuration, not clinical constants.
type CrisisConfig struct {
	Detector crisis.Config
}

func loadCrisisConfig() (CrisisConfig, error) {
	cfg := crisis.DefaultConfig()

	overrides := []struct {
		env    string
		target *int
	}{
		{"CRISIS_CRITICAL_WEIGHT", &cfg.CriticalWeight},
		{"CRISIS_MEDIUM_WEIGHT", &cfg.MediumWeight},
		{"CRISIS_TREND_WEIGHT", &cfg.TrendWeight},
		{"CRISIS_CRITICAL_SCORE", &cfg.CriticalScore},
		{"CRISIS_HIGH_SCORE", &cfg.HighScore},
		{"CRISIS_MEDIUM_SCORE", &cfg.MediumScore},
	}
	for _, override := range overrides {
		val, err := parseOptionalIntEnv(override.env)
		if err != nil {
			return CrisisConfig{}, err
		}
		if val != nil {
			*override.target = *val
		}
	}

	return CrisisConfig{Detector: cfg}, nil
}

// StoreConfig describes the durable state backend and retention policy.
type StoreConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	KeyPrefix     string
	// Retention of 0 keeps conversation bindings forever.
	Retention time.Duration
}

// RedisEnabled reports whether a Redis backend is configured.
func (c StoreConfig) RedisEnabled() bool {
	return c.RedisAddr != ""
}

func loadStoreConfig() (StoreConfig, error) {
	db, err := parseOptionalIntEnv("REDIS_DB")
	if err != nil {
		return StoreConfig{}, err
	}
	redisDB := 0
	if db != nil {
		redisDB = *db
	}

	retentionHours, err := parseOptionalIntEnv("CONTEXT_RETENTION_HOURS")
	if err != nil {
		return StoreConfig{}, err
	}
	retention := time.Duration(0)
	if retentionHours != nil {
		retention = time.Duration(*retentionHours) * time.Hour
	}

	return StoreConfig{
		RedisAddr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword: strings.TrimSpace(os.Getenv("REDIS_PASSWORD")),
		RedisDB:       redisDB,
		KeyPrefix:     getEnvOrDefault("REDIS_KEY_PREFIX", "serein"),
		Retention:     retention,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
