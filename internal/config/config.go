package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Model     ModelConfig     `yaml:"model"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	History   HistoryConfig   `yaml:"history"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	CORS      CORSConfig      `yaml:"cors"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// ModelConfig holds generative model collaborator settings.
// The system prompt is loaded once at startup; SystemPromptPath empty means
// the embedded default instruction is used.
type ModelConfig struct {
	APIKey           string        `yaml:"-"                  env:"MODEL_API_KEY" env-required:"true"`
	Name             string        `yaml:"name"               env:"MODEL_NAME"               env-default:"claude-sonnet-4-5-20250929"`
	MaxTokens        int           `yaml:"max_tokens"         env:"MODEL_MAX_TOKENS"         env-default:"500"`
	SystemPromptPath string        `yaml:"system_prompt_path" env:"MODEL_SYSTEM_PROMPT_PATH"`
	Timeout          time.Duration `yaml:"timeout"            env:"MODEL_TIMEOUT"            env-default:"30s"`
}

// CatalogConfig holds font catalog collaborator settings.
type CatalogConfig struct {
	APIKey     string        `yaml:"-"           env:"CATALOG_API_KEY" env-required:"true"`
	BaseURL    string        `yaml:"base_url"    env:"CATALOG_BASE_URL"    env-default:"https://www.googleapis.com/webfonts/v1/webfonts"`
	Timeout    time.Duration `yaml:"timeout"     env:"CATALOG_TIMEOUT"     env-default:"10s"`
	MaxRetries int           `yaml:"max_retries" env:"CATALOG_MAX_RETRIES" env-default:"2"`
}

// HistoryConfig holds search-history settings.
type HistoryConfig struct {
	Capacity   int           `yaml:"capacity"    env:"HISTORY_CAPACITY"    env-default:"10"`
	SessionTTL time.Duration `yaml:"session_ttl" env:"HISTORY_SESSION_TTL" env-default:"30m"`
}

// RateLimitConfig holds per-IP rate limiting settings.
type RateLimitConfig struct {
	Enabled   bool `yaml:"enabled"    env:"RATELIMIT_ENABLED"    env-default:"true"`
	PerMinute int  `yaml:"per_minute" env:"RATELIMIT_PER_MINUTE" env-default:"30"`
	Burst     int  `yaml:"burst"      env:"RATELIMIT_BURST"      env-default:"5"`
}

// CORSConfig holds CORS settings. The suggestion UI is served from a
// different origin, so all routes answer preflight requests.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Session-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
