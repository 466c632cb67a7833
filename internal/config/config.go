package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	LLM       LLMConfig       `yaml:"llm"`
	History   HistoryConfig   `yaml:"history"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:5173"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"4000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"102400"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_URL"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// Identity providers.
const (
	AuthProviderFirebase = "firebase"
	AuthProviderJWT      = "jwt"
)

// AuthConfig selects and configures the bearer-token identity provider.
type AuthConfig struct {
	Provider string `yaml:"provider" env:"AUTH_PROVIDER" env-default:"firebase"`

	// Firebase: credentials file may be empty to use application default credentials.
	FirebaseProjectID       string `yaml:"firebase_project_id"       env:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsFile string `yaml:"firebase_credentials_file" env:"FIREBASE_CREDENTIALS_FILE" env-default:"./serviceAccountKey.json"`

	// JWT: HS256 tokens for local development and tests.
	JWTSecret   string        `yaml:"jwt_secret"    env:"AUTH_JWT_SECRET"`
	JWTIssuer   string        `yaml:"jwt_issuer"    env:"AUTH_JWT_ISSUER"    env-default:"clearcare"`
	JWTTokenTTL time.Duration `yaml:"jwt_token_ttl" env:"AUTH_JWT_TOKEN_TTL" env-default:"1h"`
}

// Generation providers.
const (
	LLMProviderOpenAI    = "openai"
	LLMProviderAnthropic = "anthropic"
	LLMProviderGemini    = "gemini"
)

// LLMConfig configures the text-generation capability.
type LLMConfig struct {
	Provider    string        `yaml:"provider"    env:"LLM_PROVIDER"    env-default:"openai"`
	APIKey      string        `yaml:"api_key"     env:"LLM_API_KEY"`
	Model       string        `yaml:"model"       env:"LLM_MODEL"`
	BaseURL     string        `yaml:"base_url"    env:"LLM_BASE_URL"`
	Temperature float64       `yaml:"temperature" env:"LLM_TEMPERATURE" env-default:"0.2"`
	MaxTokens   int           `yaml:"max_tokens"  env:"LLM_MAX_TOKENS"  env-default:"1024"`
	Timeout     time.Duration `yaml:"timeout"     env:"LLM_TIMEOUT"     env-default:"30s"`
}

// DefaultModel returns the model used when none is configured.
func (c LLMConfig) DefaultModel() string {
	if c.Model != "" {
		return c.Model
	}
	switch c.Provider {
	case LLMProviderAnthropic:
		return "claude-3-5-haiku-latest"
	case LLMProviderGemini:
		return "gemini-2.5-flash"
	default:
		return "gpt-4o-mini"
	}
}

// HistoryConfig holds summary history settings.
type HistoryConfig struct {
	DefaultPageSize    int `yaml:"default_page_size"    env:"HISTORY_DEFAULT_PAGE_SIZE"    env-default:"20"`
	MaxPageSize        int `yaml:"max_page_size"        env:"HISTORY_MAX_PAGE_SIZE"        env-default:"100"`
	PurgeRetentionDays int `yaml:"purge_retention_days" env:"HISTORY_PURGE_RETENTION_DAYS" env-default:"30"`
}

// RateLimitConfig limits summarize calls per identity. RedisAddr empty
// means an in-process limiter.
type RateLimitConfig struct {
	SummarizePerMinute int    `yaml:"summarize_per_minute" env:"RATE_LIMIT_SUMMARIZE_PER_MINUTE" env-default:"10"`
	RedisAddr          string `yaml:"redis_addr"           env:"RATE_LIMIT_REDIS_ADDR"`
	RedisPassword      string `yaml:"redis_password"       env:"RATE_LIMIT_REDIS_PASSWORD"`
	RedisDB            int    `yaml:"redis_db"             env:"RATE_LIMIT_REDIS_DB"             env-default:"0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
