package config

import "fmt"

// Validate checks every section the API server needs. Load calls it.
func (c *Config) Validate() error {
	if err := c.ValidateStorage(); err != nil {
		return err
	}
	if err := c.ValidateAuth(); err != nil {
		return err
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if err := c.Server.validate(c.LLM); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	if c.RateLimit.SummarizePerMinute < 0 {
		return fmt.Errorf("rate_limit.summarize_per_minute must be >= 0 (got %d)", c.RateLimit.SummarizePerMinute)
	}

	return nil
}

// ValidateStorage checks the database and history sections only.
func (c *Config) ValidateStorage() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required (DATABASE_URL)")
	}
	if err := c.History.validate(); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	return nil
}

// ValidateAuth checks the identity provider section only.
func (c *Config) ValidateAuth() error {
	switch c.Auth.Provider {
	case AuthProviderFirebase:
	case AuthProviderJWT:
		if len(c.Auth.JWTSecret) < 32 {
			return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
		}
	default:
		return fmt.Errorf("auth.provider must be %q or %q (got %q)", AuthProviderFirebase, AuthProviderJWT, c.Auth.Provider)
	}
	return nil
}

// A zero write timeout means no deadline, as in http.Server.
func (s *ServerConfig) validate(llm LLMConfig) error {
	if s.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be > 0 (got %d)", s.MaxBodyBytes)
	}
	if s.WriteTimeout > 0 && llm.Timeout >= s.WriteTimeout {
		return fmt.Errorf("write_timeout (%s) must exceed llm.timeout (%s)", s.WriteTimeout, llm.Timeout)
	}
	return nil
}

func (l *LLMConfig) validate() error {
	switch l.Provider {
	case LLMProviderOpenAI, LLMProviderAnthropic, LLMProviderGemini:
	default:
		return fmt.Errorf("provider must be one of openai, anthropic, gemini (got %q)", l.Provider)
	}
	if l.APIKey == "" {
		return fmt.Errorf("api_key is required for provider %s", l.Provider)
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("temperature must be within [0, 2] (got %v)", l.Temperature)
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", l.Timeout)
	}
	return nil
}

func (h *HistoryConfig) validate() error {
	if h.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", h.DefaultPageSize)
	}
	if h.MaxPageSize < h.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", h.MaxPageSize, h.DefaultPageSize)
	}
	if h.PurgeRetentionDays <= 0 {
		return fmt.Errorf("purge_retention_days must be > 0 (got %d)", h.PurgeRetentionDays)
	}
	return nil
}
