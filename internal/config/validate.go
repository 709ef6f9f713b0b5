package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}

	if c.Model.MaxTokens <= 0 {
		return fmt.Errorf("model.max_tokens must be > 0 (got %d)", c.Model.MaxTokens)
	}
	if c.Model.Name == "" {
		return fmt.Errorf("model.name must not be empty")
	}
	if c.Model.Timeout <= 0 {
		return fmt.Errorf("model.timeout must be > 0 (got %v)", c.Model.Timeout)
	}

	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog.base_url must not be empty")
	}
	if c.Catalog.MaxRetries < 0 {
		return fmt.Errorf("catalog.max_retries must be >= 0 (got %d)", c.Catalog.MaxRetries)
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("catalog.timeout must be > 0 (got %v)", c.Catalog.Timeout)
	}

	if c.History.Capacity <= 0 {
		return fmt.Errorf("history.capacity must be > 0 (got %d)", c.History.Capacity)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.PerMinute <= 0 {
			return fmt.Errorf("rate_limit.per_minute must be > 0 when enabled (got %d)", c.RateLimit.PerMinute)
		}
		if c.RateLimit.Burst <= 0 {
			return fmt.Errorf("rate_limit.burst must be > 0 when enabled (got %d)", c.RateLimit.Burst)
		}
	}

	return nil
}
