package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default values applied when neither the environment nor a config file
// provides a setting.
const (
	defaultPort                        = 8080
	defaultLogLevel                    = "info"
	defaultTokenLifetimeMinutes        = 60
	defaultRefreshTokenLifetimeMinutes = 10080 // 7 days
	defaultModelName                   = "gemini-2.0-flash"
	defaultMaxRetries                  = 2
	defaultRetryDelaySeconds           = 2
)

// Load reads configuration from environment variables with the EMPOWERHUB_
// prefix, applies defaults, and validates the result. Environment variables
// use underscores for nesting, e.g. EMPOWERHUB_DATABASE_URL maps to
// database.url.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.log_level", defaultLogLevel)
	v.SetDefault("auth.token_lifetime_minutes", defaultTokenLifetimeMinutes)
	v.SetDefault("auth.refresh_token_lifetime_minutes", defaultRefreshTokenLifetimeMinutes)
	v.SetDefault("auth.bcrypt_cost", 0) // 0 selects bcrypt.DefaultCost
	v.SetDefault("llm.model_name", defaultModelName)
	v.SetDefault("llm.max_retries", defaultMaxRetries)
	v.SetDefault("llm.retry_delay_seconds", defaultRetryDelaySeconds)

	v.SetEnvPrefix("EMPOWERHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind explicitly: AutomaticEnv alone does not surface keys that are
	// absent from both defaults and config files.
	for _, key := range []string{
		"database.url",
		"auth.jwt_secret",
		"llm.gemini_api_key",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
