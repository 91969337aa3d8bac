package config

import (
	"fmt"
	"regexp"
	"strings"
)

var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*(\.[a-z_][a-z0-9_]*)?$`)

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validatePaginationConfig(&config.Pagination); err != nil {
		return fmt.Errorf("pagination config validation failed: %w", err)
	}

	if err := validateStoreConfig(&config.Store); err != nil {
		return fmt.Errorf("store config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	if err := validateRateLimitConfig(&config.RateLimit); err != nil {
		return fmt.Errorf("rate limit config validation failed: %w", err)
	}

	if config.Telemetry.SampleRatio < 0 || config.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("telemetry config validation failed: sample ratio must be within [0,1], got %v", config.Telemetry.SampleRatio)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 || config.WriteTimeout <= 0 || config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got read=%v write=%v idle=%v",
			config.ReadTimeout, config.WriteTimeout, config.IdleTimeout)
	}

	if config.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %v", config.ShutdownTimeout)
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.MaxConns < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConns)
	}

	if config.MinConns < 0 || config.MinConns > config.MaxConns {
		return fmt.Errorf("min connections must be within [0,%d], got %d", config.MaxConns, config.MinConns)
	}

	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}

	// zero disables the per-statement budget
	if config.StatementTimeout < 0 {
		return fmt.Errorf("statement timeout must not be negative, got %v", config.StatementTimeout)
	}

	return nil
}

func validatePaginationConfig(config *PaginationConfig) error {
	if config.MaxPageSize < 1 {
		return fmt.Errorf("max page size must be at least 1, got %d", config.MaxPageSize)
	}

	if config.DefaultPageSize < 1 || config.DefaultPageSize > config.MaxPageSize {
		return fmt.Errorf("default page size must be within [1,%d], got %d", config.MaxPageSize, config.DefaultPageSize)
	}

	if config.AllModeSemiJoinLimit < 1 {
		return fmt.Errorf("all-mode semi-join limit must be at least 1, got %d", config.AllModeSemiJoinLimit)
	}

	return nil
}

func validateStoreConfig(config *StoreConfig) error {
	switch config.Layout {
	case StoreLayoutPartitioned:
		if !identifierPattern.MatchString(config.ParentRelation) {
			return fmt.Errorf("invalid parent relation %q", config.ParentRelation)
		}
	case StoreLayoutUnion:
	default:
		return fmt.Errorf("unknown store layout %q", config.Layout)
	}

	for name, value := range map[string]string{
		"regular relation": config.RegularRelation,
		"auto relation":    config.AutoRelation,
		"tag junction":     config.TagJunction,
		"tags relation":    config.TagsRelation,
	} {
		if !identifierPattern.MatchString(value) {
			return fmt.Errorf("invalid %s %q", name, value)
		}
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	switch strings.ToLower(config.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", config.Level)
	}

	switch strings.ToLower(config.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", config.Format)
	}

	return nil
}

func validateRateLimitConfig(config *RateLimitConfig) error {
	if !config.Enabled {
		return nil
	}

	if config.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests per second must be positive, got %v", config.RequestsPerSecond)
	}

	if config.Burst < 1 {
		return fmt.Errorf("burst must be at least 1, got %d", config.Burst)
	}

	if config.MaxClients < 1 {
		return fmt.Errorf("max clients must be at least 1, got %d", config.MaxClients)
	}

	return nil
}
