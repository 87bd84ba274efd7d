// Package config provides configuration structures and validation for the
// ledger service. Everything is environment-based: defaults first, then an
// optional env file, then environment variables.
package config

import (
	"errors"
	"strings"
	"time"
)

// Config holds the complete application configuration. The Ledger section
// carries the business parameters of the transaction engine; everything else
// is operational.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Server      ServerConfig
	Ledger      LedgerConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env          string
	Name         string
	SeedDemoData bool // Insert a demo client and account on startup
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// ServerConfig contains HTTP server configuration settings
type ServerConfig struct {
	Port            int           // Port to listen on
	ShutdownTimeout time.Duration // Grace period for server shutdown
	ReadTimeout     time.Duration // Maximum duration for reading entire request
	WriteTimeout    time.Duration // Maximum duration for writing response
	IdleTimeout     time.Duration // Maximum duration to wait for next request
	CORSOrigins     []string      // Origins allowed by the CORS policy, "*" for any
}

// LedgerConfig contains the business parameters of the transaction engine
type LedgerConfig struct {
	MinAmount            int64 // Smallest accepted transaction amount, in minor units
	MaxDescriptionLength int   // Upper bound on free-text transaction descriptions
	DefaultHistoryLimit  int   // History page size when the caller gives none
	MaxHistoryLimit      int   // Hard cap on a single history query
}

// validate checks all configuration values against their minimum requirements
func (c *Config) validate() error {
	var validationErrors []string

	if c.Server.Port <= 0 {
		validationErrors = append(validationErrors, "SERVER_PORT must be greater than 0")
	}
	if c.Server.ShutdownTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_SHUTDOWN_TIMEOUT must be greater than 0")
	}
	if c.Server.ReadTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_READ_TIMEOUT must be greater than 0")
	}
	if c.Server.WriteTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_WRITE_TIMEOUT must be greater than 0")
	}
	if c.Server.IdleTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_IDLE_TIMEOUT must be greater than 0")
	}

	if c.Ledger.MinAmount <= 0 {
		validationErrors = append(validationErrors, "LEDGER_MIN_AMOUNT must be greater than 0")
	}
	if c.Ledger.MaxDescriptionLength <= 0 {
		validationErrors = append(validationErrors, "LEDGER_MAX_DESCRIPTION_LENGTH must be greater than 0")
	}
	if c.Ledger.DefaultHistoryLimit <= 0 {
		validationErrors = append(validationErrors, "LEDGER_DEFAULT_HISTORY_LIMIT must be greater than 0")
	}
	if c.Ledger.MaxHistoryLimit < c.Ledger.DefaultHistoryLimit {
		validationErrors = append(validationErrors, "LEDGER_MAX_HISTORY_LIMIT must be at least LEDGER_DEFAULT_HISTORY_LIMIT")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}
