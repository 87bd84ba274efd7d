package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration from a .env file using the provided base name,
// falling back to environment variables and built-in defaults
func LoadConfig(configName string) (*Config, error) {
	configFileName := fmt.Sprintf("%s.env", configName)
	return loadConfig(configFileName, "env")
}

// LoadConfigWithNameAndType loads configuration with explicit name and type.
// Use this to force a specific configuration format (e.g. "yaml", "json")
func LoadConfigWithNameAndType(configName, configType string) (*Config, error) {
	return loadConfig(configName, configType)
}

// loadConfig implements the layered lookup: defaults, then config file values
// (if a file is found), then environment variables, then validation.
func loadConfig(configName, configType string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configName)
	if configType != "" {
		v.SetConfigType(configType)
	}

	// Config paths in order of priority
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Printf("INFO: No config file '%s' found, relying on environment variables and defaults.\n", configName)
		} else {
			fmt.Printf("WARNING: Error reading config file (%s): %v\n", v.ConfigFileUsed(), err)
		}
	} else {
		fmt.Printf("INFO: Config loaded from file: %s\n", v.ConfigFileUsed())
	}

	v.AutomaticEnv()

	config := &Config{
		Application: ApplicationConfig{
			Env:          v.GetString("APP_ENV"),
			Name:         v.GetString("APP_NAME"),
			SeedDemoData: v.GetBool("APP_SEED_DEMO_DATA"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Server: ServerConfig{
			Port:            v.GetInt("SERVER_PORT"),
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
			ReadTimeout:     v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("SERVER_WRITE_TIMEOUT"),
			IdleTimeout:     v.GetDuration("SERVER_IDLE_TIMEOUT"),
			CORSOrigins:     v.GetStringSlice("SERVER_CORS_ORIGINS"),
		},
		Ledger: LedgerConfig{
			MinAmount:            v.GetInt64("LEDGER_MIN_AMOUNT"),
			MaxDescriptionLength: v.GetInt("LEDGER_MAX_DESCRIPTION_LENGTH"),
			DefaultHistoryLimit:  v.GetInt("LEDGER_DEFAULT_HISTORY_LIMIT"),
			MaxHistoryLimit:      v.GetInt("LEDGER_MAX_HISTORY_LIMIT"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults initializes configuration with sensible default values.
// These are used when no configuration file or environment variables are present.
func setDefaults(v *viper.Viper) {
	// HTTP server defaults - tuned for typical web application workloads
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second)
	v.SetDefault("SERVER_READ_TIMEOUT", 30*time.Second)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 30*time.Second)
	v.SetDefault("SERVER_IDLE_TIMEOUT", 120*time.Second)
	v.SetDefault("SERVER_CORS_ORIGINS", []string{"*"})

	// Ledger defaults - the minimum amount is 100 XOF minor units, matching
	// the smallest deposit the bank accepts over the counter
	v.SetDefault("LEDGER_MIN_AMOUNT", 100)
	v.SetDefault("LEDGER_MAX_DESCRIPTION_LENGTH", 200)
	v.SetDefault("LEDGER_DEFAULT_HISTORY_LIMIT", 50)
	v.SetDefault("LEDGER_MAX_HISTORY_LIMIT", 500)

	// Logging defaults - 'info' provides good balance of information vs noise
	v.SetDefault("LOG_LEVEL", "info")

	// Application defaults - development-friendly baseline configuration
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "dokal-ledger")
	v.SetDefault("APP_SEED_DEMO_DATA", false)
}
