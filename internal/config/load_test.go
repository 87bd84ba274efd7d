package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_HappyPath(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	tempConfigsSubDir := filepath.Join(tempDir, "configs")
	err = os.Mkdir(tempConfigsSubDir, 0755)
	require.NoError(t, err)

	testAppName := "TestLedger"
	testPort := 9090
	testLogLevel := "debug"
	testMinAmount := 250

	envContent := fmt.Sprintf(
		"APP_NAME=%s\nSERVER_PORT=%d\nLOG_LEVEL=%s\nLEDGER_MIN_AMOUNT=%d\n",
		testAppName, testPort, testLogLevel, testMinAmount,
	)
	envFilePath := filepath.Join(tempConfigsSubDir, "test_happy.env")
	err = os.WriteFile(envFilePath, []byte(envContent), 0644)
	require.NoError(t, err)

	originalWD, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		_ = os.Chdir(originalWD)
	}()

	err = os.Chdir(tempDir)
	require.NoError(t, err)

	cfg, err := LoadConfig("test_happy")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, testAppName, cfg.Application.Name)
	assert.Equal(t, testPort, cfg.Server.Port)
	assert.Equal(t, testLogLevel, cfg.Logging.Level)
	assert.Equal(t, int64(testMinAmount), cfg.Ledger.MinAmount)

	// Values not present in the file keep their defaults
	assert.Equal(t, "development", cfg.Application.Env)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 200, cfg.Ledger.MaxDescriptionLength)
	assert.Equal(t, 50, cfg.Ledger.DefaultHistoryLimit)
	assert.Equal(t, 500, cfg.Ledger.MaxHistoryLimit)
	assert.False(t, cfg.Application.SeedDemoData)
}

func TestConfig_Validate_HappyPath(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{
		Application: ApplicationConfig{Env: v.GetString("APP_ENV"), Name: v.GetString("APP_NAME")},
		Logging:     LoggingConfig{Level: v.GetString("LOG_LEVEL")},
		Server: ServerConfig{
			Port:            v.GetInt("SERVER_PORT"),
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
			ReadTimeout:     v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("SERVER_WRITE_TIMEOUT"),
			IdleTimeout:     v.GetDuration("SERVER_IDLE_TIMEOUT"),
		},
		Ledger: LedgerConfig{
			MinAmount:            v.GetInt64("LEDGER_MIN_AMOUNT"),
			MaxDescriptionLength: v.GetInt("LEDGER_MAX_DESCRIPTION_LENGTH"),
			DefaultHistoryLimit:  v.GetInt("LEDGER_DEFAULT_HISTORY_LIMIT"),
			MaxHistoryLimit:      v.GetInt("LEDGER_MAX_HISTORY_LIMIT"),
		},
	}
	err := cfg.validate()
	assert.NoError(t, err, "Default config should be valid")
}

func TestConfig_Validate_BadLedgerValues(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"ZeroMinAmount", func(c *Config) { c.Ledger.MinAmount = 0 }},
		{"ZeroDescriptionLength", func(c *Config) { c.Ledger.MaxDescriptionLength = 0 }},
		{"ZeroHistoryLimit", func(c *Config) { c.Ledger.DefaultHistoryLimit = 0 }},
		{"MaxBelowDefaultLimit", func(c *Config) { c.Ledger.MaxHistoryLimit = 10 }},
		{"ZeroPort", func(c *Config) { c.Server.Port = 0 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				Server: ServerConfig{
					Port:            8080,
					ShutdownTimeout: time.Second,
					ReadTimeout:     time.Second,
					WriteTimeout:    time.Second,
					IdleTimeout:     time.Second,
				},
				Ledger: LedgerConfig{
					MinAmount:            100,
					MaxDescriptionLength: 200,
					DefaultHistoryLimit:  50,
					MaxHistoryLimit:      500,
				},
			}
			tc.mutate(cfg)
			assert.Error(t, cfg.validate())
		})
	}
}
