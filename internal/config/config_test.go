package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func devConfig() *Config {
	return &Config{
		JWTSecret: "your-secret-key-change-in-production",
		Port:      "8080",
		Env:       "development",
	}
}

func TestValidateRequiredFields(t *testing.T) {
	cfg := devConfig()
	require.NoError(t, cfg.Validate())

	cfg.Port = ""
	assert.ErrorContains(t, cfg.Validate(), "PORT")

	cfg = devConfig()
	cfg.JWTSecret = ""
	assert.ErrorContains(t, cfg.Validate(), "JWT_SECRET")
}

func TestValidateProductionStrictness(t *testing.T) {
	cfg := &Config{
		Port:       "8080",
		Env:        "production",
		JWTSecret:  "your-secret-key-change-in-production",
		DBPassword: "s3cure-db-password",
	}
	assert.ErrorContains(t, cfg.Validate(), "changed from the default")

	cfg.JWTSecret = "short"
	assert.ErrorContains(t, cfg.Validate(), "at least 32 characters")

	cfg.JWTSecret = "a-sufficiently-long-production-secret-0123456789"
	cfg.DBPassword = "password"
	assert.ErrorContains(t, cfg.Validate(), "DB_PASSWORD")

	cfg.DBPassword = "s3cure-db-password"
	require.NoError(t, cfg.Validate())

	// "prod" is treated the same as "production".
	cfg.Env = "prod"
	cfg.DBPassword = ""
	assert.ErrorContains(t, cfg.Validate(), "DB_PASSWORD")
}

func TestValidateDevelopmentIsLenient(t *testing.T) {
	cfg := devConfig()
	cfg.JWTSecret = "short-dev-secret"
	cfg.DBPassword = "password"
	assert.NoError(t, cfg.Validate())
}
