package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production") // skip .env loading
	t.Setenv("PORT", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("DYNAMODB_TABLE", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("ASK_MODE", "")
	t.Setenv("REQUEST_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, "RichmondTechCommunity", cfg.DynamoDBTable)
	assert.Equal(t, "gemini-2.0-flash", cfg.ModelName)
	assert.Equal(t, AskModeAuto, cfg.AskMode)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoad_AskModeValidation(t *testing.T) {
	t.Setenv("GO_ENV", "production")

	t.Setenv("ASK_MODE", "always")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, AskModeAlways, cfg.AskMode)

	t.Setenv("ASK_MODE", "bogus")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, AskModeAuto, cfg.AskMode, "unknown modes fall back to auto")
}

func TestLoad_RequestTimeout(t *testing.T) {
	t.Setenv("GO_ENV", "production")

	t.Setenv("REQUEST_TIMEOUT", "5")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)

	t.Setenv("REQUEST_TIMEOUT", "not-a-number")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout, "garbage falls back to the default")
}
