package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogging(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	logger := ConfigureLogging()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestConfigureLoggingInvalidLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")
	t.Setenv("LOG_FORMAT", "text")

	logger := ConfigureLogging()
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("BUDGET_SAGE_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("BUDGET_SAGE_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("BUDGET_SAGE_TEST_MISSING", "fallback"))
}

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "EUR", cfg.Currency.Default)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	assert.False(t, cfg.AI.Enabled)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("BUDGETSAGE_CURRENCY_DEFAULT", "CHF")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "CHF", cfg.Currency.Default)
}

func TestInitializeConfigRejectsAIWithoutKey(t *testing.T) {
	t.Setenv("BUDGETSAGE_AI_ENABLED", "true")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := InitializeConfig()
	assert.Error(t, err)
}
