package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	var cfg Config
	require.NoError(t, cfg.Validate(), "zero config is valid")

	cfg.Completion.Provider = "gemini"
	cfg.Completion.TimeoutSeconds = 10
	cfg.Server.Port = "8080"
	require.NoError(t, cfg.Validate())

	cfg.Completion.Provider = "anthropic"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "completion.provider")

	cfg.Completion.Provider = "none"
	cfg.Completion.TimeoutSeconds = -1
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout_seconds")

	cfg.Completion.TimeoutSeconds = 0
	cfg.Server.Port = "eighty"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}
