package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_GivenEnvironmentOnly(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "from-process:1")

	cfg := new(StructuredConfig)
	require.NoError(t, parseEnv(cfg, map[string]string{"SERVER_REQUEST_TIMEOUT": "7s"}))

	assert.Equal(t, 7*time.Second, cfg.Server.RequestTimeout)
	assert.Empty(t, cfg.Server.HTTPAddress)
}

func TestParseEnv_BadValueNamesTarget(t *testing.T) {
	err := parseEnv(new(ClientConfig), map[string]string{"CLIENT_REQUEST_TIMEOUT": "soon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "*config.ClientConfig")
}
