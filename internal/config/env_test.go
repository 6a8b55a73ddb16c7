// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Voronkov

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"GATEWAY_CONFIG_DIR": "/var/lib/gateway",
		"GATEWAY_TOKEN":      "operator-token",

		"OLLAMA_BASE_URL":       "http://172.17.0.1:11434/v1",
		"OLLAMA_API_KEY":        "ollama-local",
		"OLLAMA_MODEL":          "qwen2.5-coder:32b",
		"OLLAMA_CONTEXT_WINDOW": "16384",
	}
	setEnvVars(t, envVars)

	// Act
	settings := &Settings{}
	err := parseEnv(settings)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/gateway", settings.Gateway.ConfigDir)
	assert.Equal(t, "operator-token", settings.Gateway.AuthToken)

	assert.Equal(t, "http://172.17.0.1:11434/v1", settings.Ollama.BaseURL)
	assert.Equal(t, "ollama-local", settings.Ollama.APIKey)
	assert.Equal(t, "qwen2.5-coder:32b", settings.Ollama.ModelID)
	assert.Equal(t, "16384", settings.Ollama.ContextWindow)
}

func TestParseEnv_NoVariablesSet(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	settings := &Settings{}
	err := parseEnv(settings)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"GATEWAY_CONFIG_DIR",
		"GATEWAY_TOKEN",
		"OLLAMA_BASE_URL",
		"OLLAMA_API_KEY",
		"OLLAMA_MODEL",
		"OLLAMA_CONTEXT_WINDOW",
	}
	for _, k := range keys {
		require.NoError(t, os.Unsetenv(k))
	}
}
