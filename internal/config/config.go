// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Voronkov

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultContextWindow is the context window size assumed for a provisioned
// model when OLLAMA_CONTEXT_WINDOW is unset or not a positive integer.
const DefaultContextWindow = 32768

// Settings is the top-level bootstrap configuration for gateway-init. It is
// populated by merging values from command-line flags and environment
// variables over built-in defaults, and is threaded explicitly into every
// component instead of being read ad hoc from the environment.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Settings struct {
	// Gateway holds settings for the gateway configuration file itself:
	// where it lives and the optional explicit auth token.
	Gateway Gateway `envPrefix:"GATEWAY_"`

	// Ollama holds the optional connection parameters that enable
	// auto-provisioning of a local Ollama provider entry.
	Ollama Ollama `envPrefix:"OLLAMA_"`
}

// Gateway holds settings for locating and seeding the gateway configuration
// document.
type Gateway struct {
	// ConfigDir is the directory holding the gateway configuration file.
	// Defaults to ~/.gateway; overridable for isolated testing.
	// Env: GATEWAY_CONFIG_DIR
	ConfigDir string `env:"CONFIG_DIR"`

	// AuthToken is an explicit gateway auth token. When empty and the
	// document carries no token, a random one is generated. Never
	// overwrites a token already present in the document.
	// Env: GATEWAY_TOKEN
	AuthToken string `env:"TOKEN"`
}

// Ollama holds the optional local-LLM provider connection parameters.
// Provisioning happens only when both BaseURL and APIKey are set.
type Ollama struct {
	// BaseURL is the OpenAI-compatible endpoint of the local Ollama
	// server (e.g. "http://172.17.0.1:11434/v1").
	// Env: OLLAMA_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is the credential sent to the Ollama server.
	// Env: OLLAMA_API_KEY
	APIKey string `env:"API_KEY"`

	// ModelID names the model to register under the provider and select
	// as the default (e.g. "qwen2.5-coder:32b"). Optional: when empty the
	// user picks a model through the application's own interface.
	// Env: OLLAMA_MODEL
	ModelID string `env:"MODEL"`

	// ContextWindow is the context window size for the registered model,
	// kept as a string so that a non-numeric value degrades silently to
	// DefaultContextWindow instead of failing the bootstrap.
	// Env: OLLAMA_CONTEXT_WINDOW
	ContextWindow string `env:"CONTEXT_WINDOW"`
}

// ContextWindowTokens resolves the configured context window, falling back
// to DefaultContextWindow when the value is unset, non-numeric, or not
// positive.
func (o Ollama) ContextWindowTokens() int {
	n, err := strconv.Atoi(strings.TrimSpace(o.ContextWindow))
	if err != nil || n <= 0 {
		return DefaultContextWindow
	}

	return n
}

// GetSettings loads and merges the bootstrap configuration from all sources
// in the following priority order (first non-zero value wins):
//  1. Command-line flag overrides supplied by the caller
//  2. Environment variables
//  3. Built-in defaults
func GetSettings(overrides *Settings) (*Settings, error) {
	return newSettingsBuilder().
		withOverrides(overrides).
		withEnv().
		withDefaults().
		build()
}

// Defaults returns the built-in bootstrap settings used when no environment
// or flag input is present.
func Defaults() *Settings {
	return &Settings{
		Gateway: Gateway{
			ConfigDir: defaultConfigDir(),
		},
	}
}

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("/root", ".gateway")
	}

	return filepath.Join(home, ".gateway")
}
