// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Voronkov

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvoronkov/gateway-init/internal/config"
	"github.com/mvoronkov/gateway-init/internal/logger"
	"github.com/mvoronkov/gateway-init/internal/setup"
	"github.com/mvoronkov/gateway-init/internal/store"
)

const rootLong = `gateway-init merges required gateway defaults with any existing
configuration and, when OLLAMA_BASE_URL and OLLAMA_API_KEY are set,
provisions a local Ollama provider entry. It always exits 0 so the
downstream application can start.`

// newRootCmd builds the gateway-init command. Flags mirror the environment
// variable surface and take priority over it.
func newRootCmd(log *logger.Logger) *cobra.Command {
	overrides := &config.Settings{}

	cmd := &cobra.Command{
		Use:           "gateway-init",
		Short:         "Prepare the gateway configuration file before startup",
		Long:          rootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.GetSettings(overrides)
			if err != nil {
				log.Error().Err(err).Msg("error getting settings, continuing with defaults")
				settings = config.Defaults()
			}

			log.Debug().Any("settings", redacted(settings)).Msg("received settings")

			st := store.NewFileStore(settings.Gateway.ConfigDir, log)
			summary := setup.New(settings, st, log).Run()

			log.Info().
				Str("path", summary.ConfigPath).
				Bool("applied", summary.Applied).
				Str("providers", strings.Join(summary.Providers, ",")).
				Str("defaultModel", summary.DefaultModel).
				Str("provisioning", string(summary.Provisioning)).
				Msg("configuration bootstrap finished")

			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&overrides.Gateway.ConfigDir, "config-dir", "", "gateway config directory (default ~/.gateway)")
	fl.StringVar(&overrides.Gateway.AuthToken, "gateway-token", "", "explicit gateway auth token")
	fl.StringVar(&overrides.Ollama.BaseURL, "ollama-base-url", "", "Ollama OpenAI-compatible endpoint")
	fl.StringVar(&overrides.Ollama.APIKey, "ollama-api-key", "", "Ollama API key")
	fl.StringVar(&overrides.Ollama.ModelID, "ollama-model", "", "Ollama model id to register and select")
	fl.StringVar(&overrides.Ollama.ContextWindow, "ollama-context-window", "", "context window for the registered model")

	return cmd
}

// redacted returns a copy of settings safe for debug logging.
func redacted(settings *config.Settings) config.Settings {
	clone := *settings
	if clone.Gateway.AuthToken != "" {
		clone.Gateway.AuthToken = "[redacted]"
	}
	if clone.Ollama.APIKey != "" {
		clone.Ollama.APIKey = "[redacted]"
	}

	return clone
}
