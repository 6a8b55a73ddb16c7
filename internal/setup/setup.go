// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Voronkov

// Package setup runs the configuration bootstrap pipeline: ensure the
// config directory exists, load the document, apply required and default
// settings, provision the optional Ollama provider, and save the result.
//
// The pipeline is best-effort end to end. Whatever fails, the downstream
// gateway must still be allowed to start, so every failure degrades to
// "proceed without configuration changes" and is only logged.
package setup

import (
	"sort"

	"github.com/google/uuid"

	"github.com/mvoronkov/gateway-init/internal/config"
	"github.com/mvoronkov/gateway-init/internal/configtree"
	"github.com/mvoronkov/gateway-init/internal/logger"
	"github.com/mvoronkov/gateway-init/internal/provision"
	"github.com/mvoronkov/gateway-init/internal/store"
)

// Setup sequences one bootstrap run over a single configuration document.
type Setup struct {
	settings *config.Settings
	store    *store.FileStore
	log      *logger.Logger
}

// New returns a Setup operating on the document managed by st.
func New(settings *config.Settings, st *store.FileStore, log *logger.Logger) *Setup {
	return &Setup{settings: settings, store: st, log: log}
}

// Summary is the deterministic description of the document state after a
// run.
type Summary struct {
	// ConfigPath is the location of the configuration file.
	ConfigPath string
	// Applied reports whether the document was written.
	Applied bool
	// Providers lists the configured provider names, sorted.
	Providers []string
	// DefaultModel is the resolved default model selector, if any.
	DefaultModel string
	// Provisioning is the outcome of the Ollama provisioning step.
	Provisioning provision.Status
}

// Run executes the bootstrap pipeline once and reports a summary. It never
// fails: filesystem errors and panics alike are logged and collapsed into a
// summary with Applied=false.
func (s *Setup) Run() (summary Summary) {
	summary = Summary{ConfigPath: s.store.Path()}

	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Any("panic", r).Msg("configuration bootstrap failed, gateway will start with its existing configuration")
		}
	}()

	if err := s.store.EnsureDirectory(); err != nil {
		s.log.Error().Err(err).Msg("cannot create config directory, skipping bootstrap")
		return summary
	}

	tree := s.store.Load()

	configtree.ForceMerge(tree, gatewayDefaults())
	configtree.PreserveMerge(tree, agentDefaults())
	s.ensureAuthToken(tree)

	result := provision.Apply(tree, provision.Inputs{
		BaseURL:       s.settings.Ollama.BaseURL,
		APIKey:        s.settings.Ollama.APIKey,
		ModelID:       s.settings.Ollama.ModelID,
		ContextWindow: s.settings.Ollama.ContextWindowTokens(),
	}, s.log)

	if err := s.store.Save(tree); err != nil {
		s.log.Error().Err(err).Msg("cannot write configuration, gateway will start with its existing configuration")
		return summary
	}

	summary.Applied = true
	summary.Providers = providerNames(tree)
	summary.DefaultModel = configtree.LookupString(tree, "agents", "defaults", "model", "primary")
	summary.Provisioning = result.Status
	return summary
}

// gatewayDefaults are required settings, force-merged so a prior run or a
// manual edit cannot disable local gateway access.
func gatewayDefaults() configtree.Tree {
	return configtree.Tree{
		"gateway": configtree.Tree{
			"mode": "local",
			"bind": "lan",
			"controlUi": configtree.Tree{
				"allowInsecureAuth": true,
			},
			"auth": configtree.Tree{
				"mode": "token",
			},
		},
	}
}

// agentDefaults are the default agent tool policy, preserve-merged so user
// customizations always win.
func agentDefaults() configtree.Tree {
	return configtree.Tree{
		"agents": configtree.Tree{
			"defaults": configtree.Tree{
				"tools": configtree.Tree{
					"profile":  "standard",
					"allow":    []any{"read", "write", "edit", "exec", "web", "browser"},
					"exec":     configtree.Tree{"host": "gateway"},
					"ask":      "off",
					"security": "standard",
				},
			},
		},
	}
}

// ensureAuthToken fills gateway.auth.token when absent: the forced auth
// mode is "token", and a gateway without one would be unreachable after
// boot. An operator-supplied token wins over generation; a token already in
// the document wins over both.
func (s *Setup) ensureAuthToken(tree configtree.Tree) {
	auth := configtree.EnsureMap(tree, "gateway", "auth")
	if _, ok := auth["token"]; ok {
		return
	}

	token := s.settings.Gateway.AuthToken
	if token == "" {
		token = uuid.NewString()
		s.log.Info().Msg("generated gateway auth token")
	}

	auth["token"] = token
}

func providerNames(tree configtree.Tree) []string {
	value, ok := configtree.Lookup(tree, "models", "providers")
	if !ok {
		return nil
	}

	providers, ok := value.(map[string]any)
	if !ok {
		return nil
	}

	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
