// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Voronkov

// Package provision derives a local Ollama provider entry from connection
// parameters and inserts it into the gateway configuration tree,
// idempotently and without disturbing pre-existing sibling data.
package provision

import (
	"github.com/mvoronkov/gateway-init/internal/configtree"
	"github.com/mvoronkov/gateway-init/internal/logger"
)

// ProviderName is the key under models.providers for the local Ollama
// provider.
const ProviderName = "ollama"

// apiModeCompletions is the only API mode this provider works with. The
// responses mode silently returns empty output from Ollama's
// OpenAI-compatible endpoint, so it is re-asserted on every run even over a
// manually edited entry.
const apiModeCompletions = "openai-completions"

// maxTokensCap bounds the derived per-request token limit regardless of
// context window size.
const maxTokensCap = 8192

// Status reports the outcome of one provisioning attempt.
type Status string

const (
	// StatusProvisioned means the provider entry was written.
	StatusProvisioned Status = "provisioned"
	// StatusMissingAPIKey means the base URL was set without an API key.
	StatusMissingAPIKey Status = "missing api key"
	// StatusMissingBaseURL means the API key was set without a base URL.
	StatusMissingBaseURL Status = "missing base url"
	// StatusNotConfigured means no connection parameters were supplied.
	StatusNotConfigured Status = "not configured"
)

// Inputs carries the connection parameters driving provisioning. BaseURL
// and APIKey are the paired enablers; ModelID is optional; ContextWindow
// must already be resolved to a positive token count.
type Inputs struct {
	BaseURL       string
	APIKey        string
	ModelID       string
	ContextWindow int
}

// Result describes what a call to Apply did to the tree.
type Result struct {
	Status Status
	// ModelAdded reports whether a new model entry was appended.
	ModelAdded bool
	// Selector is the default model selector applied, if any.
	Selector string
}

// Apply provisions the Ollama provider entry on tree according to in.
//
// Nothing is written unless both BaseURL and APIKey are set; in particular a
// stale provider entry from an earlier fully-configured run is left in
// place, not removed. When only one of the pair is set an advisory is
// logged and provisioning is skipped.
func Apply(tree configtree.Tree, in Inputs, log *logger.Logger) Result {
	switch {
	case in.BaseURL == "" && in.APIKey == "":
		log.Debug().Msg("ollama provisioning not configured")
		return Result{Status: StatusNotConfigured}
	case in.APIKey == "":
		log.Warn().Msg("OLLAMA_BASE_URL is set but OLLAMA_API_KEY is not, skipping provider provisioning")
		return Result{Status: StatusMissingAPIKey}
	case in.BaseURL == "":
		log.Warn().Msg("OLLAMA_API_KEY is set but OLLAMA_BASE_URL is not, skipping provider provisioning")
		return Result{Status: StatusMissingBaseURL}
	}

	entry := ensureProviderEntry(tree, in.BaseURL, in.APIKey)

	result := Result{Status: StatusProvisioned}
	if in.ModelID != "" {
		result.ModelAdded = ensureModelEntry(entry, in.ModelID, in.ContextWindow)
		result.Selector = selectDefaultModel(tree, in.ModelID)
	}

	log.Info().
		Str("provider", ProviderName).
		Str("baseUrl", in.BaseURL).
		Str("model", in.ModelID).
		Bool("modelAdded", result.ModelAdded).
		Msg("provisioned ollama provider")

	return result
}

// ensureProviderEntry writes the provider entry under models.providers. The
// required connection fields are re-asserted on every run; any other fields
// of a pre-existing entry (custom headers, extra models, manual tweaks)
// survive untouched.
func ensureProviderEntry(tree configtree.Tree, baseURL, apiKey string) configtree.Tree {
	providers := configtree.EnsureMap(tree, "models", "providers")

	entry := configtree.Tree{}
	if previous, ok := providers[ProviderName].(map[string]any); ok {
		for key, value := range previous {
			entry[key] = value
		}
	}

	entry["baseUrl"] = baseURL
	entry["apiKey"] = apiKey
	entry["api"] = apiModeCompletions
	entry["authHeader"] = false

	providers[ProviderName] = entry
	return entry
}

// ensureModelEntry appends a model entry for modelID unless one with the
// same id already exists. Existing entries are never mutated or removed.
// Reports whether an entry was appended.
func ensureModelEntry(entry configtree.Tree, modelID string, contextWindow int) bool {
	models, _ := entry["models"].([]any)
	for _, m := range models {
		model, ok := m.(map[string]any)
		if !ok {
			continue
		}
		if id, _ := model["id"].(string); id == modelID {
			return false
		}
	}

	entry["models"] = append(models, configtree.Tree{
		"id":            modelID,
		"name":          "Ollama - " + modelID,
		"reasoning":     false,
		"input":         []any{"text"},
		"cost":          configtree.Tree{"input": 0, "output": 0},
		"contextWindow": contextWindow,
		"maxTokens":     deriveMaxTokens(contextWindow),
	})

	return true
}

// selectDefaultModel points agents.defaults.model.primary at the
// environment-supplied model. The env var is operator intent, so it wins
// over any previously persisted selector. Returns the selector applied.
func selectDefaultModel(tree configtree.Tree, modelID string) string {
	selector := ProviderName + "/" + modelID

	model := configtree.EnsureMap(tree, "agents", "defaults", "model")
	if current, _ := model["primary"].(string); current != selector {
		model["primary"] = selector
	}

	return selector
}

func deriveMaxTokens(contextWindow int) int {
	if derived := contextWindow / 4; derived < maxTokensCap {
		return derived
	}

	return maxTokensCap
}
