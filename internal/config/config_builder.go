// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Voronkov

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type settingsBuilder struct {
	settings []*Settings
	err      error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		settings: make([]*Settings, 0, 3),
	}
}

func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building settings: %w", b.err)
	}

	settings := new(Settings)
	for _, s := range b.settings {
		if err := mergo.Merge(settings, s); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	return settings, nil
}

func (b *settingsBuilder) withOverrides(overrides *Settings) *settingsBuilder {
	if overrides != nil {
		b.settings = append(b.settings, overrides)
	}

	return b
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	envSettings := &Settings{}
	if err := parseEnv(envSettings); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.settings = append(b.settings, envSettings)
	return b
}

func (b *settingsBuilder) withDefaults() *settingsBuilder {
	b.settings = append(b.settings, Defaults())
	return b
}
