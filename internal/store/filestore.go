// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maksim Voronkov

// Package store persists the gateway configuration document as a single
// JSON file under the configured directory.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/mvoronkov/gateway-init/internal/configtree"
	"github.com/mvoronkov/gateway-init/internal/logger"
)

// ConfigFileName is the well-known file name of the gateway configuration
// document inside the config directory.
const ConfigFileName = "gateway.json"

// FileStore loads and saves the gateway configuration document. One process
// run performs at most one Load and one Save; no locking is done.
type FileStore struct {
	dir string
	log *logger.Logger
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string, log *logger.Logger) *FileStore {
	return &FileStore{dir: dir, log: log}
}

// Path returns the full path of the configuration file.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, ConfigFileName)
}

// EnsureDirectory creates the config directory tree if absent. It is
// idempotent and succeeds when the directory already exists.
func (s *FileStore) EnsureDirectory() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	return nil
}

// Load reads the configuration document. A missing file yields an empty
// tree. An unreadable or malformed file is downgraded to an empty tree with
// a warning: prior configuration is best-effort, never a startup blocker.
func (s *FileStore) Load() configtree.Tree {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug().Str("path", s.Path()).Msg("no existing configuration, starting fresh")
			return configtree.Tree{}
		}

		s.log.Warn().Err(err).Str("path", s.Path()).Msg("cannot read existing configuration, starting fresh")
		return configtree.Tree{}
	}

	var tree configtree.Tree
	if err = json.Unmarshal(data, &tree); err != nil {
		s.log.Warn().Err(err).Str("path", s.Path()).Msg("existing configuration is not valid JSON, starting fresh")
		return configtree.Tree{}
	}

	if tree == nil {
		tree = configtree.Tree{}
	}

	return tree
}

// Save serializes tree as indented JSON and writes it in one atomic rename,
// so a concurrent reader sees either the previous or the new document.
func (s *FileStore) Save(tree configtree.Tree) error {
	payload, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}
	payload = append(payload, '\n')

	if err = renameio.WriteFile(s.Path(), payload, 0o600); err != nil {
		return fmt.Errorf("write configuration file: %w", err)
	}

	return nil
}
