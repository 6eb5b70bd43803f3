// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later

// Package config loads the ambient settings this module's callers need: how
// hard to run the Argon2id export KDF, where exported identity blobs live on
// disk, and how the structured logger should behave. It carries no
// transport, registry, or discovery settings — those belong to a hosting
// layer, not the cryptographic core.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration structure. All three sections are
// value types rather than pointers: unlike a sprawling service config where
// whole subsystems can be absent, every deployment of this module needs a
// keystore location, an Argon2 cost, and a logging sink, so there is no
// "section omitted" state worth distinguishing from "section zero-valued".
type Config struct {
	Environment string         `yaml:"environment" json:"environment"`
	KeyStore    KeyStoreConfig `yaml:"keystore" json:"keystore"`
	Argon2      Argon2Config   `yaml:"argon2" json:"argon2"`
	Logging     LoggingConfig  `yaml:"logging" json:"logging"`
}

// KeyStoreConfig controls where exported user and instance blobs are read
// from and written to by a hosting CLI or service.
type KeyStoreConfig struct {
	Directory     string `yaml:"directory" json:"directory"`
	PassphraseEnv string `yaml:"passphrase_env" json:"passphrase_env"`
}

// Argon2Config mirrors primitive.Argon2Params so cost parameters can be
// tuned per deployment without a code change.
type Argon2Config struct {
	TimeCost    uint32 `yaml:"time_cost" json:"time_cost"`
	MemoryKiB   uint32 `yaml:"memory_kib" json:"memory_kib"`
	Parallelism uint8  `yaml:"parallelism" json:"parallelism"`
}

// LoggingConfig controls the structured logger's verbosity and sink.
type LoggingConfig struct {
	Level    string `yaml:"level" json:"level"`
	Format   string `yaml:"format" json:"format"`
	Output   string `yaml:"output" json:"output"`
	FilePath string `yaml:"file_path" json:"file_path"`
}

// defaultConfig returns the built-in configuration used whenever a value is
// left unset on disk or no config file exists at all.
func defaultConfig() Config {
	return Config{
		Environment: GetEnvironment(),
		KeyStore: KeyStoreConfig{
			Directory: ".cryptocore/keys",
		},
		Argon2: Argon2Config{
			TimeCost:    2,
			MemoryKiB:   19 * 1024,
			Parallelism: 1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// LoadFromFile loads configuration from a YAML or JSON file, trying YAML
// first since that's the format the reference deployment ships, and fills
// any field left zero by the file with the built-in defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file (tried YAML and JSON): %w", err)
		}
	}
	setDefaults(&cfg)
	return &cfg, nil
}

// SaveToFile saves configuration to a file, choosing format by extension.
func SaveToFile(cfg *Config, path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".json") {
		data, err = json.MarshalIndent(cfg, "", "  ")
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// setDefaults fills any field a file left zero-valued with this module's
// defaults. Because Config holds value types, not pointers, this is just a
// handful of direct field checks — there is no "section is nil" branch to
// guard, unlike a config with optional subsystems.
func setDefaults(cfg *Config) {
	d := defaultConfig()

	if cfg.Environment == "" {
		cfg.Environment = d.Environment
	}
	if cfg.KeyStore.Directory == "" {
		cfg.KeyStore.Directory = d.KeyStore.Directory
	}
	if cfg.Argon2.TimeCost == 0 {
		cfg.Argon2.TimeCost = d.Argon2.TimeCost
	}
	if cfg.Argon2.MemoryKiB == 0 {
		cfg.Argon2.MemoryKiB = d.Argon2.MemoryKiB
	}
	if cfg.Argon2.Parallelism == 0 {
		cfg.Argon2.Parallelism = d.Argon2.Parallelism
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = d.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = d.Logging.Format
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = d.Logging.Output
	}
}
