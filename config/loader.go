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

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoaderOptions configures Load.
type LoaderOptions struct {
	// ConfigDir is the directory Load looks for config.yaml in. Ignored
	// when Path is set. Defaults to "config".
	ConfigDir string
	// Path, if set, names the config file directly and skips ConfigDir.
	Path string
	// SkipEnvSubstitution disables ${VAR} substitution of loaded values.
	SkipEnvSubstitution bool
}

// DefaultLoaderOptions returns the default loader options.
func DefaultLoaderOptions() LoaderOptions {
	return LoaderOptions{ConfigDir: "config"}
}

// Load reads this module's config file and layers CRYPTOCORE_* environment
// overrides on top. There is exactly one file name to look for: unlike a
// service with a dev/staging/prod fleet, the three sections here (keystore
// location, Argon2 cost, logging) are operator-tuned, not
// environment-tuned, so there is no per-environment file cascade to
// resolve — a missing file is not an error, it just means "use defaults".
func Load(opts ...LoaderOptions) (*Config, error) {
	options := DefaultLoaderOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	path := options.Path
	if path == "" {
		path = filepath.Join(options.ConfigDir, "config.yaml")
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		defaults := defaultConfig()
		cfg = &defaults
	}

	if !options.SkipEnvSubstitution {
		SubstituteEnvVarsInConfig(cfg)
	}
	applyEnvironmentOverrides(cfg)

	return cfg, nil
}

// applyEnvironmentOverrides lets CRYPTOCORE_* environment variables take
// priority over both the file and the built-in defaults.
func applyEnvironmentOverrides(cfg *Config) {
	if ksDir := os.Getenv("CRYPTOCORE_KEYSTORE_DIR"); ksDir != "" {
		cfg.KeyStore.Directory = ksDir
	}
	if logLevel := os.Getenv("CRYPTOCORE_LOG_LEVEL"); logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat := os.Getenv("CRYPTOCORE_LOG_FORMAT"); logFormat != "" {
		cfg.Logging.Format = logFormat
	}
}

// MustLoad loads configuration or panics on error.
func MustLoad(opts ...LoaderOptions) *Config {
	cfg, err := Load(opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}
