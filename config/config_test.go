package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromFileAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("environment: staging\n"), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, "staging", cfg.Environment)
	require.Equal(t, uint32(2), cfg.Argon2.TimeCost)
	require.Equal(t, uint32(19*1024), cfg.Argon2.MemoryKiB)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, ".cryptocore/keys", cfg.KeyStore.Directory)
}

func TestLoadFromFileRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: valid: yaml: ]["), 0o644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := &Config{Environment: "production"}
	setDefaults(cfg)
	cfg.Logging.Level = "debug"

	require.NoError(t, SaveToFile(cfg, path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, "production", got.Environment)
	require.Equal(t, "debug", got.Logging.Level)
}

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("CRYPTOCORE_KEYSTORE_DIR_TEST", "/tmp/keys")

	require.Equal(t, "/tmp/keys", SubstituteEnvVars("${CRYPTOCORE_KEYSTORE_DIR_TEST}"))
	require.Equal(t, "fallback", SubstituteEnvVars("${NOT_SET_XYZ:fallback}"))
}

func TestSubstituteEnvVarsInConfigCoversAllStringFields(t *testing.T) {
	t.Setenv("CRYPTOCORE_TEST_DIR", "/var/lib/cryptocore")

	cfg := &Config{
		KeyStore: KeyStoreConfig{Directory: "${CRYPTOCORE_TEST_DIR}"},
		Logging:  LoggingConfig{Level: "${NOT_SET_XYZ:warn}"},
	}
	SubstituteEnvVarsInConfig(cfg)

	require.Equal(t, "/var/lib/cryptocore", cfg.KeyStore.Directory)
	require.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadFallsBackToDefaultsWhenFileMissing(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(LoaderOptions{ConfigDir: dir})
	require.NoError(t, err)
	require.NotEmpty(t, cfg.Environment)
	require.Equal(t, uint32(2), cfg.Argon2.TimeCost)
	require.Equal(t, ".cryptocore/keys", cfg.KeyStore.Directory)
}

func TestLoadHonorsExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o644))

	cfg, err := Load(LoaderOptions{Path: path})
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestApplyEnvironmentOverridesTakesPriority(t *testing.T) {
	t.Setenv("CRYPTOCORE_LOG_LEVEL", "error")

	cfg := &Config{}
	setDefaults(cfg)
	applyEnvironmentOverrides(cfg)
	require.Equal(t, "error", cfg.Logging.Level)
}

func TestIsProductionAndDevelopment(t *testing.T) {
	t.Setenv("CRYPTOCORE_ENV", "production")
	require.True(t, IsProduction())
	require.False(t, IsDevelopment())

	t.Setenv("CRYPTOCORE_ENV", "local")
	require.False(t, IsProduction())
	require.True(t, IsDevelopment())
}
