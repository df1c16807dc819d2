package config_test

import (
	"os"
	"testing"

	"github.com/dante-securestack/pom-mono-yauaa/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// customFileConfig exercises the full range of env.Parse tag behavior
// LoadEnv needs to round-trip correctly: scalars, a comma-separated
// slice, a quoted value, and an explicitly empty value.
type customFileConfig struct {
	Str      string   `env:"TEST_CUSTOM_STRING"`
	Int      int      `env:"TEST_CUSTOM_INT"`
	Bool     bool     `env:"TEST_CUSTOM_BOOL"`
	Array    []string `env:"TEST_CUSTOM_ARRAY" envSeparator:","`
	Quoted   string   `env:"TEST_CUSTOM_WITH_QUOTES"`
	Empty    string   `env:"TEST_CUSTOM_EMPTY"`
	Priority string   `env:"TEST_PRIORITY"`
}

type overrideFileConfig struct {
	Unique      string `env:"TEST_OVERRIDE_UNIQUE"`
	MultiEnv    string `env:"TEST_MULTIENV_FEATURE"`
	SharedValue string `env:"TEST_CUSTOM_STRING"`
}

type requiredFileConfig struct {
	Required string `env:"OVERRIDDEN_REQUIRED,required"`
}

func clearCustomLoaderEnv() {
	for _, k := range []string{
		"TEST_CUSTOM_STRING", "TEST_CUSTOM_INT", "TEST_CUSTOM_BOOL",
		"TEST_CUSTOM_ARRAY", "TEST_CUSTOM_WITH_QUOTES", "TEST_CUSTOM_EMPTY",
		"TEST_PRIORITY", "TEST_OVERRIDE_UNIQUE", "TEST_MULTIENV_FEATURE",
		"OVERRIDDEN_REQUIRED",
	} {
		os.Unsetenv(k)
	}
	config.ResetCache()
}

func TestLoadEnv_CustomPath(t *testing.T) {
	clearCustomLoaderEnv()

	err := config.LoadEnv("testdata/.env.custom")
	require.NoError(t, err, "LoadEnv should not return error with valid file")

	var cfg customFileConfig
	err = config.Load(&cfg)
	require.NoError(t, err, "Load should successfully parse config after LoadEnv")

	assert.Equal(t, "custom_value", cfg.Str)
	assert.Equal(t, 1234, cfg.Int)
	assert.True(t, cfg.Bool)
	assert.Equal(t, []string{"item1", "item2", "item3"}, cfg.Array)
	assert.Equal(t, "quoted value", cfg.Quoted)
	assert.Equal(t, "", cfg.Empty)
	assert.Equal(t, "custom_file_value", cfg.Priority)
}

func TestLoadEnv_MultiplePaths(t *testing.T) {
	clearCustomLoaderEnv()

	// Later files take precedence over earlier ones, so .env.override
	// wins for every key it also defines.
	err := config.LoadEnv("testdata/.env.custom", "testdata/.env.override")
	require.NoError(t, err, "LoadEnv should not return error with valid files")

	var custom customFileConfig
	require.NoError(t, config.Load(&custom))
	assert.Equal(t, "override_value", custom.Str)
	assert.Equal(t, 9999, custom.Int)
	assert.Equal(t, "override_value", custom.Priority)

	var override overrideFileConfig
	require.NoError(t, config.Load(&override))
	assert.Equal(t, "unique_to_override", override.Unique)
	assert.Equal(t, "enabled", override.MultiEnv)
	assert.Equal(t, "override_value", override.SharedValue)
}

func TestLoadEnv_NonExistentPath(t *testing.T) {
	err := config.LoadEnv("testdata/does_not_exist.env")
	require.Error(t, err, "LoadEnv should return error with non-existent file")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestMustLoadEnv(t *testing.T) {
	assert.NotPanics(t, func() {
		config.MustLoadEnv("testdata/.env.custom")
	}, "MustLoadEnv should not panic with valid file")

	assert.Panics(t, func() {
		config.MustLoadEnv("testdata/does_not_exist.env")
	}, "MustLoadEnv should panic with non-existent file")
}

func TestLoadEnv_WithRequiredConfig(t *testing.T) {
	clearCustomLoaderEnv()

	var cfg requiredFileConfig
	err := config.Load(&cfg)
	require.Error(t, err, "Load should error when a required field is missing")

	t.Setenv("OVERRIDDEN_REQUIRED", "required_value")

	// Load alone would still hit the once-guard left over from the failed
	// attempt above and never re-parse; ForceReloadConfig clears it first.
	var reloaded requiredFileConfig
	err = config.ForceReloadConfig(&reloaded)
	require.NoError(t, err, "ForceReloadConfig should succeed once the required value is set")
	assert.Equal(t, "required_value", reloaded.Required)
}

func TestLoadEnv_DefaultFile(t *testing.T) {
	tmpEnv := ".env"
	config.ResetCache()

	oldContent, readErr := os.ReadFile(tmpEnv)
	hadExistingFile := !os.IsNotExist(readErr)
	defer func() {
		os.Remove(tmpEnv)
		if hadExistingFile {
			_ = os.WriteFile(tmpEnv, oldContent, 0644)
		}
		os.Unsetenv("DEFAULT_ENV_VAR")
	}()

	require.NoError(t, os.WriteFile(tmpEnv, []byte("DEFAULT_ENV_VAR=default_from_temp"), 0644))
	os.Unsetenv("DEFAULT_ENV_VAR")

	// LoadEnv with no paths falls back to the default ".env" in the
	// working directory, same as the one-time load inside Load.
	require.NoError(t, config.LoadEnv())
	assert.Equal(t, "default_from_temp", os.Getenv("DEFAULT_ENV_VAR"))
}
