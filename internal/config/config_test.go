package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"range-remapper/internal/definition"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Workers)
	assert.False(t, cfg.Coalesce)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "auto", cfg.Format)
}

func TestEnvDefaults_MatchConfigDefaults(t *testing.T) {
	clearEnvVars(t)

	env, err := LoadFromEnv()
	require.NoError(t, err)

	cfg, err := env.ToConfig()
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("RANGEMAP_WORKERS", "8")
	t.Setenv("RANGEMAP_COALESCE", "true")
	t.Setenv("RANGEMAP_LOG_LEVEL", "debug")
	t.Setenv("RANGEMAP_LOG_FORMAT", "json")
	t.Setenv("RANGEMAP_FORMAT", "yaml")

	env, err := LoadFromEnv()
	require.NoError(t, err)

	cfg, err := env.ToConfig()
	require.NoError(t, err)

	assert.Equal(t, Config{
		Workers:   8,
		Coalesce:  true,
		LogLevel:  "DEBUG",
		LogFormat: LogFormatJSON,
		Format:    definition.FormatYAML,
	}, cfg)
}

func TestLoadFromEnv_BadValue(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("RANGEMAP_WORKERS", "many")

	_, err := LoadFromEnv()
	require.Error(t, err)
}

func TestToConfig_Invalid(t *testing.T) {
	base := EnvConfig{Workers: 1, LogLevel: "INFO", LogFormat: "console", Format: "auto"}

	negative := base
	negative.Workers = -1
	_, err := negative.ToConfig()
	require.Error(t, err)

	badLog := base
	badLog.LogFormat = "xml"
	_, err = badLog.ToConfig()
	require.Error(t, err)

	badFormat := base
	badFormat.Format = "toml"
	_, err = badFormat.ToConfig()
	require.Error(t, err)
}

func TestParseLogFormat(t *testing.T) {
	for in, want := range map[string]LogFormat{
		"":        LogFormatConsole,
		"console": LogFormatConsole,
		"Pretty":  LogFormatConsole,
		"JSON":    LogFormatJSON,
	} {
		got, err := ParseLogFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnvVars(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("RANGEMAP_WORKERS=4\nRANGEMAP_COALESCE=true\n"), 0o600))

	// godotenv writes straight into the process environment.
	t.Cleanup(func() {
		_ = os.Unsetenv("RANGEMAP_WORKERS")
		_ = os.Unsetenv("RANGEMAP_COALESCE")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.Coalesce)
}

func TestLoad_DotEnvDoesNotOverrideEnv(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("RANGEMAP_WORKERS", "2")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("RANGEMAP_WORKERS=4\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

// clearEnvVars unsets every variable envconfig may read, prefixed or not,
// and restores them when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()

	for _, name := range []string{"WORKERS", "COALESCE", "LOG_LEVEL", "LOG_FORMAT", "FORMAT"} {
		for _, key := range []string{EnvPrefix + "_" + name, name} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}
	}
}
