package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppConfig_Defaults(t *testing.T) {
	cfg := NewAppConfig()
	assert.Equal(t, DefaultHost, cfg.Host())
	assert.Equal(t, DefaultPort, cfg.Port())
	assert.Equal(t, LogFormatPretty, cfg.LogFormat())
	assert.Contains(t, cfg.DBURL(), "docsite.db")
	assert.Empty(t, cfg.ManifestPath())
}

func TestAppConfig_Addr(t *testing.T) {
	cfg := NewAppConfigWithOptions(WithHost("127.0.0.1"), WithPort(9000))
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr())
}

func TestWithDataDir_UpdatesDefaultDBURL(t *testing.T) {
	cfg := NewAppConfigWithOptions(WithDataDir("/tmp/docs"))
	assert.Equal(t, "sqlite:///"+filepath.Join("/tmp/docs", "docsite.db"), cfg.DBURL())
}

func TestWithDataDir_KeepsExplicitDBURL(t *testing.T) {
	cfg := NewAppConfigWithOptions(
		WithDBURL("postgres://u:p@localhost/docs"),
		WithDataDir("/tmp/docs"),
	)
	assert.Equal(t, "postgres://u:p@localhost/docs", cfg.DBURL())
}

func TestWithBaseURL_TrimsTrailingSlash(t *testing.T) {
	cfg := NewAppConfigWithOptions(WithBaseURL("https://docs.example.com/"))
	assert.Equal(t, "https://docs.example.com", cfg.BaseURL())
}

func TestParseList(t *testing.T) {
	assert.Empty(t, ParseList(""))
	assert.Equal(t, []string{"a", "b"}, ParseList("a, b"))
	assert.Equal(t, []string{"key1"}, ParseList("key1,,  "))
}

func TestEnvConfig_ToAppConfig(t *testing.T) {
	env := EnvConfig{
		Host:         "localhost",
		Port:         3000,
		LogLevel:     "DEBUG",
		LogFormat:    "json",
		ManifestPath: "/etc/docsite/nav.yaml",
		CORSOrigins:  "https://docs.example.com,https://example.com",
		APIKeys:      "secret1,secret2",
	}
	cfg := env.ToAppConfig()

	assert.Equal(t, "localhost", cfg.Host())
	assert.Equal(t, 3000, cfg.Port())
	assert.Equal(t, "DEBUG", cfg.LogLevel())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat())
	assert.Equal(t, "/etc/docsite/nav.yaml", cfg.ManifestPath())
	assert.Len(t, cfg.CORSOrigins(), 2)
	assert.Len(t, cfg.APIKeys(), 2)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Port())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat())
}
