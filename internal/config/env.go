package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// DataDir is the data directory path.
	// Env: DATA_DIR
	// Default: ~/.docsite
	DataDir string `envconfig:"DATA_DIR"`

	// DBURL is the database connection URL.
	// Env: DB_URL
	// Default: sqlite:///{data_dir}/docsite.db
	DBURL string `envconfig:"DB_URL"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// ManifestPath is the navigation manifest to load instead of the
	// built-in registry.
	// Env: NAV_MANIFEST
	ManifestPath string `envconfig:"NAV_MANIFEST"`

	// BaseURL is the public base URL of the documentation site.
	// Env: BASE_URL
	BaseURL string `envconfig:"BASE_URL"`

	// CORSOrigins is a comma-separated list of allowed CORS origins.
	// Env: CORS_ORIGINS
	CORSOrigins string `envconfig:"CORS_ORIGINS"`

	// APIKeys is a comma-separated list of valid API keys.
	// Env: API_KEYS
	APIKeys string `envconfig:"API_KEYS"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// LoadFromEnvWithPrefix loads configuration with a custom prefix.
// For example, prefix "DOCSITE" would require DOCSITE_DATA_DIR instead of
// DATA_DIR.
func LoadFromEnvWithPrefix(prefix string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()

	if e.Host != "" {
		cfg = cfg.Apply(WithHost(e.Host))
	}
	if e.Port != 0 {
		cfg = cfg.Apply(WithPort(e.Port))
	}
	if e.DataDir != "" {
		cfg = cfg.Apply(WithDataDir(e.DataDir))
	}
	if e.DBURL != "" {
		cfg = cfg.Apply(WithDBURL(e.DBURL))
	}
	if e.LogLevel != "" {
		cfg = cfg.Apply(WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		cfg = cfg.Apply(WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	if e.ManifestPath != "" {
		cfg = cfg.Apply(WithManifestPath(e.ManifestPath))
	}
	if e.BaseURL != "" {
		cfg = cfg.Apply(WithBaseURL(e.BaseURL))
	}
	if e.CORSOrigins != "" {
		cfg = cfg.Apply(WithCORSOrigins(ParseList(e.CORSOrigins)))
	}
	if e.APIKeys != "" {
		cfg = cfg.Apply(WithAPIKeys(ParseList(e.APIKeys)))
	}

	return cfg
}

func parseLogFormat(s string) LogFormat {
	if strings.EqualFold(s, string(LogFormatJSON)) {
		return LogFormatJSON
	}
	return LogFormatPretty
}
