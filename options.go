package docsite

import (
	"fmt"
	"log/slog"

	"github.com/jordienr/docsite/domain/nav"
	"github.com/jordienr/docsite/domain/reference"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	dbURL        string
	manifestPath string
	menu         *nav.Menu
	references   *reference.List
	logger       *slog.Logger
	apiKeys      []string
}

func newClientConfig() *clientConfig {
	return &clientConfig{}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite configures SQLite as the page metadata database.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.dbURL = fmt.Sprintf("sqlite:///%s", path)
	}
}

// WithPostgres configures PostgreSQL as the page metadata database.
func WithPostgres(dsn string) Option {
	return func(c *clientConfig) {
		c.dbURL = dsn
	}
}

// WithDatabaseURL configures the database from a URL
// (sqlite:///path or postgres://...).
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) {
		c.dbURL = url
	}
}

// WithManifestFile loads navigation and references from a YAML manifest
// instead of the built-in registry. Loading and validation happen in New;
// a malformed manifest fails construction.
func WithManifestFile(path string) Option {
	return func(c *clientConfig) {
		c.manifestPath = path
	}
}

// WithMenu uses the given menu instead of the built-in registry.
// The menu is validated in New. The built-in references stay in place
// unless WithReferences is also given.
func WithMenu(menu nav.Menu) Option {
	return func(c *clientConfig) {
		c.menu = &menu
	}
}

// WithReferences uses the given reference registry instead of the built-in one.
func WithReferences(list reference.List) Option {
	return func(c *clientConfig) {
		c.references = &list
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithAPIKeys configures write-protection keys for the HTTP API. Mutating
// endpoints require one of these keys; an empty list leaves writes open.
func WithAPIKeys(keys ...string) Option {
	return func(c *clientConfig) {
		c.apiKeys = keys
	}
}

func derefList(l *reference.List) reference.List {
	if l == nil {
		return reference.NewList(nil)
	}
	return *l
}
