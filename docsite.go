// Package docsite provides the navigation registry and page metadata store
// behind a documentation site.
//
// The navigation model is a menu of top-level sections plus a subtree per
// section, keyed by level tag. Reference documentation (client libraries,
// platform tools, self-hosted servers) lives in a separate grouped registry.
// Page metadata (titles, descriptions, breadcrumbs) is persisted in SQLite
// or PostgreSQL.
//
// Basic usage:
//
//	client, err := docsite.New(
//	    docsite.WithSQLite(".docsite/data.db"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	sections := client.Navigation.TopLevelSections(ctx)
//	tree, err := client.Navigation.SectionTree(ctx, "auth")
//	groups := client.References.Groups(ctx)
package docsite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/jordienr/docsite/application/service"
	"github.com/jordienr/docsite/infrastructure/manifest"
	"github.com/jordienr/docsite/infrastructure/persistence"
	"github.com/jordienr/docsite/infrastructure/registry"
	"github.com/jordienr/docsite/internal/database"
)

// ErrNoDatabase indicates no database was configured.
var ErrNoDatabase = errors.New("docsite: no database configured, use WithSQLite or WithPostgres")

// Client is the main entry point for the docsite library.
//
// Access resources via struct fields:
//
//	client.Navigation.SectionTree(ctx, "auth")
//	client.References.Groups(ctx)
//	client.Pages.Get(ctx, "guides/auth")
type Client struct {
	Navigation *service.Navigation
	References *service.Reference
	Pages      *service.Page

	db      database.Database
	logger  *slog.Logger
	apiKeys []string
	closed  atomic.Bool
}

// New creates a new Client with the given options.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.dbURL == "" {
		return nil, ErrNoDatabase
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	menu := cfg.menu
	refs := cfg.references
	if cfg.manifestPath != "" {
		m, err := manifest.Load(cfg.manifestPath)
		if err != nil {
			return nil, fmt.Errorf("load manifest: %w", err)
		}
		loadedMenu, loadedRefs := m.Menu(), m.References()
		menu = &loadedMenu
		refs = &loadedRefs
	}
	if menu == nil || refs == nil {
		m, r := registry.Default()
		if menu == nil {
			menu = &m
		}
		if refs == nil {
			refs = &r
		}
	}
	if err := menu.Validate(); err != nil {
		return nil, fmt.Errorf("invalid navigation: %w", err)
	}
	if refs != nil {
		if err := refs.Validate(); err != nil {
			return nil, fmt.Errorf("invalid references: %w", err)
		}
	}

	ctx := context.Background()
	db, err := database.New(ctx, cfg.dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := persistence.AutoMigrate(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("auto migrate: %w", err), errClose)
	}

	navigation := service.NewNavigation(*menu)
	client := &Client{
		Navigation: navigation,
		References: service.NewReference(derefList(refs)),
		Pages:      service.NewPage(persistence.NewPageStore(db), navigation),
		db:         db,
		logger:     logger,
		apiKeys:    cfg.apiKeys,
	}
	return client, nil
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// APIKeys returns the configured write-protection API keys.
func (c *Client) APIKeys() []string {
	return c.apiKeys
}

// Close releases the client's resources. It is safe to call more than once.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	return c.db.Close()
}
