package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jordienr/docsite/domain/page"
	"github.com/jordienr/docsite/internal/database"
)

// PageStore persists page metadata.
type PageStore interface {
	Upsert(ctx context.Context, meta page.Meta) (page.Meta, error)
	Get(ctx context.Context, slug string) (page.Meta, error)
	List(ctx context.Context) ([]page.Meta, error)
	Delete(ctx context.Context, slug string) error
}

// Page manages per-page metadata. Reads derive a breadcrumb trail from the
// navigation tree when the page itself does not declare one.
type Page struct {
	pages      PageStore
	navigation *Navigation
}

// NewPage creates a Page service.
func NewPage(pages PageStore, navigation *Navigation) *Page {
	return &Page{pages: pages, navigation: navigation}
}

// Get returns the metadata for a slug. If the stored metadata has no
// breadcrumb, one is derived from the page's position in the navigation tree.
func (p *Page) Get(ctx context.Context, slug string) (page.Meta, error) {
	meta, err := p.pages.Get(ctx, slug)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return page.Meta{}, fmt.Errorf("%q: %w", slug, ErrPageNotFound)
		}
		return page.Meta{}, fmt.Errorf("get page: %w", err)
	}
	return p.withBreadcrumb(meta), nil
}

// Upsert creates or updates the metadata for a slug.
func (p *Page) Upsert(ctx context.Context, meta page.Meta) (page.Meta, error) {
	if meta.Slug() == "" {
		return page.Meta{}, errors.New("page slug is required")
	}
	if meta.Title() == "" {
		return page.Meta{}, errors.New("page title is required")
	}
	stored, err := p.pages.Upsert(ctx, meta)
	if err != nil {
		return page.Meta{}, fmt.Errorf("upsert page: %w", err)
	}
	return stored, nil
}

// List returns all stored page metadata ordered by slug.
func (p *Page) List(ctx context.Context) ([]page.Meta, error) {
	metas, err := p.pages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	for i, m := range metas {
		metas[i] = p.withBreadcrumb(m)
	}
	return metas, nil
}

// Delete removes the metadata for a slug.
func (p *Page) Delete(ctx context.Context, slug string) error {
	if err := p.pages.Delete(ctx, slug); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fmt.Errorf("%q: %w", slug, ErrPageNotFound)
		}
		return fmt.Errorf("delete page: %w", err)
	}
	return nil
}

func (p *Page) withBreadcrumb(meta page.Meta) page.Meta {
	if len(meta.Breadcrumb()) > 0 {
		return meta
	}
	menu := p.navigation.Menu()
	href := "/" + strings.TrimPrefix(meta.Slug(), "/")
	for _, level := range menu.Levels() {
		if trail, ok := menu.Breadcrumb(level, href); ok {
			return meta.WithDerivedBreadcrumb(trail)
		}
	}
	return meta
}
