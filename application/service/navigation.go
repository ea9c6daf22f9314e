// Package service holds the application services that sit between the
// transport layers and the domain model.
package service

import (
	"context"

	"github.com/jordienr/docsite/domain/nav"
)

// Navigation serves the sidebar navigation: the top-level sections and the
// per-level subtrees.
type Navigation struct {
	menu nav.Menu
}

// NewNavigation creates a Navigation service over a validated menu.
func NewNavigation(menu nav.Menu) *Navigation {
	return &Navigation{menu: menu}
}

// TopLevelSections returns the sections shown on the home sidebar, in
// declared order.
func (n *Navigation) TopLevelSections(_ context.Context) []nav.Item {
	return n.menu.Sections()
}

// SectionTree returns the full subtree for the given level tag. An unknown
// level is a configuration error and returns nav.ErrLevelNotFound.
func (n *Navigation) SectionTree(_ context.Context, level string) (nav.Item, error) {
	root, ok := n.menu.Section(level)
	if !ok {
		return nav.Item{}, nav.ErrLevelNotFound
	}
	return root, nil
}

// Levels returns every registered level tag in registration order.
func (n *Navigation) Levels(_ context.Context) []string {
	return n.menu.Levels()
}

// Menu exposes the underlying menu for callers that need tree traversal,
// such as breadcrumb derivation.
func (n *Navigation) Menu() nav.Menu {
	return n.menu
}
