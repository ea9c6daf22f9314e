package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMeta(t *testing.T) {
	m := NewMeta("/guides/database", "Database",
		WithID("database"),
		WithSubtitle("Postgres for everyone"),
		WithDescription("Manage your Postgres database"),
	)
	assert.Equal(t, "/guides/database", m.Slug())
	assert.Equal(t, "Database", m.Title())
	assert.Equal(t, "database", m.ID())
	assert.Equal(t, "Postgres for everyone", m.Subtitle())
	assert.False(t, m.HideToc())
}

func TestMeta_SidebarLabelFallsBackToTitle(t *testing.T) {
	m := NewMeta("/guides/auth", "Auth")
	assert.Equal(t, "Auth", m.SidebarLabel())

	m = NewMeta("/guides/auth", "Auth", WithSidebarLabel("Authentication"))
	assert.Equal(t, "Authentication", m.SidebarLabel())
}

func TestMeta_WithDerivedBreadcrumb(t *testing.T) {
	m := NewMeta("/guides/auth/row-level-security", "Row Level Security")
	assert.Empty(t, m.Breadcrumb())

	derived := m.WithDerivedBreadcrumb([]string{"Auth", "Authorization", "Row Level Security"})
	assert.Equal(t, []string{"Auth", "Authorization", "Row Level Security"}, derived.Breadcrumb())
	assert.Empty(t, m.Breadcrumb(), "original is unchanged")
	assert.True(t, derived.BreadcrumbDerived())
	assert.False(t, m.BreadcrumbDerived())
}

func TestMeta_AuthoredBreadcrumbIsNotDerived(t *testing.T) {
	m := NewMeta("/guides/auth", "Auth", WithBreadcrumb("Guides", "Auth"))

	assert.Equal(t, []string{"Guides", "Auth"}, m.Breadcrumb())
	assert.False(t, m.BreadcrumbDerived())
}
