package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jordienr/docsite/domain/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMenu(t *testing.T) nav.Menu {
	t.Helper()
	m := nav.NewMenu([]nav.Item{
		nav.NewItem("Home", "/", nav.WithLevel("home")),
		nav.NewItem("Auth", "/guides/auth", nav.WithLevel("auth")),
	})
	m = m.WithSubtree("home", nav.NewHeader("Home", nav.WithItems(
		nav.NewItem("Home", "/"),
	)))
	m = m.WithSubtree("auth", nav.NewHeader("Auth", nav.WithItems(
		nav.NewItem("Overview", "/guides/auth"),
		nav.NewHeader("Authorization", nav.WithItems(
			nav.NewItem("Row Level Security", "/guides/auth/row-level-security"),
		)),
	)))
	require.NoError(t, m.Validate())
	return m
}

func TestNavigationTopLevelSections(t *testing.T) {
	svc := NewNavigation(testMenu(t))

	sections := svc.TopLevelSections(context.Background())
	require.Len(t, sections, 2)
	assert.Equal(t, "Home", sections[0].Label())
	assert.Equal(t, "Auth", sections[1].Label())
}

func TestNavigationSectionTree(t *testing.T) {
	svc := NewNavigation(testMenu(t))

	root, err := svc.SectionTree(context.Background(), "auth")
	require.NoError(t, err)
	children := root.Items()
	require.Len(t, children, 2)
	assert.Equal(t, "Overview", children[0].Label())
	assert.Equal(t, "/guides/auth", children[0].Href())
}

func TestNavigationSectionTreeUnknownLevel(t *testing.T) {
	svc := NewNavigation(testMenu(t))

	_, err := svc.SectionTree(context.Background(), "billing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, nav.ErrLevelNotFound))
}

func TestNavigationLevels(t *testing.T) {
	svc := NewNavigation(testMenu(t))

	assert.Equal(t, []string{"home", "auth"}, svc.Levels(context.Background()))
}
