package docsite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jordienr/docsite"
	"github.com/jordienr/docsite/application/service"
	"github.com/jordienr/docsite/domain/nav"
	"github.com/jordienr/docsite/domain/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, opts ...docsite.Option) *docsite.Client {
	t.Helper()
	opts = append([]docsite.Option{
		docsite.WithSQLite(filepath.Join(t.TempDir(), "data.db")),
	}, opts...)
	client, err := docsite.New(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewRequiresDatabase(t *testing.T) {
	_, err := docsite.New()
	require.Error(t, err)
	assert.True(t, errors.Is(err, docsite.ErrNoDatabase))
}

func TestClientDefaultRegistry(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	sections := client.Navigation.TopLevelSections(ctx)
	require.NotEmpty(t, sections)

	tree, err := client.Navigation.SectionTree(ctx, "auth")
	require.NoError(t, err)
	children := tree.Items()
	require.NotEmpty(t, children)
	assert.Equal(t, "Overview", children[0].Label())
	assert.Equal(t, "/guides/auth", children[0].Href())

	groups := client.References.Groups(ctx)
	require.Len(t, groups, 3)
}

func TestClientUnknownLevel(t *testing.T) {
	client := newTestClient(t)

	_, err := client.Navigation.SectionTree(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, nav.ErrLevelNotFound))
}

func TestClientPages(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	meta, err := client.Pages.Upsert(ctx, page.NewMeta(
		"guides/auth/row-level-security", "Row Level Security",
		page.WithDescription("Secure your data with Postgres RLS."),
	))
	require.NoError(t, err)
	assert.Equal(t, "Row Level Security", meta.Title())

	got, err := client.Pages.Get(ctx, "guides/auth/row-level-security")
	require.NoError(t, err)
	assert.Equal(t, []string{"Auth", "Authorization", "Row Level Security"}, got.Breadcrumb())

	require.NoError(t, client.Pages.Delete(ctx, "guides/auth/row-level-security"))
	_, err = client.Pages.Get(ctx, "guides/auth/row-level-security")
	assert.True(t, errors.Is(err, service.ErrPageNotFound))
}

func TestClientCustomMenu(t *testing.T) {
	menu := nav.NewMenu([]nav.Item{
		nav.NewItem("Docs", "/docs", nav.WithLevel("docs")),
	}).WithSubtree("docs", nav.NewHeader("Docs", nav.WithItems(
		nav.NewItem("Intro", "/docs/intro"),
	)))

	client := newTestClient(t, docsite.WithMenu(menu))

	assert.Equal(t, []string{"docs"}, client.Navigation.Levels(context.Background()))
}

func TestClientCustomMenuKeepsBuiltinReferences(t *testing.T) {
	menu := nav.NewMenu([]nav.Item{
		nav.NewItem("Docs", "/docs", nav.WithLevel("docs")),
	}).WithSubtree("docs", nav.NewHeader("Docs", nav.WithItems(
		nav.NewItem("Intro", "/docs/intro"),
	)))

	client := newTestClient(t, docsite.WithMenu(menu))

	groups := client.References.Groups(context.Background())
	require.Len(t, groups, 3)
}

func TestClientInvalidMenu(t *testing.T) {
	menu := nav.NewMenu([]nav.Item{
		nav.NewItem("Docs", "/docs", nav.WithLevel("dangling")),
	})

	_, err := docsite.New(
		docsite.WithSQLite(filepath.Join(t.TempDir(), "data.db")),
		docsite.WithMenu(menu),
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, nav.ErrLevelNotFound))
}

func TestClientCloseTwice(t *testing.T) {
	client := newTestClient(t)
	require.NoError(t, client.Close())
	require.NoError(t, client.Close())
}
