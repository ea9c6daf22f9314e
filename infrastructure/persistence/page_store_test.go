package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jordienr/docsite/domain/page"
	"github.com/jordienr/docsite/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) PageStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.New(context.Background(), "sqlite:///"+dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, AutoMigrate(db))
	return NewPageStore(db)
}

func TestPageStore_UpsertAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	meta := page.NewMeta("/guides/database", "Database",
		page.WithID("database"),
		page.WithDescription("Manage your Postgres database"),
		page.WithBreadcrumb("Database", "Overview"),
	)

	saved, err := store.Upsert(ctx, meta)
	require.NoError(t, err)
	assert.Equal(t, "Database", saved.Title())
	assert.Equal(t, []string{"Database", "Overview"}, saved.Breadcrumb())

	got, err := store.Get(ctx, "/guides/database")
	require.NoError(t, err)
	assert.Equal(t, "database", got.ID())
	assert.Equal(t, "Manage your Postgres database", got.Description())
}

func TestPageStore_UpsertReplacesExisting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Upsert(ctx, page.NewMeta("/guides/auth", "Auth"))
	require.NoError(t, err)

	updated, err := store.Upsert(ctx, page.NewMeta("/guides/auth", "Authentication",
		page.WithSubtitle("User management")))
	require.NoError(t, err)
	assert.Equal(t, "Authentication", updated.Title())
	assert.Equal(t, "User management", updated.Subtitle())

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPageStore_GetNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "/missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestPageStore_ListOrderedBySlug(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, slug := range []string{"/guides/storage", "/guides/auth", "/guides/database"} {
		_, err := store.Upsert(ctx, page.NewMeta(slug, slug))
		require.NoError(t, err)
	}

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "/guides/auth", all[0].Slug())
	assert.Equal(t, "/guides/database", all[1].Slug())
	assert.Equal(t, "/guides/storage", all[2].Slug())
}

func TestPageStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Upsert(ctx, page.NewMeta("/guides/auth", "Auth"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "/guides/auth"))

	err = store.Delete(ctx, "/guides/auth")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestPageStore_DerivedBreadcrumbNotPersisted(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	meta := page.NewMeta("/guides/auth", "Auth").
		WithDerivedBreadcrumb([]string{"Auth", "Overview"})
	_, err := store.Upsert(ctx, meta)
	require.NoError(t, err)

	got, err := store.Get(ctx, "/guides/auth")
	require.NoError(t, err)
	assert.Empty(t, got.Breadcrumb())
}

func TestPageMetaMapper_BreadcrumbPersistedOnlyWhenAuthored(t *testing.T) {
	var m pageMetaMapper

	model := m.ToModel(page.NewMeta("/x", "Title",
		page.WithBreadcrumb("Guides", "Title")))
	assert.NotEmpty(t, model.Breadcrumb)

	model = m.ToModel(page.NewMeta("/x", "Title").
		WithDerivedBreadcrumb([]string{"Guides", "Title"}))
	assert.Empty(t, model.Breadcrumb)
}

func TestPageMetaMapper_SidebarLabelNotPersistedWhenDefault(t *testing.T) {
	var m pageMetaMapper

	model := m.ToModel(page.NewMeta("/x", "Title"))
	assert.Empty(t, model.SidebarLabel)

	model = m.ToModel(page.NewMeta("/x", "Title", page.WithSidebarLabel("Short")))
	assert.Equal(t, "Short", model.SidebarLabel)
}
