package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMenu() Menu {
	sections := []Item{
		NewItem("Home", "/", WithLevel("home")),
		NewItem("Database", "/guides/database", WithIcon("database"), WithLevel("database")),
		NewItem("Auth", "/guides/auth", WithIcon("auth"), WithLevel("auth")),
	}
	home := NewHeader("Home", WithItems(NewItem("Introduction", "/")))
	database := NewHeader("Database", WithItems(
		NewItem("Overview", "/guides/database"),
		NewItem("Tables", "/guides/database/tables"),
		NewItem("Full Text Search", "/guides/database/full-text-search"),
	))
	auth := NewHeader("Auth", WithItems(
		NewItem("Overview", "/guides/auth"),
		NewHeader("Authorization", WithItems(
			NewItem("Row Level Security", "/guides/auth/row-level-security"),
		)),
	))
	return NewMenu(sections).
		WithSubtree("home", home).
		WithSubtree("database", database).
		WithSubtree("auth", auth)
}

func TestNewMenu_NilSections(t *testing.T) {
	m := NewMenu(nil)
	assert.Empty(t, m.Sections())
	assert.Empty(t, m.Levels())
}

func TestMenu_SectionsPreserveOrder(t *testing.T) {
	m := testMenu()
	labels := make([]string, 0, 3)
	for _, s := range m.Sections() {
		labels = append(labels, s.Label())
	}
	assert.Equal(t, []string{"Home", "Database", "Auth"}, labels)
}

func TestMenu_Section(t *testing.T) {
	m := testMenu()

	root, ok := m.Section("auth")
	require.True(t, ok)

	overview, ok := root.Find("Overview")
	require.True(t, ok)
	assert.Equal(t, "/guides/auth", overview.Href())

	rls, ok := root.Find("Row Level Security")
	require.True(t, ok)
	assert.Equal(t, "/guides/auth/row-level-security", rls.Href())

	authz, ok := root.Find("Authorization")
	require.True(t, ok)
	assert.True(t, authz.IsHeader())
}

func TestMenu_SectionUnknownLevel(t *testing.T) {
	m := testMenu()
	_, ok := m.Section("does-not-exist")
	assert.False(t, ok)
}

func TestMenu_Validate(t *testing.T) {
	assert.NoError(t, testMenu().Validate())
}

func TestMenu_ValidateDanglingLevel(t *testing.T) {
	m := NewMenu([]Item{NewItem("Storage", "/guides/storage", WithLevel("storage"))})
	err := m.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLevelNotFound)
	assert.Contains(t, err.Error(), `"storage"`)
}

func TestMenu_ValidateEmptyHeader(t *testing.T) {
	m := NewMenu(nil).WithSubtree("broken", NewHeader("Broken", WithItems(
		NewHeader("Empty Group"),
	)))
	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Empty Group")
}

func TestMenu_Breadcrumb(t *testing.T) {
	m := testMenu()

	trail, ok := m.Breadcrumb("auth", "/guides/auth/row-level-security")
	require.True(t, ok)
	assert.Equal(t, []string{"Auth", "Authorization", "Row Level Security"}, trail)

	_, ok = m.Breadcrumb("auth", "/guides/nowhere")
	assert.False(t, ok)

	_, ok = m.Breadcrumb("missing", "/guides/auth")
	assert.False(t, ok)
}

func TestMenu_JSONRoundTrip(t *testing.T) {
	m := testMenu()

	content, err := m.JSON()
	require.NoError(t, err)

	parsed, err := ParseMenu(content)
	require.NoError(t, err)

	assert.Equal(t, m.Levels(), parsed.Levels())
	assert.Len(t, parsed.Sections(), 3)

	root, ok := parsed.Section("auth")
	require.True(t, ok)
	rls, ok := root.Find("Row Level Security")
	require.True(t, ok)
	assert.Equal(t, "/guides/auth/row-level-security", rls.Href())
}

func TestParseMenu_Invalid(t *testing.T) {
	_, err := ParseMenu("{not json")
	assert.Error(t, err)
}
