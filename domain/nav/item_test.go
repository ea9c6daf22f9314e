package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewItem(t *testing.T) {
	i := NewItem("Overview", "/guides/auth", WithIcon("auth"), WithLevel("auth"))
	assert.Equal(t, "Overview", i.Label())
	assert.Equal(t, "/guides/auth", i.Href())
	assert.Equal(t, "auth", i.Icon())
	assert.Equal(t, "auth", i.Level())
	assert.False(t, i.IsHeader())
	assert.True(t, i.IsLeaf())
}

func TestNewHeader(t *testing.T) {
	h := NewHeader("Authorization", WithItems(
		NewItem("Row Level Security", "/guides/auth/row-level-security"),
	))
	assert.True(t, h.IsHeader())
	assert.Empty(t, h.Href())
	assert.Len(t, h.Items(), 1)
}

func TestItem_Flags(t *testing.T) {
	i := NewItem("Python", "/reference/python", AsCommunity(), WithLightIcon(), WithDarkMode())
	assert.True(t, i.Community())
	assert.True(t, i.HasLightIcon())
	assert.True(t, i.IsDarkMode())
}

func TestItem_Find(t *testing.T) {
	tree := NewHeader("Auth",
		WithItems(
			NewItem("Overview", "/guides/auth"),
			NewHeader("Authorization", WithItems(
				NewItem("Row Level Security", "/guides/auth/row-level-security"),
			)),
		),
	)

	found, ok := tree.Find("Row Level Security")
	assert.True(t, ok)
	assert.Equal(t, "/guides/auth/row-level-security", found.Href())

	_, ok = tree.Find("Missing")
	assert.False(t, ok)
}

func TestItem_FindByHref(t *testing.T) {
	tree := NewHeader("Database", WithItems(
		NewItem("Overview", "/guides/database"),
		NewItem("Tables", "/guides/database/tables"),
	))

	found, ok := tree.FindByHref("/guides/database/tables")
	assert.True(t, ok)
	assert.Equal(t, "Tables", found.Label())

	// Headers have empty hrefs and must never match.
	_, ok = tree.FindByHref("")
	assert.False(t, ok)
}

func TestItem_WalkOrder(t *testing.T) {
	tree := NewHeader("root", WithItems(
		NewItem("a", "/a", WithItems(NewItem("a1", "/a1"), NewItem("a2", "/a2"))),
		NewItem("b", "/b"),
	))

	var visited []string
	tree.Walk(func(i Item) bool {
		visited = append(visited, i.Label())
		return true
	})
	assert.Equal(t, []string{"root", "a", "a1", "a2", "b"}, visited)
}

func TestItem_WalkStops(t *testing.T) {
	tree := NewHeader("root", WithItems(NewItem("a", "/a"), NewItem("b", "/b")))

	var visited []string
	tree.Walk(func(i Item) bool {
		visited = append(visited, i.Label())
		return i.Label() != "a"
	})
	assert.Equal(t, []string{"root", "a"}, visited)
}
