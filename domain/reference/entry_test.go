package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testList() List {
	return NewList([]Group{
		NewGroup(GroupSelfHosting, []Entry{
			NewEntry("Auth Server", "gotrue", []string{"v1"}, "auth"),
		}),
		NewGroup(GroupClientLibraries, []Entry{
			NewEntry("JavaScript", "supabase-js", []string{"v2", "v1"}, "javascript"),
			NewEntry("Flutter", "supabase-flutter", []string{"v1", "v0"}, "dart"),
		}),
		NewGroup(GroupPlatformTools, []Entry{
			NewEntry("CLI", "", []string{"v1"}, "cli"),
		}),
	})
}

func TestNewEntry_NilVersions(t *testing.T) {
	e := NewEntry("CLI", "", nil, "cli")
	assert.Empty(t, e.Versions())
	assert.Empty(t, e.LatestVersion())
	assert.Empty(t, e.Library())
}

func TestEntry_LatestVersion(t *testing.T) {
	e := NewEntry("JavaScript", "supabase-js", []string{"v2", "v1"}, "javascript")
	assert.Equal(t, "v2", e.LatestVersion())
}

func TestList_CanonicalGroupOrder(t *testing.T) {
	l := testList()
	groups := l.Groups()
	require.Len(t, groups, 3)
	assert.Equal(t, GroupClientLibraries, groups[0].Name())
	assert.Equal(t, GroupPlatformTools, groups[1].Name())
	assert.Equal(t, GroupSelfHosting, groups[2].Name())
}

func TestList_EntriesFlattenedInGroupOrder(t *testing.T) {
	l := testList()
	names := make([]string, 0, 4)
	for _, e := range l.Entries() {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"JavaScript", "Flutter", "CLI", "Auth Server"}, names)
}

func TestList_Entry(t *testing.T) {
	l := testList()

	e, ok := l.Entry("Flutter")
	require.True(t, ok)
	assert.Equal(t, "supabase-flutter", e.Library())

	_, ok = l.Entry("Ruby")
	assert.False(t, ok)
}

func TestList_Validate(t *testing.T) {
	assert.NoError(t, testList().Validate())
}

func TestList_ValidateDuplicateName(t *testing.T) {
	l := NewList([]Group{
		NewGroup(GroupClientLibraries, []Entry{
			NewEntry("JavaScript", "supabase-js", []string{"v2"}, "javascript"),
			NewEntry("JavaScript", "supabase-js", []string{"v1"}, "javascript"),
		}),
	})
	err := l.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestList_ValidateMissingVersions(t *testing.T) {
	l := NewList([]Group{
		NewGroup(GroupPlatformTools, []Entry{NewEntry("CLI", "", nil, "cli")}),
	})
	err := l.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no versions")
}
