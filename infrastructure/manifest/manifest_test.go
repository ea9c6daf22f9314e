package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jordienr/docsite/domain/reference"
	"github.com/jordienr/docsite/infrastructure/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validManifest = `
sections:
  - label: Home
    href: /
    icon: home
    level: home
  - label: Auth
    href: /guides/auth
    icon: auth
    level: auth
subtrees:
  - level: home
    root:
      label: Home
      items:
        - label: Home
          href: /
  - level: auth
    root:
      label: Auth
      items:
        - label: Overview
          href: /guides/auth
        - label: Authorization
          items:
            - label: Row Level Security
              href: /guides/auth/row-level-security
references:
  - group: Self-Hosting
    entries:
      - name: Auth Server
        library: gotrue
        versions: [v1]
        icon: reference-auth
  - group: Client libraries
    entries:
      - name: JavaScript
        library: supabase-js
        versions: [v2, v1]
        icon: reference-javascript
`

func TestParse(t *testing.T) {
	m, err := manifest.Parse([]byte(validManifest))
	require.NoError(t, err)

	sections := m.Menu().Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, "Home", sections[0].Label())
	assert.Equal(t, "Auth", sections[1].Label())

	auth, ok := m.Menu().Section("auth")
	require.True(t, ok)
	children := auth.Items()
	require.Len(t, children, 2)
	assert.Equal(t, "Overview", children[0].Label())
	assert.True(t, children[1].IsHeader())

	groups := m.References().Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, reference.GroupClientLibraries, groups[0].Name())
	assert.Equal(t, reference.GroupSelfHosting, groups[1].Name())
}

func TestParseDanglingLevel(t *testing.T) {
	doc := `
sections:
  - label: Storage
    href: /guides/storage
    level: storage
`
	_, err := manifest.Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage")
}

func TestParseDuplicateLevel(t *testing.T) {
	doc := `
subtrees:
  - level: home
    root:
      label: Home
  - level: home
    root:
      label: Home again
`
	_, err := manifest.Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registered twice")
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := manifest.Parse([]byte("sections: ["))
	require.Error(t, err)
}

func TestParseEntryWithoutVersions(t *testing.T) {
	doc := `
references:
  - group: Platform Tools
    entries:
      - name: CLI
        icon: reference-cli
`
	_, err := manifest.Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no versions")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validManifest), 0o600))

	m, err := manifest.Load(path)
	require.NoError(t, err)
	assert.Len(t, m.Menu().Sections(), 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := manifest.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
