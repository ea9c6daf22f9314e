// Package manifest loads an externally authored navigation manifest.
//
// A manifest is a YAML document describing the top-level sections, the
// level-keyed subtrees, and the reference groups. Loading fails loudly on
// malformed documents or referential breakage: the manifest is authored
// configuration, and a dangling level is a bug to surface at startup, not a
// condition to tolerate at runtime.
package manifest

import (
	"fmt"
	"os"

	"github.com/jordienr/docsite/domain/nav"
	"github.com/jordienr/docsite/domain/reference"
	"gopkg.in/yaml.v3"
)

// Manifest is the parsed, validated content of a navigation manifest.
type Manifest struct {
	menu       nav.Menu
	references reference.List
}

// Menu returns the navigation menu described by the manifest.
func (m Manifest) Menu() nav.Menu { return m.menu }

// References returns the reference registry described by the manifest.
func (m Manifest) References() reference.List { return m.references }

// Load reads, parses, and validates the manifest at path.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return Manifest{}, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse parses and validates manifest YAML.
func Parse(data []byte) (Manifest, error) {
	var doc manifestYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}

	menu := nav.NewMenu(itemsFromYAML(doc.Sections))
	seen := map[string]bool{}
	for _, st := range doc.Subtrees {
		if st.Level == "" {
			return Manifest{}, fmt.Errorf("subtree %q has no level", st.Root.Label)
		}
		if seen[st.Level] {
			return Manifest{}, fmt.Errorf("level %q registered twice", st.Level)
		}
		seen[st.Level] = true
		menu = menu.WithSubtree(st.Level, itemFromYAML(st.Root))
	}
	if err := menu.Validate(); err != nil {
		return Manifest{}, fmt.Errorf("invalid navigation: %w", err)
	}

	refs := referencesFromYAML(doc.References)
	if err := refs.Validate(); err != nil {
		return Manifest{}, fmt.Errorf("invalid references: %w", err)
	}

	return Manifest{menu: menu, references: refs}, nil
}

// YAML document types (private).

type manifestYAML struct {
	Sections   []itemYAML    `yaml:"sections"`
	Subtrees   []subtreeYAML `yaml:"subtrees"`
	References []groupYAML   `yaml:"references"`
}

type subtreeYAML struct {
	Level string   `yaml:"level"`
	Root  itemYAML `yaml:"root"`
}

type itemYAML struct {
	Label        string     `yaml:"label"`
	Href         string     `yaml:"href"`
	Icon         string     `yaml:"icon"`
	Level        string     `yaml:"level"`
	Community    bool       `yaml:"community"`
	HasLightIcon bool       `yaml:"hasLightIcon"`
	IsDarkMode   bool       `yaml:"isDarkMode"`
	Items        []itemYAML `yaml:"items"`
}

type groupYAML struct {
	Group   string      `yaml:"group"`
	Entries []entryYAML `yaml:"entries"`
}

type entryYAML struct {
	Name     string   `yaml:"name"`
	Library  string   `yaml:"library"`
	Versions []string `yaml:"versions"`
	Icon     string   `yaml:"icon"`
}

func itemFromYAML(d itemYAML) nav.Item {
	opts := []nav.ItemOption{}
	if d.Icon != "" {
		opts = append(opts, nav.WithIcon(d.Icon))
	}
	if d.Level != "" {
		opts = append(opts, nav.WithLevel(d.Level))
	}
	if d.Community {
		opts = append(opts, nav.AsCommunity())
	}
	if d.HasLightIcon {
		opts = append(opts, nav.WithLightIcon())
	}
	if d.IsDarkMode {
		opts = append(opts, nav.WithDarkMode())
	}
	if len(d.Items) > 0 {
		opts = append(opts, nav.WithItems(itemsFromYAML(d.Items)...))
	}
	if d.Href == "" {
		return nav.NewHeader(d.Label, opts...)
	}
	return nav.NewItem(d.Label, d.Href, opts...)
}

func itemsFromYAML(data []itemYAML) []nav.Item {
	items := make([]nav.Item, len(data))
	for i, d := range data {
		items[i] = itemFromYAML(d)
	}
	return items
}

func referencesFromYAML(data []groupYAML) reference.List {
	groups := make([]reference.Group, len(data))
	for i, g := range data {
		entries := make([]reference.Entry, len(g.Entries))
		for j, e := range g.Entries {
			entries[j] = reference.NewEntry(e.Name, e.Library, e.Versions, e.Icon)
		}
		groups[i] = reference.NewGroup(reference.GroupName(g.Group), entries)
	}
	return reference.NewList(groups)
}
