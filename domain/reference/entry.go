// Package reference describes the client-library reference documentation
// registry: which libraries and tools have reference sections, in which
// versions, grouped in a fixed order.
package reference

import (
	"errors"
	"fmt"
)

// GroupName identifies one of the fixed reference groups.
type GroupName string

// Reference groups, in canonical render order.
const (
	GroupClientLibraries GroupName = "Client libraries"
	GroupPlatformTools   GroupName = "Platform Tools"
	GroupSelfHosting     GroupName = "Self-Hosting"
)

// GroupOrder is the fixed order reference groups are rendered in.
var GroupOrder = []GroupName{GroupClientLibraries, GroupPlatformTools, GroupSelfHosting}

// Entry describes one client library's or tool's reference documentation.
type Entry struct {
	name     string
	library  string
	versions []string
	icon     string
}

// NewEntry creates an Entry. library may be empty for tools that have no
// underlying library (e.g. a CLI). versions are ordered most recent first.
func NewEntry(name, library string, versions []string, icon string) Entry {
	if versions == nil {
		versions = []string{}
	}
	return Entry{name: name, library: library, versions: versions, icon: icon}
}

// Name returns the display name.
func (e Entry) Name() string { return e.name }

// Library returns the underlying library identifier, empty for tools.
func (e Entry) Library() string { return e.library }

// Versions returns the version tags, most recent first.
func (e Entry) Versions() []string {
	out := make([]string, len(e.versions))
	copy(out, e.versions)
	return out
}

// LatestVersion returns the most recent version tag, or empty if none.
func (e Entry) LatestVersion() string {
	if len(e.versions) == 0 {
		return ""
	}
	return e.versions[0]
}

// Icon returns the symbolic icon identifier.
func (e Entry) Icon() string { return e.icon }

// Group is an ordered set of entries under one of the fixed group names.
type Group struct {
	name    GroupName
	entries []Entry
}

// NewGroup creates a Group.
func NewGroup(name GroupName, entries []Entry) Group {
	if entries == nil {
		entries = []Entry{}
	}
	return Group{name: name, entries: entries}
}

// Name returns the group name.
func (g Group) Name() GroupName { return g.name }

// Entries returns the entries in declared order.
func (g Group) Entries() []Entry {
	out := make([]Entry, len(g.entries))
	copy(out, g.entries)
	return out
}

// List holds every reference group in the fixed group order.
type List struct {
	groups []Group
}

// NewList creates a List. Groups are reordered to the canonical group order;
// unknown group names are kept after the known ones in declared order.
func NewList(groups []Group) List {
	ordered := make([]Group, 0, len(groups))
	for _, name := range GroupOrder {
		for _, g := range groups {
			if g.name == name {
				ordered = append(ordered, g)
			}
		}
	}
	for _, g := range groups {
		if !isKnownGroup(g.name) {
			ordered = append(ordered, g)
		}
	}
	return List{groups: ordered}
}

func isKnownGroup(name GroupName) bool {
	for _, n := range GroupOrder {
		if n == name {
			return true
		}
	}
	return false
}

// Groups returns the groups in canonical order.
func (l List) Groups() []Group {
	out := make([]Group, len(l.groups))
	copy(out, l.groups)
	return out
}

// Entries returns every entry flattened in group order, preserving the
// declared order within each group.
func (l List) Entries() []Entry {
	var out []Entry
	for _, g := range l.groups {
		out = append(out, g.entries...)
	}
	return out
}

// Entry finds an entry by display name across all groups.
func (l List) Entry(name string) (Entry, bool) {
	for _, g := range l.groups {
		for _, e := range g.entries {
			if e.name == name {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// Validate checks for authoring bugs: duplicate entry names across groups
// and entries without a single version tag.
func (l List) Validate() error {
	var errs []error
	seen := map[string]bool{}
	for _, g := range l.groups {
		for _, e := range g.entries {
			if seen[e.name] {
				errs = append(errs, fmt.Errorf("duplicate reference entry %q", e.name))
			}
			seen[e.name] = true
			if len(e.versions) == 0 {
				errs = append(errs, fmt.Errorf("reference entry %q has no versions", e.name))
			}
		}
	}
	return errors.Join(errs...)
}
