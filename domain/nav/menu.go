package nav

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrLevelNotFound indicates a level tag with no registered subtree.
// The set of valid levels is closed at authoring time, so hitting this at
// runtime means the navigation data itself is broken.
var ErrLevelNotFound = errors.New("navigation level not found")

// Menu is the canonical description of a documentation site's navigation:
// the ordered top-level sections plus the detailed per-level subtrees they
// reference. It is a value object, constructed once and never mutated.
type Menu struct {
	sections []Item
	levels   []string
	subtrees map[string]Item
}

// NewMenu creates a Menu from top-level sections and level-keyed subtrees.
// Subtrees are registered via RegisterSubtree on the returned value before
// Validate is called.
func NewMenu(sections []Item) Menu {
	if sections == nil {
		sections = []Item{}
	}
	return Menu{
		sections: sections,
		subtrees: map[string]Item{},
	}
}

// WithSubtree returns a copy of the menu with the subtree registered under
// the given level. Registering the same level twice is caught by Validate.
func (m Menu) WithSubtree(level string, root Item) Menu {
	subtrees := make(map[string]Item, len(m.subtrees)+1)
	for k, v := range m.subtrees {
		subtrees[k] = v
	}
	levels := make([]string, len(m.levels), len(m.levels)+1)
	copy(levels, m.levels)
	if _, dup := subtrees[level]; !dup {
		levels = append(levels, level)
	}
	subtrees[level] = root
	m.subtrees = subtrees
	m.levels = levels
	return m
}

// Sections returns the top-level navigation sections in declared order.
func (m Menu) Sections() []Item {
	out := make([]Item, len(m.sections))
	copy(out, m.sections)
	return out
}

// Levels returns the registered level tags in registration order.
func (m Menu) Levels() []string {
	out := make([]string, len(m.levels))
	copy(out, m.levels)
	return out
}

// Section returns the detailed subtree registered for the given level.
func (m Menu) Section(level string) (Item, bool) {
	root, ok := m.subtrees[level]
	return root, ok
}

// Validate checks the menu for authoring bugs: every level tag referenced by
// a top-level section must have a registered subtree, and no item may be both
// unlinked and childless (a header with nothing to head).
func (m Menu) Validate() error {
	var errs []error
	seen := map[string]bool{}
	for _, s := range m.sections {
		s.Walk(func(it Item) bool {
			if lvl := it.Level(); lvl != "" && !seen[lvl] {
				seen[lvl] = true
				if _, ok := m.subtrees[lvl]; !ok {
					errs = append(errs, fmt.Errorf("%w: section %q references level %q", ErrLevelNotFound, it.Label(), lvl))
				}
			}
			return true
		})
	}
	for _, lvl := range m.levels {
		validateItems(lvl, m.subtrees[lvl].Items(), &errs)
	}
	return errors.Join(errs...)
}

func validateItems(level string, items []Item, errs *[]error) {
	for _, it := range items {
		if it.IsHeader() && it.IsLeaf() && it.Level() == "" {
			*errs = append(*errs, fmt.Errorf("level %q: header %q has no href and no children", level, it.Label()))
		}
		validateItems(level, it.Items(), errs)
	}
}

// Breadcrumb returns the chain of labels from the root of the given level's
// subtree down to the item whose href matches, inclusive.
func (m Menu) Breadcrumb(level, href string) ([]string, bool) {
	root, ok := m.subtrees[level]
	if !ok {
		return nil, false
	}
	return breadcrumb(root, href)
}

func breadcrumb(it Item, href string) ([]string, bool) {
	if it.Href() == href && href != "" {
		return []string{it.Label()}, true
	}
	for _, child := range it.Items() {
		if trail, ok := breadcrumb(child, href); ok {
			return append([]string{it.Label()}, trail...), true
		}
	}
	return nil, false
}

// JSON serializes the menu for transport and manifest round-trips.
func (m Menu) JSON() (string, error) {
	data := menuJSON{
		Sections: itemsToJSON(m.sections),
		Subtrees: make([]subtreeJSON, len(m.levels)),
	}
	for i, lvl := range m.levels {
		root := m.subtrees[lvl]
		data.Subtrees[i] = subtreeJSON{Level: lvl, Root: itemToJSON(root)}
	}
	bytes, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal menu: %w", err)
	}
	return string(bytes), nil
}

// ParseMenu deserializes a menu previously produced by JSON.
func ParseMenu(content string) (Menu, error) {
	var data menuJSON
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return Menu{}, fmt.Errorf("unmarshal menu: %w", err)
	}
	m := NewMenu(itemsFromJSON(data.Sections))
	for _, st := range data.Subtrees {
		m = m.WithSubtree(st.Level, itemFromJSON(st.Root))
	}
	return m, nil
}

// JSON serialization types (private).

type menuJSON struct {
	Sections []itemJSON    `json:"sections"`
	Subtrees []subtreeJSON `json:"subtrees,omitempty"`
}

type subtreeJSON struct {
	Level string   `json:"level"`
	Root  itemJSON `json:"root"`
}

type itemJSON struct {
	Label        string     `json:"label"`
	Href         string     `json:"href,omitempty"`
	Icon         string     `json:"icon,omitempty"`
	Level        string     `json:"level,omitempty"`
	Community    bool       `json:"community,omitempty"`
	HasLightIcon bool       `json:"hasLightIcon,omitempty"`
	IsDarkMode   bool       `json:"isDarkMode,omitempty"`
	Items        []itemJSON `json:"items,omitempty"`
}

func itemToJSON(i Item) itemJSON {
	return itemJSON{
		Label:        i.label,
		Href:         i.href,
		Icon:         i.icon,
		Level:        i.level,
		Community:    i.community,
		HasLightIcon: i.hasLightIcon,
		IsDarkMode:   i.isDarkMode,
		Items:        itemsToJSON(i.items),
	}
}

func itemsToJSON(items []Item) []itemJSON {
	if len(items) == 0 {
		return nil
	}
	result := make([]itemJSON, len(items))
	for i, it := range items {
		result[i] = itemToJSON(it)
	}
	return result
}

func itemFromJSON(d itemJSON) Item {
	i := Item{
		label:        d.Label,
		href:         d.Href,
		icon:         d.Icon,
		level:        d.Level,
		community:    d.Community,
		hasLightIcon: d.HasLightIcon,
		isDarkMode:   d.IsDarkMode,
		items:        itemsFromJSON(d.Items),
	}
	return i
}

func itemsFromJSON(data []itemJSON) []Item {
	if len(data) == 0 {
		return nil
	}
	result := make([]Item, len(data))
	for i, d := range data {
		result[i] = itemFromJSON(d)
	}
	return result
}
