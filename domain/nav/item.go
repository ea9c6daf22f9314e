package nav

// Item represents a single entry in a navigation menu.
// Items form a tree via children. An item without an href is a section
// header: it groups its children but is never rendered as a link.
type Item struct {
	label        string
	href         string
	icon         string
	level        string
	community    bool
	hasLightIcon bool
	isDarkMode   bool
	items        []Item
}

// ItemOption configures optional fields on an Item.
type ItemOption func(*Item)

// WithIcon sets the symbolic icon identifier.
func WithIcon(icon string) ItemOption {
	return func(i *Item) { i.icon = icon }
}

// WithLevel tags the item with the level of its detailed subtree.
func WithLevel(level string) ItemOption {
	return func(i *Item) { i.level = level }
}

// WithItems sets the ordered child items.
func WithItems(items ...Item) ItemOption {
	return func(i *Item) { i.items = items }
}

// AsCommunity marks the item as community-maintained.
func AsCommunity() ItemOption {
	return func(i *Item) { i.community = true }
}

// WithLightIcon marks the icon as having a light-mode variant.
func WithLightIcon() ItemOption {
	return func(i *Item) { i.hasLightIcon = true }
}

// WithDarkMode marks the icon as dark-mode only.
func WithDarkMode() ItemOption {
	return func(i *Item) { i.isDarkMode = true }
}

// NewItem creates a navigable Item pointing at href.
func NewItem(label, href string, opts ...ItemOption) Item {
	i := Item{label: label, href: href}
	for _, opt := range opts {
		opt(&i)
	}
	return i
}

// NewHeader creates a non-navigable section header Item.
// Headers carry no href and must never render as links.
func NewHeader(label string, opts ...ItemOption) Item {
	i := Item{label: label}
	for _, opt := range opts {
		opt(&i)
	}
	return i
}

// Label returns the display text.
func (i Item) Label() string { return i.label }

// Href returns the target path or external URL, empty for headers.
func (i Item) Href() string { return i.href }

// Icon returns the symbolic icon identifier.
func (i Item) Icon() string { return i.icon }

// Level returns the level tag linking this item to a detailed subtree,
// or empty if the item has none.
func (i Item) Level() string { return i.level }

// Community reports whether the item is community-maintained.
func (i Item) Community() bool { return i.community }

// HasLightIcon reports whether the icon has a light-mode variant.
func (i Item) HasLightIcon() bool { return i.hasLightIcon }

// IsDarkMode reports whether the icon is dark-mode only.
func (i Item) IsDarkMode() bool { return i.isDarkMode }

// Items returns the ordered child items.
func (i Item) Items() []Item {
	out := make([]Item, len(i.items))
	copy(out, i.items)
	return out
}

// IsHeader reports whether the item is a pure section header.
func (i Item) IsHeader() bool { return i.href == "" }

// IsLeaf reports whether the item has no children.
func (i Item) IsLeaf() bool { return len(i.items) == 0 }

// Find searches the item's subtree (including itself) depth-first for the
// first item with the given label.
func (i Item) Find(label string) (Item, bool) {
	if i.label == label {
		return i, true
	}
	return findItem(i.items, label)
}

// FindByHref searches the item's subtree (including itself) depth-first for
// the first item with the given href.
func (i Item) FindByHref(href string) (Item, bool) {
	if i.href != "" && i.href == href {
		return i, true
	}
	for _, child := range i.items {
		if found, ok := child.FindByHref(href); ok {
			return found, true
		}
	}
	return Item{}, false
}

// Walk visits the item and every descendant in declaration order.
// Returning false from fn stops the walk.
func (i Item) Walk(fn func(Item) bool) bool {
	if !fn(i) {
		return false
	}
	for _, child := range i.items {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

func findItem(items []Item, label string) (Item, bool) {
	for _, it := range items {
		if it.label == label {
			return it, true
		}
		if found, ok := findItem(it.items, label); ok {
			return found, true
		}
	}
	return Item{}, false
}
