// Package page holds the metadata contract between documentation documents
// and the page-layout renderer: every document exposes a meta record used to
// render headers, breadcrumbs, and head metadata.
package page

// Meta is the front-matter record of a single documentation page.
// It is a value object keyed by slug.
type Meta struct {
	id           string
	slug         string
	title        string
	subtitle     string
	description  string
	sidebarLabel string
	breadcrumb   []string
	// derivedBreadcrumb marks a trail computed from the navigation tree
	// rather than authored in front matter.
	derivedBreadcrumb bool
	hideToc           bool
}

// MetaOption configures optional fields on a Meta.
type MetaOption func(*Meta)

// WithID sets the stable document identifier.
func WithID(id string) MetaOption {
	return func(m *Meta) { m.id = id }
}

// WithSubtitle sets the page subtitle.
func WithSubtitle(subtitle string) MetaOption {
	return func(m *Meta) { m.subtitle = subtitle }
}

// WithDescription sets the head description.
func WithDescription(description string) MetaOption {
	return func(m *Meta) { m.description = description }
}

// WithSidebarLabel overrides the label used in the sidebar.
func WithSidebarLabel(label string) MetaOption {
	return func(m *Meta) { m.sidebarLabel = label }
}

// WithBreadcrumb sets the breadcrumb trail, outermost first.
func WithBreadcrumb(trail ...string) MetaOption {
	return func(m *Meta) { m.breadcrumb = trail }
}

// WithHideToc hides the table of contents on this page.
func WithHideToc() MetaOption {
	return func(m *Meta) { m.hideToc = true }
}

// NewMeta creates a Meta for the page at slug with the given title.
func NewMeta(slug, title string, opts ...MetaOption) Meta {
	m := Meta{slug: slug, title: title}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns the stable document identifier, possibly empty.
func (m Meta) ID() string { return m.id }

// Slug returns the site-relative path of the page.
func (m Meta) Slug() string { return m.slug }

// Title returns the page title.
func (m Meta) Title() string { return m.title }

// Subtitle returns the page subtitle.
func (m Meta) Subtitle() string { return m.subtitle }

// Description returns the head description.
func (m Meta) Description() string { return m.description }

// SidebarLabel returns the sidebar label override, or the title when unset.
func (m Meta) SidebarLabel() string {
	if m.sidebarLabel == "" {
		return m.title
	}
	return m.sidebarLabel
}

// Breadcrumb returns the breadcrumb trail, outermost first.
func (m Meta) Breadcrumb() []string {
	out := make([]string, len(m.breadcrumb))
	copy(out, m.breadcrumb)
	return out
}

// BreadcrumbDerived reports whether the breadcrumb came from the navigation
// tree rather than front matter. Derived trails are presentation-only and
// must not be written back as authored data.
func (m Meta) BreadcrumbDerived() bool { return m.derivedBreadcrumb }

// HideToc reports whether the table of contents is hidden.
func (m Meta) HideToc() bool { return m.hideToc }

// WithDerivedBreadcrumb returns a copy with the breadcrumb replaced by a
// trail derived from the navigation tree.
func (m Meta) WithDerivedBreadcrumb(trail []string) Meta {
	m.breadcrumb = make([]string, len(trail))
	copy(m.breadcrumb, trail)
	m.derivedBreadcrumb = true
	return m
}
