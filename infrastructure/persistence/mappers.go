package persistence

import (
	"encoding/json"

	"github.com/jordienr/docsite/domain/page"
)

// pageMetaMapper converts between domain and database representations.
type pageMetaMapper struct{}

func (pageMetaMapper) ToDomain(m PageMetaModel) page.Meta {
	opts := []page.MetaOption{}
	if m.DocID != "" {
		opts = append(opts, page.WithID(m.DocID))
	}
	if m.Subtitle != "" {
		opts = append(opts, page.WithSubtitle(m.Subtitle))
	}
	if m.Description != "" {
		opts = append(opts, page.WithDescription(m.Description))
	}
	if m.SidebarLabel != "" {
		opts = append(opts, page.WithSidebarLabel(m.SidebarLabel))
	}
	if trail := decodeBreadcrumb(m.Breadcrumb); len(trail) > 0 {
		opts = append(opts, page.WithBreadcrumb(trail...))
	}
	if m.HideToc {
		opts = append(opts, page.WithHideToc())
	}
	return page.NewMeta(m.Slug, m.Title, opts...)
}

func (pageMetaMapper) ToModel(m page.Meta) PageMetaModel {
	return PageMetaModel{
		Slug:         m.Slug(),
		DocID:        m.ID(),
		Title:        m.Title(),
		Subtitle:     m.Subtitle(),
		Description:  m.Description(),
		SidebarLabel: rawSidebarLabel(m),
		Breadcrumb:   encodeBreadcrumb(rawBreadcrumb(m)),
		HideToc:      m.HideToc(),
	}
}

// rawBreadcrumb avoids persisting a navigation-derived trail as if it had
// been authored in front matter.
func rawBreadcrumb(m page.Meta) []string {
	if m.BreadcrumbDerived() {
		return nil
	}
	return m.Breadcrumb()
}

// rawSidebarLabel avoids persisting the title fallback as an override.
func rawSidebarLabel(m page.Meta) string {
	if m.SidebarLabel() == m.Title() {
		return ""
	}
	return m.SidebarLabel()
}

func encodeBreadcrumb(trail []string) string {
	if len(trail) == 0 {
		return ""
	}
	bytes, err := json.Marshal(trail)
	if err != nil {
		return ""
	}
	return string(bytes)
}

func decodeBreadcrumb(raw string) []string {
	if raw == "" {
		return nil
	}
	var trail []string
	if err := json.Unmarshal([]byte(raw), &trail); err != nil {
		return nil
	}
	return trail
}
