package dto

// PageMeta represents the metadata contract of a documentation page.
type PageMeta struct {
	ID           string   `json:"id,omitempty"`
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle,omitempty"`
	Description  string   `json:"description,omitempty"`
	SidebarLabel string   `json:"sidebarLabel,omitempty"`
	Breadcrumb   []string `json:"breadcrumb,omitempty"`
	HideToc      bool     `json:"hideToc,omitempty"`
}

// PageResponse is the JSON response for a single page.
type PageResponse struct {
	Data PageMeta `json:"data"`
}

// PageListResponse is the JSON response for the page list endpoint.
type PageListResponse struct {
	Data []PageMeta `json:"data"`
}

// PageUpsertRequest is the JSON request body for creating or updating a page.
type PageUpsertRequest struct {
	ID           string   `json:"id,omitempty"`
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle,omitempty"`
	Description  string   `json:"description,omitempty"`
	SidebarLabel string   `json:"sidebarLabel,omitempty"`
	Breadcrumb   []string `json:"breadcrumb,omitempty"`
	HideToc      bool     `json:"hideToc,omitempty"`
}
