// Package dto defines the JSON shapes of the v1 API.
package dto

// MenuItem represents a navigation item in the sidebar tree.
type MenuItem struct {
	Label        string     `json:"label"`
	Href         string     `json:"href,omitempty"`
	Icon         string     `json:"icon,omitempty"`
	Level        string     `json:"level,omitempty"`
	Community    bool       `json:"community,omitempty"`
	HasLightIcon bool       `json:"hasLightIcon,omitempty"`
	IsDarkMode   bool       `json:"isDarkMode,omitempty"`
	Items        []MenuItem `json:"items,omitempty"`
}

// SectionsResponse is the JSON response for the top-level sections endpoint.
type SectionsResponse struct {
	Data []MenuItem `json:"data"`
}

// SectionTreeResponse is the JSON response for a single section's subtree.
type SectionTreeResponse struct {
	Level string   `json:"level"`
	Data  MenuItem `json:"data"`
}

// LevelsResponse lists every registered level tag.
type LevelsResponse struct {
	Data []string `json:"data"`
}
