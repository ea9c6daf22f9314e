package dto

// ReferenceEntry represents one library's or tool's reference documentation.
type ReferenceEntry struct {
	Name          string   `json:"name"`
	Library       string   `json:"library,omitempty"`
	Versions      []string `json:"versions"`
	LatestVersion string   `json:"latestVersion,omitempty"`
	Icon          string   `json:"icon,omitempty"`
}

// ReferenceGroup is an ordered group of reference entries.
type ReferenceGroup struct {
	Name    string           `json:"name"`
	Entries []ReferenceEntry `json:"entries"`
}

// ReferenceListResponse is the JSON response for the reference registry.
type ReferenceListResponse struct {
	Data []ReferenceGroup `json:"data"`
}

// ReferenceEntryResponse is the JSON response for a single reference entry.
type ReferenceEntryResponse struct {
	Data ReferenceEntry `json:"data"`
}
