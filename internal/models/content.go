package models

// ContentField is a single editable text field within a page section.
// Keys are unique within their section.
type ContentField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// ContentSection is a named, admin-editable group of text fields rendered
// into a specific page area (hero, about, newsletter, footer).
type ContentSection struct {
	ID     string         `json:"id"`
	Label  string         `json:"label"`
	Fields []ContentField `json:"fields"`
}
