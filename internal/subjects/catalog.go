// Package subjects holds the fixed catalog of DSE subject categories.
package subjects

import "github.com/khlau/dsenotes/internal/models"

// catalog is the full set of subjects. Identifiers are stable and referenced
// by notes and ask requests; the catalog is never persisted or edited.
var catalog = []models.Subject{
	{ID: "chinese", Name: "中國語文", Color: "#FF6B6B"},
	{ID: "english", Name: "英國語文", Color: "#4ECDC4"},
	{ID: "math", Name: "數學", Color: "#45B7D1"},
	{ID: "ls", Name: "通識教育", Color: "#96CEB4"},
	{ID: "physics", Name: "物理", Color: "#FFEAA7"},
	{ID: "chemistry", Name: "化學", Color: "#DDA0DD"},
	{ID: "biology", Name: "生物", Color: "#98D8C8"},
	{ID: "economics", Name: "經濟", Color: "#F7DC6F"},
	{ID: "geography", Name: "地理", Color: "#BB8FCE"},
	{ID: "history", Name: "歷史", Color: "#85C1E9"},
	{ID: "chinese-history", Name: "中國歷史", Color: "#F8C471"},
	{ID: "other", Name: "其他", Color: "#AAB7B8"},
}

// List returns a copy of the catalog so callers cannot mutate it.
func List() []models.Subject {
	out := make([]models.Subject, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup resolves a subject id to its display name. Unknown ids return the
// id unchanged, so free-form labels still flow through to the prompt.
func Lookup(id string) string {
	for _, s := range catalog {
		if s.ID == id {
			return s.Name
		}
	}
	return id
}
