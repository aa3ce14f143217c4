package entities

// TableRef is a Baserow link-row reference as returned with
// user_field_names enabled.
type TableRef struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

// FileRef is a Baserow file-field attachment entry.
type FileRef struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// RefersTo reports whether any reference in the list points at id.
func RefersTo(refs []TableRef, id int) bool {
	for _, ref := range refs {
		if ref.ID == id {
			return true
		}
	}
	return false
}
