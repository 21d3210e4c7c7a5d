package payloads

// ContentLibrary is a vCenter content library.
type ContentLibrary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// ContentLibraryItem is one item (template, ISO, OVF) inside a library.
type ContentLibraryItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type,omitempty"`
	LibraryID string `json:"library_id"`
}
