package payloads

// Tag is a vSphere tag attached to an inventory object.
type Tag struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CategoryID  string `json:"category_id"`
}
