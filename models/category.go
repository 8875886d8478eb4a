package models

// ServiceCategory is one entry of the fixed category catalog.
type ServiceCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`    // e.g. "wrench"
	Color       string `json:"color"`   // e.g. "text-blue-600"
	BgColor     string `json:"bgColor"` // e.g. "bg-blue-50"
}
