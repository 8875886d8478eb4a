package models

const (
	NoticeDefault     = "default"
	NoticeDestructive = "destructive"
)

// Notice is a short advisory message surfaced to the customer.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

func (n Notice) IsZero() bool {
	return n.Title == "" && n.Description == ""
}
