package domain

// Reference is a citation drawn verbatim from the built-in catalog.
// References are selected by keyword match, never generated.
type Reference struct {
	ID        string
	Title     string
	Source    string
	Year      string
	URL       string
	Relevance string
}
