package domain

// Document is the exportable, ordered representation of one generated
// funding document. It exists only for the duration of an export.
type Document struct {
	Title    string
	Subtitle string
	// Meta holds the remaining title-page lines (organization, period, ...).
	Meta     []string
	Sections []Section
	Filename string
}

// Section is one headed block of the document. A section carries prose
// paragraphs, a table, or both (process monitoring does both).
type Section struct {
	Heading    string
	Paragraphs []string
	Table      *Table
	// Entries holds numbered list items (the references section).
	Entries []string
	// Sub marks a nested heading (budget category justifications).
	Sub bool
}

// Table is a fixed-header data table. Summary rows, when present, are
// appended after the data rows with nothing following the last one.
type Table struct {
	Header  []string
	Rows    [][]string
	Summary [][]string
}

func (s Section) Empty() bool {
	return len(s.Paragraphs) == 0 && s.Table == nil && len(s.Entries) == 0
}
