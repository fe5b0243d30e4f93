package export

import (
	"fmt"
	"io"

	"github.com/fumiama/go-docx"

	"github.com/ngo-tools/grant-forge/pkg/models/domain"
)

const tableWidth = 9000

// WriteDocx streams doc as an OOXML word processing archive. The caller
// owns w and closes it on every path.
func WriteDocx(doc *domain.Document, w io.Writer) error {
	out := docx.New().WithDefaultTheme()

	title := out.AddParagraph()
	title.Justification("center")
	title.AddText(doc.Title).Size("40").Bold()

	if doc.Subtitle != "" {
		sub := out.AddParagraph()
		sub.Justification("center")
		sub.AddText(doc.Subtitle).Size("32").Bold()
	}

	for _, line := range doc.Meta {
		meta := out.AddParagraph()
		meta.Justification("center")
		meta.AddText(line)
	}

	for _, section := range doc.Sections {
		heading := out.AddParagraph()
		size := "28"
		if section.Sub {
			size = "24"
		}
		heading.AddText(section.Heading).Size(size).Bold()

		for _, para := range section.Paragraphs {
			out.AddParagraph().AddText(para)
		}
		if section.Table != nil {
			if err := writeTable(out, section.Table); err != nil {
				return err
			}
		}
		for _, entry := range section.Entries {
			out.AddParagraph().AddText(entry)
		}
	}

	if _, err := out.WriteTo(w); err != nil {
		return fmt.Errorf("write docx %q: %w", doc.Filename, err)
	}
	return nil
}

func writeTable(out *docx.Docx, table *domain.Table) error {
	rows := 1 + len(table.Rows) + len(table.Summary)
	cols := len(table.Header)

	t := out.AddTable(rows, cols, tableWidth, nil)

	for j, h := range table.Header {
		t.TableRows[0].TableCells[j].AddParagraph().AddText(h).Bold()
	}

	fill := func(rowIdx int, cells []string, bold bool) error {
		if len(cells) != cols {
			return fmt.Errorf("table row %d has %d cells, want %d", rowIdx, len(cells), cols)
		}
		for j, v := range cells {
			run := t.TableRows[rowIdx].TableCells[j].AddParagraph().AddText(v)
			if bold {
				run.Bold()
			}
		}
		return nil
	}

	row := 1
	for _, cells := range table.Rows {
		if err := fill(row, cells, false); err != nil {
			return err
		}
		row++
	}
	for i, cells := range table.Summary {
		// Subtotal and grand total rows render bold, contingency does not.
		bold := i == 0 || i == len(table.Summary)-1
		if err := fill(row, cells, bold); err != nil {
			return err
		}
		row++
	}
	return nil
}
