package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/ngo-tools/grant-forge/pkg/models/domain"
)

type TableConfig struct {
	ColumnWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		ColumnWidth: 18,
	}
}

// Reporter renders a generated document as formatted terminal text.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(doc *domain.Document) error {
	funcMap := template.FuncMap{
		"formatRow": func(cells []string) string {
			parts := make([]string, len(cells))
			for i, cell := range cells {
				parts[i] = fmt.Sprintf(" %-*s ", c.config.ColumnWidth, cell)
			}
			return "|" + strings.Join(parts, "|") + "|"
		},
		"separator": func(cols int) string {
			segment := strings.Repeat("-", c.config.ColumnWidth+2)
			parts := make([]string, cols)
			for i := range parts {
				parts[i] = segment
			}
			return "+" + strings.Join(parts, "+") + "+"
		},
		"indent": func(sub bool) string {
			if sub {
				return "  "
			}
			return ""
		},
	}

	tmpl := `
{{.Title}}
{{if .Subtitle}}{{.Subtitle}}
{{end}}{{range .Meta}}{{.}}
{{end}}
{{range .Sections}}
{{indent .Sub}}=== {{.Heading}} ===
{{range .Paragraphs}}
{{.}}
{{end}}{{if .Table}}
{{separator (len .Table.Header)}}
{{formatRow .Table.Header}}
{{separator (len .Table.Header)}}
{{range .Table.Rows}}{{formatRow .}}
{{end}}{{range .Table.Summary}}{{formatRow .}}
{{end}}{{separator (len .Table.Header)}}
{{end}}{{range .Entries}}{{.}}
{{end}}{{end}}
`

	t, err := template.New("document").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, doc)
}
