// Package render assembles enriched form content into ordered,
// export-ready documents. Section order per document type is fixed;
// sections whose content is empty are dropped so no heading renders
// without a body.
package render

import "strings"

// paragraphs splits prose into paragraph blocks on blank lines,
// dropping empty fragments.
func paragraphs(prose string) []string {
	var out []string
	for _, block := range strings.Split(prose, "\n\n") {
		if strings.TrimSpace(block) != "" {
			out = append(out, block)
		}
	}
	return out
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
