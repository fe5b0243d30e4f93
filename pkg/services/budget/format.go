package budget

import (
	"strconv"
	"strings"
)

// FormatAmount renders a stored value for display with thousands
// separators. Stored values stay unrounded; only display passes
// through here.
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
