// Package enrich expands short user input into templated document prose.
// Every exported Expand function is pure: blank driving input yields an
// empty section, everything else is fixed boilerplate around the user's
// verbatim text. The proposal theme is the single non-deterministic
// section, and its randomness is injected through Source.
package enrich

import (
	"fmt"
	"strings"

	"github.com/ngo-tools/grant-forge/pkg/models/domain"
)

// Source supplies the pseudo-random pick for theme generation.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// GenerateTheme returns the user's theme when supplied, otherwise one of
// a fixed set of templates interpolated with fragments of the
// organization, project and beneficiary names.
func GenerateTheme(f *domain.ProposalForm, src Source) string {
	if f.Theme != "" {
		return f.Theme
	}

	themes := []string{
		fmt.Sprintf("Building Bridges to %s", orDefault(lastWords(f.TargetBeneficiaries, 2), "Success")),
		fmt.Sprintf("Empowering %s, Transforming Lives", orDefault(firstWords(f.TargetBeneficiaries, 1), "Communities")),
		fmt.Sprintf("Sustainable Change Through %s", orDefault(lastWords(f.ProjectTitle, 2), "Action")),
		fmt.Sprintf("Together for %s", orDefault(firstWords(f.TargetBeneficiaries, 3), "a Better Tomorrow")),
		fmt.Sprintf("%s Commitment to Excellence", orDefault(firstWords(f.OrganizationName, 1), "Our")),
	}
	return themes[src.Intn(len(themes))]
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func firstWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

func lastWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[len(words)-n:]
	}
	return strings.Join(words, " ")
}
