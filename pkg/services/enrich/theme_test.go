package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ngo-tools/grant-forge/pkg/models/domain"
)

type fixedSource int

func (f fixedSource) Intn(n int) int { return int(f) % n }

func TestGenerateTheme(t *testing.T) {
	form := &domain.ProposalForm{
		OrganizationName:    "Hope Foundation International",
		ProjectTitle:        "Digital Skills for Rural Youth",
		TargetBeneficiaries: "young women in rural districts",
	}

	tests := []struct {
		name     string
		form     *domain.ProposalForm
		src      Source
		expected string
	}{
		{
			name:     "user supplied theme wins",
			form:     &domain.ProposalForm{Theme: "Our Own Theme"},
			src:      fixedSource(0),
			expected: "Our Own Theme",
		},
		{
			name:     "last two beneficiary words",
			form:     form,
			src:      fixedSource(0),
			expected: "Building Bridges to rural districts",
		},
		{
			name:     "first beneficiary word",
			form:     form,
			src:      fixedSource(1),
			expected: "Empowering young, Transforming Lives",
		},
		{
			name:     "last two title words",
			form:     form,
			src:      fixedSource(2),
			expected: "Sustainable Change Through Rural Youth",
		},
		{
			name:     "first three beneficiary words",
			form:     form,
			src:      fixedSource(3),
			expected: "Together for young women in",
		},
		{
			name:     "first organization word",
			form:     form,
			src:      fixedSource(4),
			expected: "Hope Commitment to Excellence",
		},
		{
			name:     "blank form falls back to defaults",
			form:     &domain.ProposalForm{},
			src:      fixedSource(3),
			expected: "Together for a Better Tomorrow",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateTheme(tt.form, tt.src))
		})
	}
}
