package references

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchYouthTopics(t *testing.T) {
	refs := Search("youth unemployment Africa", "Youth Jobs Initiative", "")

	// the youth/education group alone satisfies the 3-entry threshold,
	// so no technology fallback is appended
	require.Len(t, refs, 3)
	assert.Equal(t, "Youth Employment in Sub-Saharan Africa: Progress and Prospects", refs[0].Title)
	assert.Equal(t, "World Bank Africa Region", refs[0].Source)
}

func TestSearchHealthGetsTechnologyFallback(t *testing.T) {
	refs := Search("community health workers", "", "")

	// two health entries, below the threshold, so the fixed technology
	// reference is appended
	require.Len(t, refs, 3)
	assert.Equal(t, "Universal Health Coverage: Global Monitoring Report 2024", refs[0].Title)
	assert.Equal(t, "GSMA Mobile for Development", refs[2].Source)
}

func TestSearchNoMatchFallsBackToPovertySDG(t *testing.T) {
	refs := Search("basket weaving", "Community Crafts", "")

	require.Len(t, refs, 3)
	assert.Equal(t, "Poverty and Shared Prosperity 2024: Global Outlook", refs[0].Title)
}

func TestSearchTruncatesToFive(t *testing.T) {
	refs := Search("youth education health women poverty", "", "")
	assert.Len(t, refs, MaxResults)
}

func TestSearchCaseInsensitive(t *testing.T) {
	upper := Search("YOUTH Unemployment", "", "")
	lower := Search("youth unemployment", "", "")
	assert.Equal(t, lower, upper)
}

func TestSearchDeterministic(t *testing.T) {
	first := Search("women farming", "Gender and Agriculture", "rural households")
	second := Search("women farming", "Gender and Agriculture", "rural households")
	assert.Equal(t, first, second)
}
