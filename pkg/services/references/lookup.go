// Package references maps free-text proposal topics to a fixed citation
// catalog. This is a deterministic dispatch table, not a search: no
// ranking, no deduplication, no external lookup.
package references

import (
	"strings"

	"github.com/ngo-tools/grant-forge/pkg/models/domain"
)

// MaxResults caps every lookup.
const MaxResults = 5

// Search classifies the input by case-insensitive keyword match against
// the sector groups, in fixed priority order, and returns the matching
// catalog entries. With no match at all the poverty/SDG set applies; a
// technology reference is appended when fewer than 3 entries accumulated
// or technology keywords matched.
func Search(topics, title, beneficiaries string) []domain.Reference {
	_ = beneficiaries // carried by the contract, not consulted by matching

	topicLower := strings.ToLower(topics)
	titleLower := strings.ToLower(title)

	isYouth := strings.Contains(topicLower, "youth") || strings.Contains(titleLower, "youth") ||
		strings.Contains(topicLower, "young")
	isEducation := strings.Contains(topicLower, "education") || strings.Contains(titleLower, "education") ||
		strings.Contains(topicLower, "school")
	isHealth := strings.Contains(topicLower, "health") || strings.Contains(titleLower, "health") ||
		strings.Contains(topicLower, "medical")
	isEnvironment := strings.Contains(topicLower, "environment") || strings.Contains(titleLower, "climate") ||
		strings.Contains(topicLower, "green")
	isWomen := strings.Contains(topicLower, "women") || strings.Contains(titleLower, "gender") ||
		strings.Contains(topicLower, "female")
	isAgriculture := strings.Contains(topicLower, "agriculture") || strings.Contains(titleLower, "farming") ||
		strings.Contains(topicLower, "food")
	isTechnology := strings.Contains(topicLower, "technology") || strings.Contains(titleLower, "digital") ||
		strings.Contains(topicLower, "tech")
	isPoverty := strings.Contains(topicLower, "poverty") || strings.Contains(titleLower, "economic") ||
		strings.Contains(topicLower, "income")

	var result []domain.Reference

	if isYouth || isEducation {
		result = append(result, youthEducationRefs...)
	}
	if isHealth {
		result = append(result, healthRefs...)
	}
	if isEnvironment || isAgriculture {
		result = append(result, environmentAgricultureRefs...)
	}
	if isWomen {
		result = append(result, womenGenderRefs...)
	}
	if isPoverty || len(result) == 0 {
		result = append(result, povertySDGRefs...)
	}
	if isTechnology || len(result) < 3 {
		result = append(result, technologyRef)
	}

	if len(result) > MaxResults {
		result = result[:MaxResults]
	}
	return result
}
