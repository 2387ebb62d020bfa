package importer

import (
	"strings"

	"github.com/hairizuanbinnoorazman/testtrack/testcase"
)

var (
	highPriorityTokens = []string{"high", "h", "상", "a", "1", "urgent"}
	lowPriorityTokens  = []string{"low", "l", "하", "c", "3"}
)

// NormalizePriority maps free-text priority onto the closed enumeration.
// Unknown and empty inputs fall back to medium. Total and idempotent.
func NormalizePriority(text string) testcase.Priority {
	token := strings.ToLower(strings.TrimSpace(text))

	for _, t := range highPriorityTokens {
		if token == t {
			return testcase.PriorityHigh
		}
	}
	for _, t := range lowPriorityTokens {
		if token == t {
			return testcase.PriorityLow
		}
	}
	return testcase.PriorityMedium
}

// NormalizeType maps free-text case type onto the closed enumeration via
// substring containment, checked in fixed order. Unknown and empty inputs
// fall back to functional. Total and idempotent.
func NormalizeType(text string) testcase.Type {
	token := strings.ToLower(strings.TrimSpace(text))

	switch {
	case containsAny(token, []string{"ui", "유저", "화면"}):
		return testcase.TypeUI
	case containsAny(token, []string{"perf", "성능"}):
		return testcase.TypePerformance
	case containsAny(token, []string{"sec", "보안"}):
		return testcase.TypeSecurity
	default:
		return testcase.TypeFunctional
	}
}
