package importer

import (
	"testing"

	"github.com/hairizuanbinnoorazman/testtrack/testcase"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePriority(t *testing.T) {
	tests := []struct {
		in   string
		want testcase.Priority
	}{
		{"High", testcase.PriorityHigh},
		{"h", testcase.PriorityHigh},
		{"상", testcase.PriorityHigh},
		{"A", testcase.PriorityHigh},
		{"1", testcase.PriorityHigh},
		{"urgent", testcase.PriorityHigh},
		{"Low", testcase.PriorityLow},
		{"하", testcase.PriorityLow},
		{"3", testcase.PriorityLow},
		{"Medium", testcase.PriorityMedium},
		{"", testcase.PriorityMedium},
		{"whatever", testcase.PriorityMedium},
		{"  high  ", testcase.PriorityHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePriority(tt.in), "input %q", tt.in)
	}
}

func TestNormalizePriority_Idempotent(t *testing.T) {
	for _, in := range []string{"High", "low", "garbage", ""} {
		once := NormalizePriority(in)
		assert.Equal(t, once, NormalizePriority(string(once)))
	}
}

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		in   string
		want testcase.Type
	}{
		{"UI Test", testcase.TypeUI},
		{"화면", testcase.TypeUI},
		{"Performance", testcase.TypePerformance},
		{"성능", testcase.TypePerformance},
		{"Security", testcase.TypeSecurity},
		{"보안", testcase.TypeSecurity},
		{"Functional", testcase.TypeFunctional},
		{"", testcase.TypeFunctional},
		{"regression", testcase.TypeFunctional},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeType(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeType_Idempotent(t *testing.T) {
	for _, in := range []string{"UI", "perf check", "unknown", ""} {
		once := NormalizeType(in)
		assert.Equal(t, once, NormalizeType(string(once)))
	}
}
