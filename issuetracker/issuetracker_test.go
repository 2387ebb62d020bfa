package issuetracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"github issue", "https://github.com/acme/shop/issues/42", "acme/shop#42"},
		{"jira browse", "https://acme.atlassian.net/browse/QA-17", "QA-17"},
		{"jira with context path", "https://jira.acme.com/secure/browse/PROJ-1234", "PROJ-1234"},
		{"github non-issue path", "https://github.com/acme/shop/pull/42", "github.com"},
		{"unknown tracker falls back to host", "https://bugs.example.com/1234", "bugs.example.com"},
		{"surrounding whitespace trimmed", "  https://github.com/a/b/issues/1 ", "a/b#1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Label(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid urls rejected", func(t *testing.T) {
		for _, raw := range []string{"", "not a url", "ftp://example.com/x"} {
			_, err := Label(raw)
			assert.ErrorIs(t, err, ErrInvalidIssueURL, "input %q", raw)
		}
	})
}
