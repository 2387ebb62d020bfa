package exporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/hairizuanbinnoorazman/testtrack/importer"
	"github.com/hairizuanbinnoorazman/testtrack/section"
	"github.com/hairizuanbinnoorazman/testtrack/testcase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCase(sectionID *uuid.UUID, title string, steps testcase.Steps) *testcase.TestCase {
	return &testcase.TestCase{
		ID:           uuid.New(),
		ProjectID:    uuid.New(),
		SectionID:    sectionID,
		Title:        title,
		Priority:     testcase.PriorityHigh,
		Type:         testcase.TypeUI,
		Steps:        steps,
		PlatformType: testcase.PlatformWeb,
		AuthorID:     uuid.New(),
	}
}

func TestWriteCases(t *testing.T) {
	sectionID := uuid.New()
	sections := map[string]string{sectionID.String(): "Auth"}

	t.Run("lead row carries attributes, continuations only steps", func(t *testing.T) {
		tc := makeCase(&sectionID, "Login works", testcase.Steps{
			{Step: "Open page", Expected: "Form shown"},
			{Step: "Submit", Expected: "Redirected"},
		})

		var buf bytes.Buffer
		require.NoError(t, WriteCases(&buf, []*testcase.TestCase{tc}, sections))

		out := strings.TrimPrefix(buf.String(), "\uFEFF")
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)

		assert.Equal(t, "Section,Title,Priority,Type,Precondition,Note,Step,Expected Result", lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "Auth,Login works,high,ui"))
		assert.True(t, strings.HasPrefix(lines[2], ",,,,,,Submit"))
	})

	t.Run("output starts with byte order mark", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteCases(&buf, nil, nil))
		assert.True(t, strings.HasPrefix(buf.String(), "\uFEFF"))
	})

	t.Run("unknown section falls back to default title", func(t *testing.T) {
		tc := makeCase(nil, "Orphan", testcase.Steps{{Step: "Do", Expected: "Done"}})

		var buf bytes.Buffer
		require.NoError(t, WriteCases(&buf, []*testcase.TestCase{tc}, sections))
		assert.Contains(t, buf.String(), section.DefaultTitle)
	})

	t.Run("embedded newlines flattened", func(t *testing.T) {
		tc := makeCase(&sectionID, "Multiline", testcase.Steps{
			{Step: "line one\nline two", Expected: "ok"},
		})

		var buf bytes.Buffer
		require.NoError(t, WriteCases(&buf, []*testcase.TestCase{tc}, sections))
		assert.Contains(t, buf.String(), `line one\nline two`)
		assert.NotContains(t, buf.String(), "line one\nline two")
	})
}

func TestWriteCases_RoundTrip(t *testing.T) {
	sectionID := uuid.New()
	sections := map[string]string{sectionID.String(): "Checkout"}

	original := makeCase(&sectionID, "Pay with card", testcase.Steps{
		{Step: "Open cart", Expected: "Items listed"},
		{Step: "Enter card", Expected: "Accepted"},
	})
	original.Precondition = "cart has items"

	var buf bytes.Buffer
	require.NoError(t, WriteCases(&buf, []*testcase.TestCase{original}, sections))

	preview, err := importer.BuildPreview(buf.String(), testcase.PlatformWeb)
	require.NoError(t, err)
	require.Len(t, preview.Drafts, 1)

	draft := preview.Drafts[0]
	assert.Equal(t, "Checkout", draft.SectionTitle)
	assert.Equal(t, "Pay with card", draft.Title)
	assert.Equal(t, testcase.PriorityHigh, draft.Priority)
	assert.Equal(t, testcase.TypeUI, draft.Type)
	require.Len(t, draft.Steps, 2)
	assert.Equal(t, "Accepted", draft.Steps[1].Expected)

	// The precondition only appears on the lead row of the export, so on
	// re-import it no longer matches the blank continuation row and comes
	// back as a marker on the first step instead of a case-level field.
	assert.Empty(t, draft.Precondition)
	assert.Contains(t, draft.Steps[0].Step, "[조건: cart has items]")
}
