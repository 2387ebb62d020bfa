package importer

import (
	"github.com/google/uuid"
	"github.com/hairizuanbinnoorazman/testtrack/testcase"
)

// DraftCase is a materialized test case ready for the import sink. The
// section is still a title; the sink resolves it to a section ID.
type DraftCase struct {
	SectionTitle string
	Title        string
	Priority     testcase.Priority
	Type         testcase.Type
	Precondition string
	Note         string
	Steps        testcase.Steps
	Platform     testcase.Platform
}

// MaterializeCases turns row groups into draft cases. Per group, when
// every row agrees on its precondition (or note) the value is promoted to
// the case; otherwise the case-level field stays blank and each row's own
// value is folded into its step text as a marker. Rows whose action and
// expected are both blank are skipped, and groups producing zero steps are
// dropped entirely.
func MaterializeCases(groups []RowGroup, mapping Mapping, platform testcase.Platform) []DraftCase {
	var drafts []DraftCase

	sectionCol := mapping.Column(FieldSection)
	priorityCol := mapping.Column(FieldPriority)
	typeCol := mapping.Column(FieldType)
	precondCol := mapping.Column(FieldPrecondition)
	noteCol := mapping.Column(FieldNote)
	stepCol := mapping.Column(FieldStep)
	expectedCol := mapping.Column(FieldExpected)

	for _, group := range groups {
		if len(group.Rows) == 0 {
			continue
		}

		preconds := make([]string, len(group.Rows))
		notes := make([]string, len(group.Rows))
		for i, row := range group.Rows {
			preconds[i] = cellAt(row, precondCol)
			notes[i] = cellAt(row, noteCol)
		}

		allPrecondsSame := allSame(preconds)
		allNotesSame := allSame(notes)

		draft := DraftCase{
			SectionTitle: cellAt(group.Rows[0], sectionCol),
			Title:        group.Title,
			Priority:     NormalizePriority(cellAt(group.Rows[0], priorityCol)),
			Type:         NormalizeType(cellAt(group.Rows[0], typeCol)),
			Platform:     platform,
		}
		if allPrecondsSame {
			draft.Precondition = preconds[0]
		}
		if allNotesSame {
			draft.Note = notes[0]
		}

		for i, row := range group.Rows {
			action := cellAt(row, stepCol)
			expected := cellAt(row, expectedCol)
			if action == "" && expected == "" {
				continue
			}

			stepPrecond := ""
			if !allPrecondsSame {
				stepPrecond = preconds[i]
			}
			stepNote := ""
			if !allNotesSame {
				stepNote = notes[i]
			}

			draft.Steps = append(draft.Steps, testcase.Step{
				ID:       uuid.New(),
				Step:     renderStepText(action, stepPrecond, stepNote),
				Expected: expected,
			})
		}

		if len(draft.Steps) == 0 {
			continue
		}

		drafts = append(drafts, draft)
	}

	return drafts
}

// allSame reports whether every value equals the first one. Vacuously true
// for single-element slices.
func allSame(values []string) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
