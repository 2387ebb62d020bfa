package testcase

import (
	"fmt"
	"strings"

	"github.com/hairizuanbinnoorazman/testtrack/historylog"
)

// Diff computes the field-level deltas between two versions of a test case.
// The result feeds the history log; an empty result means no entry is
// written for the update.
func Diff(before, after *TestCase) historylog.Changes {
	var changes historylog.Changes

	add := func(field, oldVal, newVal string) {
		if oldVal != newVal {
			changes = append(changes, historylog.Change{
				Field: field,
				Old:   oldVal,
				New:   newVal,
			})
		}
	}

	add("title", before.Title, after.Title)
	add("priority", string(before.Priority), string(after.Priority))
	add("type", string(before.Type), string(after.Type))
	add("precondition", before.Precondition, after.Precondition)
	add("note", before.Note, after.Note)
	add("platform_type", string(before.PlatformType), string(after.PlatformType))

	oldSection := ""
	if before.SectionID != nil {
		oldSection = before.SectionID.String()
	}
	newSection := ""
	if after.SectionID != nil {
		newSection = after.SectionID.String()
	}
	add("section_id", oldSection, newSection)

	add("steps", summarizeSteps(before.Steps), summarizeSteps(after.Steps))

	return changes
}

// summarizeSteps renders the step list into a compact comparable form so
// that step edits show up as a single delta rather than a JSON blob.
func summarizeSteps(steps Steps) string {
	if len(steps) == 0 {
		return ""
	}

	parts := make([]string, 0, len(steps))
	for i, st := range steps {
		parts = append(parts, fmt.Sprintf("%d. %s => %s", i+1, st.Step, st.Expected))
	}
	return strings.Join(parts, "\n")
}
