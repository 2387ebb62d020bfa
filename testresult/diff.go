package testresult

import (
	"fmt"

	"github.com/hairizuanbinnoorazman/testtrack/historylog"
)

// Diff computes the field-level deltas between two execution states for
// the history log. A nil before compares against the untested zero state.
func Diff(before, after *TestResult) historylog.Changes {
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

	prevStatus := string(StatusUntested)
	prevActual := ""
	prevComment := ""
	prevIssues := 0
	if before != nil {
		prevStatus = string(before.Status)
		prevActual = before.ActualResult
		prevComment = before.Comment
		prevIssues = len(before.Issues)
	}

	add("status", prevStatus, string(after.Status))
	add("actual_result", prevActual, after.ActualResult)
	add("comment", prevComment, after.Comment)
	add("issues", fmt.Sprintf("%d", prevIssues), fmt.Sprintf("%d", len(after.Issues)))

	return changes
}
