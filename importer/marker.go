package importer

import (
	"fmt"
	"regexp"
	"strings"
)

// Step text markers carry row-level precondition and note values when
// they differ within a group and cannot live on the case itself. The
// format is string-embedded metadata and assumes at most one marker of
// each kind per step; SplitStepMarkers is a display helper only.
var (
	leadingConditionRe = regexp.MustCompile(`^\[조건: ([^\]]*)\]\s*`)
	trailingNoteRe     = regexp.MustCompile(`\s*\[비고: ([^\]]*)\]$`)
)

// renderStepText decorates a row's action text with its precondition and
// note markers. Blank values contribute no marker.
func renderStepText(action, precondition, note string) string {
	text := action
	if precondition != "" {
		text = fmt.Sprintf("[조건: %s]\n%s", precondition, text)
	}
	if note != "" {
		text = fmt.Sprintf("%s\n[비고: %s]", text, note)
	}
	return text
}

// SplitStepMarkers strips a single leading condition marker and a single
// trailing note marker from step text for structured display. The
// remaining text is returned as the action.
func SplitStepMarkers(text string) (precondition, action, note string) {
	action = text

	if m := leadingConditionRe.FindStringSubmatch(action); m != nil {
		precondition = m[1]
		action = action[len(m[0]):]
	}
	if m := trailingNoteRe.FindStringSubmatch(action); m != nil {
		note = m[1]
		action = action[:len(action)-len(m[0])]
	}

	return precondition, strings.TrimSpace(action), note
}
