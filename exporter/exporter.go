package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/hairizuanbinnoorazman/testtrack/section"
	"github.com/hairizuanbinnoorazman/testtrack/testcase"
)

// csvHeader is the column layout produced by WriteCases. Re-importing an
// export through the column-mapping heuristic reproduces the same cases.
var csvHeader = []string{"Section", "Title", "Priority", "Type", "Precondition", "Note", "Step", "Expected Result"}

// WriteCases writes the cases as CSV. Each case gets one lead row carrying
// its attributes and first step, followed by one continuation row per
// additional step with the leading columns blank. The output starts with a
// UTF-8 byte-order-mark for spreadsheet compatibility, and embedded
// newlines are flattened to a literal \n token.
func WriteCases(w io.Writer, cases []*testcase.TestCase, sections map[string]string) error {
	if _, err := w.Write([]byte("\uFEFF")); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, tc := range cases {
		sectionTitle := section.DefaultTitle
		if tc.SectionID != nil {
			if title, ok := sections[tc.SectionID.String()]; ok {
				sectionTitle = title
			}
		}

		for i, step := range tc.Steps {
			var row []string
			if i == 0 {
				row = []string{
					escapeNewlines(sectionTitle),
					escapeNewlines(tc.Title),
					string(tc.Priority),
					string(tc.Type),
					escapeNewlines(tc.Precondition),
					escapeNewlines(tc.Note),
					escapeNewlines(step.Step),
					escapeNewlines(step.Expected),
				}
			} else {
				row = []string{"", "", "", "", "", "",
					escapeNewlines(step.Step),
					escapeNewlines(step.Expected),
				}
			}

			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write case row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// escapeNewlines flattens embedded line breaks to a literal \n token so
// each case row stays a single spreadsheet line.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\\n")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\n")
	return s
}
