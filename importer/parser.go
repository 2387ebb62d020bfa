package importer

import "strings"

// ParseDelimited tokenizes raw delimited text into a matrix of string
// cells. It understands comma delimiters, double-quote escaping ("" inside
// a quoted field yields a literal quote) and newline or carriage-return
// row separators outside quotes. A trailing row without a terminating
// newline is kept. Malformed quoting never fails; the parser emits
// best-effort cells and leaves validation to the caller.
func ParseDelimited(text string) [][]string {
	text = strings.TrimPrefix(text, "\uFEFF")
	if text == "" {
		return nil
	}

	var (
		rows     [][]string
		row      []string
		cell     strings.Builder
		inQuotes bool
	)

	endCell := func() {
		row = append(row, cell.String())
		cell.Reset()
	}
	endRow := func() {
		endCell()
		rows = append(rows, row)
		row = nil
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		c := runes[i]

		if inQuotes {
			switch c {
			case '"':
				if i+1 < len(runes) && runes[i+1] == '"' {
					cell.WriteRune('"')
					i++
				} else {
					inQuotes = false
				}
			default:
				cell.WriteRune(c)
			}
			continue
		}

		switch c {
		case '"':
			inQuotes = true
		case ',':
			endCell()
		case '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			endRow()
		case '\n':
			endRow()
		default:
			cell.WriteRune(c)
		}
	}

	// Trailing row without a newline. A file ending in a newline leaves
	// nothing pending.
	if cell.Len() > 0 || len(row) > 0 {
		endRow()
	}

	return rows
}

// isBlankRow reports whether every cell in the row is empty after trimming.
func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// cellAt returns the trimmed cell at the given column, or empty when the
// column is out of range or unmapped (negative).
func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
