package importer

// RowGroup is one logical test case: a title-bearing row plus the
// continuation rows that follow it.
type RowGroup struct {
	Title string
	Rows  [][]string
}

// GroupRows partitions body rows (everything strictly after the header
// row) into per-case groups. A row opens a new group when its mapped
// title cell is non-blank; rows without a title extend the current group
// with additional step data. Fully blank rows are skipped and neither
// open nor close a group. Rows appearing before the first title-bearing
// row are dropped.
func GroupRows(rows [][]string, headerIndex int, mapping Mapping) []RowGroup {
	titleCol := mapping.Column(FieldTitle)

	var groups []RowGroup
	var current *RowGroup

	for i := headerIndex + 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}

		title := cellAt(row, titleCol)
		if title != "" {
			groups = append(groups, RowGroup{Title: title})
			current = &groups[len(groups)-1]
		}
		if current == nil {
			continue
		}

		current.Rows = append(current.Rows, row)
	}

	return groups
}
