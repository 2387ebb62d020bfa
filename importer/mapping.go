package importer

import "strings"

// Field identifies a test case attribute a spreadsheet column can map to.
type Field string

const (
	FieldSection      Field = "section"
	FieldTitle        Field = "title"
	FieldPriority     Field = "priority"
	FieldType         Field = "type"
	FieldPrecondition Field = "precondition"
	FieldNote         Field = "note"
	FieldStep         Field = "step"
	FieldExpected     Field = "expected"
)

// Mapping assigns fields to column indexes. Fields absent from the input
// are simply missing from the map.
type Mapping map[Field]int

// Column returns the column index for a field, or -1 when unmapped.
func (m Mapping) Column(f Field) int {
	if idx, ok := m[f]; ok {
		return idx
	}
	return -1
}

// mappingRule classifies a header cell by substring keywords. Rules are
// checked in order; the first match claims the header.
type mappingRule struct {
	field    Field
	keywords []string
}

// mappingRules is ordered so compound headers classify by their leading
// concern ("Section Title" is a section column, "Expected Result" is an
// expected column).
var mappingRules = []mappingRule{
	{FieldSection, []string{"section", "섹션", "folder", "폴더"}},
	{FieldPrecondition, []string{"precondition", "pre-condition", "사전조건", "전제"}},
	{FieldPriority, []string{"priority", "우선순위", "중요도"}},
	{FieldType, []string{"type", "유형"}},
	{FieldNote, []string{"note", "비고", "노트", "remarks", "메모"}},
	{FieldExpected, []string{"expected", "기대", "예상", "결과"}},
	{FieldStep, []string{"step", "단계", "절차", "action"}},
	{FieldTitle, []string{"title", "제목", "name", "이름"}},
}

// MapColumns classifies each header cell into a field. Blank headers are
// skipped. A header claims at most one field, and when several headers
// match the same field the last one wins; this mirrors plain sequential
// assignment rather than best-match selection.
func MapColumns(headers []string) Mapping {
	mapping := make(Mapping)

	for col, header := range headers {
		text := strings.ToLower(strings.TrimSpace(header))
		if text == "" {
			continue
		}

		for _, rule := range mappingRules {
			if containsAny(text, rule.keywords) {
				mapping[rule.field] = col
				break
			}
		}
	}

	return mapping
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
