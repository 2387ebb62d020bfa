package importer

import "strings"

// headerScanLimit caps how many leading rows are scored when locating the
// header row.
const headerScanLimit = 20

// headerKeywords is the bilingual vocabulary used to score candidate
// header rows. A cell matches when its lowercased, trimmed text contains
// any keyword.
var headerKeywords = []string{
	"title", "제목",
	"section", "섹션", "folder", "폴더",
	"priority", "우선순위", "중요도",
	"type", "유형",
	"precondition", "사전조건", "전제",
	"step", "단계", "절차", "action",
	"expected", "기대", "결과", "예상",
	"note", "비고", "노트", "remarks",
}

// DetectHeaderRow scores the first rows of the matrix against the keyword
// vocabulary and returns the index of the best-scoring non-blank row along
// with its cells. Ties resolve to the earliest row; when every row scores
// zero the first non-blank row wins. A fully blank matrix yields index 0.
func DetectHeaderRow(rows [][]string) (int, []string) {
	if len(rows) == 0 {
		return 0, nil
	}

	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}

	bestIdx := -1
	bestScore := 0
	firstNonBlank := -1

	for i := 0; i < limit; i++ {
		if isBlankRow(rows[i]) {
			continue
		}
		if firstNonBlank < 0 {
			firstNonBlank = i
		}

		score := scoreHeaderRow(rows[i])
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		bestIdx = firstNonBlank
	}
	if bestIdx < 0 {
		bestIdx = 0
	}

	return bestIdx, rows[bestIdx]
}

func scoreHeaderRow(cells []string) int {
	score := 0
	for _, cell := range cells {
		text := strings.ToLower(strings.TrimSpace(cell))
		if text == "" {
			continue
		}
		for _, kw := range headerKeywords {
			if strings.Contains(text, kw) {
				score++
				break
			}
		}
	}
	return score
}
