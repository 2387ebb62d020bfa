package importer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/hairizuanbinnoorazman/testtrack/historylog"
	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"github.com/hairizuanbinnoorazman/testtrack/section"
	"github.com/hairizuanbinnoorazman/testtrack/storage"
	"github.com/hairizuanbinnoorazman/testtrack/testcase"
)

var (
	// ErrNoRows is returned when the pasted or uploaded text yields no
	// parsable rows.
	ErrNoRows = errors.New("no parsable rows in input")

	// ErrTitleNotMapped is returned when the title field has no mapped
	// column. Import cannot proceed without it.
	ErrTitleNotMapped = errors.New("title column is not mapped")

	// ErrNothingToImport is returned when no row carries a title, so no
	// cases can be produced.
	ErrNothingToImport = errors.New("no cases to import")

	// ErrHeaderIndexOutOfRange is returned when the submitted header row
	// index does not point at a parsed row.
	ErrHeaderIndexOutOfRange = errors.New("header row index is out of range")
)

// Preview is the outcome of parsing and auto-mapping an uploaded file,
// shown to the user before committing.
type Preview struct {
	HeaderIndex int         `json:"header_index"`
	Headers     []string    `json:"headers"`
	Mapping     Mapping     `json:"mapping"`
	RowCount    int         `json:"row_count"`
	Drafts      []DraftCase `json:"drafts"`
}

// BuildPreview parses raw delimited text, locates the header row and
// proposes a column mapping plus the cases that mapping would produce.
// Returns ErrNoRows when nothing parsable was supplied.
func BuildPreview(text string, platform testcase.Platform) (*Preview, error) {
	rows := ParseDelimited(text)
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	headerIdx, headers := DetectHeaderRow(rows)
	mapping := MapColumns(headers)

	var drafts []DraftCase
	if mapping.Column(FieldTitle) >= 0 {
		groups := GroupRows(rows, headerIdx, mapping)
		drafts = MaterializeCases(groups, mapping, platform)
	}

	return &Preview{
		HeaderIndex: headerIdx,
		Headers:     headers,
		Mapping:     mapping,
		RowCount:    len(rows),
		Drafts:      drafts,
	}, nil
}

// Request is a commit of a previously previewed import. Text is re-parsed
// so the client only needs to resend the original blob plus any mapping
// overrides.
type Request struct {
	ProjectID   uuid.UUID
	Text        string
	HeaderIndex int
	Mapping     Mapping
	Platform    testcase.Platform
	ActorID     uuid.UUID
	ActorName   string
}

// Result summarizes a committed import.
type Result struct {
	CasesImported   int      `json:"cases_imported"`
	SectionsCreated int      `json:"sections_created"`
	SectionTitles   []string `json:"section_titles"`
	ArchivePath     string   `json:"archive_path,omitempty"`
	ArchiveURL      string   `json:"archive_url,omitempty"`
}

// Importer runs the import pipeline end to end and persists the outcome.
type Importer struct {
	sections section.Store
	cases    testcase.Store
	history  historylog.Store
	archive  storage.BlobStorage
	logger   logger.Logger
}

// New creates an importer. The archive storage may be nil, in which case
// raw uploads are not retained.
func New(sections section.Store, cases testcase.Store, history historylog.Store, archive storage.BlobStorage, log logger.Logger) *Importer {
	return &Importer{
		sections: sections,
		cases:    cases,
		history:  history,
		archive:  archive,
		logger:   log,
	}
}

// Import validates the mapping, groups and materializes the body rows and
// persists the outcome in two passes: sections are resolved once per
// distinct title, then all cases are inserted as one batch with a CREATE
// history entry each. The two passes are not wrapped in a transaction; a
// failure between them can leave behind empty sections.
func (im *Importer) Import(ctx context.Context, req Request) (*Result, error) {
	rows := ParseDelimited(req.Text)
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	// The header index is client-supplied (the preview lets the user
	// override it) and must point at a parsed row.
	if req.HeaderIndex < 0 || req.HeaderIndex >= len(rows) {
		return nil, ErrHeaderIndexOutOfRange
	}
	if req.Mapping.Column(FieldTitle) < 0 {
		return nil, ErrTitleNotMapped
	}

	groups := GroupRows(rows, req.HeaderIndex, req.Mapping)
	drafts := MaterializeCases(groups, req.Mapping, req.Platform)
	if len(drafts) == 0 {
		return nil, ErrNothingToImport
	}

	// Pass one: resolve each distinct section title exactly once so that
	// many cases sharing a section never create duplicates.
	sectionIDs := make(map[string]uuid.UUID)
	created := 0
	for _, draft := range drafts {
		title := draft.SectionTitle
		if title == "" {
			title = section.DefaultTitle
		}
		if _, ok := sectionIDs[title]; ok {
			continue
		}

		existing, err := im.sections.GetByTitle(ctx, req.ProjectID, title)
		if err == nil {
			sectionIDs[title] = existing.ID
			continue
		}
		if !errors.Is(err, section.ErrSectionNotFound) {
			return nil, fmt.Errorf("failed to resolve section %q: %w", title, err)
		}

		sec := &section.Section{ProjectID: req.ProjectID, Title: title}
		if err := im.sections.Create(ctx, sec); err != nil {
			return nil, fmt.Errorf("failed to create section %q: %w", title, err)
		}
		sectionIDs[title] = sec.ID
		created++
	}

	// Pass two: insert all cases in one batch.
	cases := make([]*testcase.TestCase, 0, len(drafts))
	for _, draft := range drafts {
		title := draft.SectionTitle
		if title == "" {
			title = section.DefaultTitle
		}
		sectionID := sectionIDs[title]

		cases = append(cases, &testcase.TestCase{
			ProjectID:    req.ProjectID,
			SectionID:    &sectionID,
			Title:        draft.Title,
			Priority:     draft.Priority,
			Type:         draft.Type,
			Precondition: draft.Precondition,
			Note:         draft.Note,
			Steps:        draft.Steps,
			PlatformType: draft.Platform,
			AuthorID:     req.ActorID,
		})
	}

	if err := im.cases.CreateBatch(ctx, cases); err != nil {
		return nil, fmt.Errorf("failed to insert cases: %w", err)
	}

	for _, tc := range cases {
		entry := &historylog.HistoryLog{
			ProjectID:    req.ProjectID,
			EntityID:     tc.ID,
			Action:       historylog.ActionCreate,
			ModifierID:   req.ActorID,
			ModifierName: req.ActorName,
		}
		if err := im.history.Append(ctx, entry); err != nil {
			im.logger.Warn(ctx, "failed to append import history entry", map[string]interface{}{
				"error":   err.Error(),
				"case_id": tc.ID.String(),
			})
		}
	}

	result := &Result{
		CasesImported:   len(cases),
		SectionsCreated: created,
		SectionTitles:   sortedTitles(sectionIDs),
	}

	// Retain the raw upload for audit. Failures only log a warning; the
	// import itself already succeeded.
	if im.archive != nil {
		path := fmt.Sprintf("imports/%s/%s.csv", req.ProjectID, uuid.New())
		if err := im.archive.Upload(ctx, path, strings.NewReader(req.Text)); err != nil {
			im.logger.Warn(ctx, "failed to archive import upload", map[string]interface{}{
				"error": err.Error(),
				"path":  path,
			})
		} else {
			result.ArchivePath = path
			if url, err := im.archive.GetURL(ctx, path); err == nil {
				result.ArchiveURL = url
			}
		}
	}

	im.logger.Info(ctx, "import committed", map[string]interface{}{
		"project_id":       req.ProjectID.String(),
		"cases_imported":   result.CasesImported,
		"sections_created": result.SectionsCreated,
	})

	return result, nil
}

func sortedTitles(m map[string]uuid.UUID) []string {
	titles := make([]string, 0, len(m))
	for t := range m {
		titles = append(titles, t)
	}
	sort.Strings(titles)
	return titles
}
