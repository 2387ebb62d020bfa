package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/hairizuanbinnoorazman/testtrack/exporter"
	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"github.com/hairizuanbinnoorazman/testtrack/section"
	"github.com/hairizuanbinnoorazman/testtrack/testcase"
)

// exportPageSize is the page size used when draining a project's cases.
const exportPageSize = 500

// ExportHandler streams a project's cases as a CSV download.
type ExportHandler struct {
	caseStore    testcase.Store
	sectionStore section.Store
	logger       logger.Logger
}

// NewExportHandler creates a new export handler.
func NewExportHandler(caseStore testcase.Store, sectionStore section.Store, log logger.Logger) *ExportHandler {
	return &ExportHandler{
		caseStore:    caseStore,
		sectionStore: sectionStore,
		logger:       log,
	}
}

// Export handles writing all of a project's cases as CSV.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	projectID, ok := parseUUIDOrRespond(w, r, "projectID", "project")
	if !ok {
		return
	}

	sections, err := h.sectionStore.ListByProject(r.Context(), projectID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list sections")
		return
	}
	sectionTitles := make(map[string]string, len(sections))
	for _, sec := range sections {
		sectionTitles[sec.ID.String()] = sec.Title
	}

	var cases []*testcase.TestCase
	for offset := 0; ; offset += exportPageSize {
		page, err := h.caseStore.ListByProject(r.Context(), projectID, exportPageSize, offset)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to list test cases")
			return
		}
		cases = append(cases, page...)
		if len(page) < exportPageSize {
			break
		}
	}

	filename := fmt.Sprintf("cases-%s-%s.csv", projectID, time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := exporter.WriteCases(w, cases, sectionTitles); err != nil {
		// Headers are already out; all that is left is to log.
		h.logger.Error(r.Context(), "failed to write export", map[string]interface{}{
			"error":      err.Error(),
			"project_id": projectID.String(),
		})
	}
}
