package handlers

import (
	"errors"
	"net/http"

	"github.com/hairizuanbinnoorazman/testtrack/importer"
	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"github.com/hairizuanbinnoorazman/testtrack/testcase"
)

// ImportHandler exposes the two-step spreadsheet import flow: a preview
// that proposes a column mapping, and a commit that persists the cases.
type ImportHandler struct {
	importer *importer.Importer
	logger   logger.Logger
}

// NewImportHandler creates a new import handler.
func NewImportHandler(imp *importer.Importer, log logger.Logger) *ImportHandler {
	return &ImportHandler{
		importer: imp,
		logger:   log,
	}
}

// PreviewImportRequest carries the raw pasted or uploaded text.
type PreviewImportRequest struct {
	Text         string            `json:"text"`
	PlatformType testcase.Platform `json:"platform_type"`
}

// CommitImportRequest re-sends the raw text along with the (possibly
// user-adjusted) header index and column mapping from the preview.
type CommitImportRequest struct {
	Text         string            `json:"text"`
	HeaderIndex  int               `json:"header_index"`
	Mapping      importer.Mapping  `json:"mapping"`
	PlatformType testcase.Platform `json:"platform_type"`
}

// Preview handles parsing an upload and proposing a mapping without
// persisting anything.
func (h *ImportHandler) Preview(w http.ResponseWriter, r *http.Request) {
	if _, ok := parseUUIDOrRespond(w, r, "projectID", "project"); !ok {
		return
	}

	var req PreviewImportRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	preview, err := importer.BuildPreview(req.Text, req.PlatformType)
	if err != nil {
		if errors.Is(err, importer.ErrNoRows) {
			respondError(w, http.StatusBadRequest, "no parsable rows in input")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to build preview")
		return
	}

	respondJSON(w, http.StatusOK, preview)
}

// Commit handles persisting a previewed import into the project.
func (h *ImportHandler) Commit(w http.ResponseWriter, r *http.Request) {
	projectID, ok := parseUUIDOrRespond(w, r, "projectID", "project")
	if !ok {
		return
	}
	sess, ok := GetSession(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req CommitImportRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.importer.Import(r.Context(), importer.Request{
		ProjectID:   projectID,
		Text:        req.Text,
		HeaderIndex: req.HeaderIndex,
		Mapping:     req.Mapping,
		Platform:    req.PlatformType,
		ActorID:     sess.UserID,
		ActorName:   sess.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, importer.ErrNoRows),
			errors.Is(err, importer.ErrTitleNotMapped),
			errors.Is(err, importer.ErrHeaderIndexOutOfRange),
			errors.Is(err, importer.ErrNothingToImport):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error(r.Context(), "import failed", map[string]interface{}{
				"error":      err.Error(),
				"project_id": projectID.String(),
			})
			respondError(w, http.StatusInternalServerError, "failed to import cases")
		}
		return
	}

	respondJSON(w, http.StatusOK, result)
}
