package handlers

import (
	"net/http"

	"github.com/hairizuanbinnoorazman/testtrack/historylog"
	"github.com/hairizuanbinnoorazman/testtrack/logger"
)

// HistoryHandler serves the change history of cases and projects.
type HistoryHandler struct {
	historyStore historylog.Store
	logger       logger.Logger
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(historyStore historylog.Store, log logger.Logger) *HistoryHandler {
	return &HistoryHandler{
		historyStore: historyStore,
		logger:       log,
	}
}

// ListByEntity handles listing the history of a single test case.
func (h *HistoryHandler) ListByEntity(w http.ResponseWriter, r *http.Request) {
	entityID, ok := parseUUIDOrRespond(w, r, "id", "test case")
	if !ok {
		return
	}
	limit, offset := parsePagination(r)

	entries, err := h.historyStore.ListByEntity(r.Context(), entityID, limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list history")
		return
	}

	respondJSON(w, http.StatusOK, NewPaginatedResponse(entries, len(entries), limit, offset))
}

// ListByProject handles listing recent activity across a project.
func (h *HistoryHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := parseUUIDOrRespond(w, r, "projectID", "project")
	if !ok {
		return
	}
	limit, offset := parsePagination(r)

	entries, err := h.historyStore.ListByProject(r.Context(), projectID, limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list history")
		return
	}

	respondJSON(w, http.StatusOK, NewPaginatedResponse(entries, len(entries), limit, offset))
}
