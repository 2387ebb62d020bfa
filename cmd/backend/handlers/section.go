package handlers

import (
	"errors"
	"net/http"

	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"github.com/hairizuanbinnoorazman/testtrack/section"
)

// SectionHandler handles section-related requests.
type SectionHandler struct {
	sectionStore section.Store
	logger       logger.Logger
}

// NewSectionHandler creates a new section handler.
func NewSectionHandler(sectionStore section.Store, log logger.Logger) *SectionHandler {
	return &SectionHandler{
		sectionStore: sectionStore,
		logger:       log,
	}
}

// CreateSectionRequest represents a section creation request.
type CreateSectionRequest struct {
	Title string `json:"title"`
}

// RenameSectionRequest represents a section rename request.
type RenameSectionRequest struct {
	Title string `json:"title"`
}

// Create handles creating a section within a project.
func (h *SectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, ok := parseUUIDOrRespond(w, r, "projectID", "project")
	if !ok {
		return
	}

	var req CreateSectionRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sec := &section.Section{
		ProjectID: projectID,
		Title:     req.Title,
	}

	if err := h.sectionStore.Create(r.Context(), sec); err != nil {
		if errors.Is(err, section.ErrInvalidSectionTitle) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to create section")
		return
	}

	respondJSON(w, http.StatusCreated, sec)
}

// List handles listing a project's sections.
func (h *SectionHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, ok := parseUUIDOrRespond(w, r, "projectID", "project")
	if !ok {
		return
	}

	sections, err := h.sectionStore.ListByProject(r.Context(), projectID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list sections")
		return
	}

	respondJSON(w, http.StatusOK, sections)
}

// Rename handles renaming a section.
func (h *SectionHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDOrRespond(w, r, "id", "section")
	if !ok {
		return
	}

	var req RenameSectionRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.sectionStore.Update(r.Context(), id, section.SetTitle(req.Title)); err != nil {
		switch {
		case errors.Is(err, section.ErrSectionNotFound):
			respondError(w, http.StatusNotFound, "section not found")
		case errors.Is(err, section.ErrInvalidSectionTitle):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "failed to rename section")
		}
		return
	}

	respondSuccess(w, "section renamed")
}

// Delete handles deleting a section; its cases become uncategorized.
func (h *SectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDOrRespond(w, r, "id", "section")
	if !ok {
		return
	}

	if err := h.sectionStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, section.ErrSectionNotFound) {
			respondError(w, http.StatusNotFound, "section not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to delete section")
		return
	}

	respondSuccess(w, "section deleted")
}
