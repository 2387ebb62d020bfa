package handlers

import (
	"errors"
	"net/http"

	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"github.com/hairizuanbinnoorazman/testtrack/project"
)

// ProjectHandler handles project-related requests.
type ProjectHandler struct {
	projectStore project.Store
	logger       logger.Logger
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(projectStore project.Store, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectStore: projectStore,
		logger:       log,
	}
}

// CreateProjectRequest represents a project creation request.
type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateProjectRequest represents a project update request.
type UpdateProjectRequest struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Status      *project.Status `json:"status,omitempty"`
}

// Create handles creating a new project.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	proj := &project.Project{
		Title:       req.Title,
		Description: req.Description,
		Status:      project.StatusActive,
	}

	if err := h.projectStore.Create(r.Context(), proj); err != nil {
		if errors.Is(err, project.ErrInvalidProjectTitle) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to create project")
		return
	}

	respondJSON(w, http.StatusCreated, proj)
}

// List handles listing projects with pagination.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	projects, err := h.projectStore.List(r.Context(), limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list projects")
		return
	}

	respondJSON(w, http.StatusOK, NewPaginatedResponse(projects, len(projects), limit, offset))
}

// GetByID handles getting a single project by ID.
func (h *ProjectHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDOrRespond(w, r, "id", "project")
	if !ok {
		return
	}

	proj, err := h.projectStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			respondError(w, http.StatusNotFound, "project not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to get project")
		return
	}

	respondJSON(w, http.StatusOK, proj)
}

// Update handles updating a project's title, description or status.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDOrRespond(w, r, "id", "project")
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var setters []project.UpdateSetter
	if req.Title != nil {
		setters = append(setters, project.SetTitle(*req.Title))
	}
	if req.Description != nil {
		setters = append(setters, project.SetDescription(*req.Description))
	}
	if req.Status != nil {
		setters = append(setters, project.SetStatus(*req.Status))
	}

	if len(setters) == 0 {
		respondError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	if err := h.projectStore.Update(r.Context(), id, setters...); err != nil {
		switch {
		case errors.Is(err, project.ErrProjectNotFound):
			respondError(w, http.StatusNotFound, "project not found")
		case errors.Is(err, project.ErrInvalidProjectTitle), errors.Is(err, project.ErrInvalidStatus):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "failed to update project")
		}
		return
	}

	respondSuccess(w, "project updated")
}

// Delete handles deleting a project and everything it owns.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDOrRespond(w, r, "id", "project")
	if !ok {
		return
	}

	if err := h.projectStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			respondError(w, http.StatusNotFound, "project not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to delete project")
		return
	}

	respondSuccess(w, "project deleted")
}
