package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/hairizuanbinnoorazman/testtrack/historylog"
	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"github.com/hairizuanbinnoorazman/testtrack/testcase"
)

// TestCaseHandler handles test case requests.
type TestCaseHandler struct {
	caseStore    testcase.Store
	historyStore historylog.Store
	logger       logger.Logger
}

// NewTestCaseHandler creates a new test case handler.
func NewTestCaseHandler(caseStore testcase.Store, historyStore historylog.Store, log logger.Logger) *TestCaseHandler {
	return &TestCaseHandler{
		caseStore:    caseStore,
		historyStore: historyStore,
		logger:       log,
	}
}

// StepRequest is one step in a create or update payload.
type StepRequest struct {
	Step     string `json:"step"`
	Expected string `json:"expected"`
}

// CreateTestCaseRequest represents a test case creation request.
type CreateTestCaseRequest struct {
	SectionID    *uuid.UUID        `json:"section_id,omitempty"`
	Title        string            `json:"title"`
	Priority     testcase.Priority `json:"priority"`
	Type         testcase.Type     `json:"type"`
	Precondition string            `json:"precondition"`
	Note         string            `json:"note"`
	Steps        []StepRequest     `json:"steps"`
	PlatformType testcase.Platform `json:"platform_type"`
}

// UpdateTestCaseRequest represents a test case update request.
type UpdateTestCaseRequest struct {
	SectionID    *uuid.UUID         `json:"section_id,omitempty"`
	Title        *string            `json:"title,omitempty"`
	Priority     *testcase.Priority `json:"priority,omitempty"`
	Type         *testcase.Type     `json:"type,omitempty"`
	Precondition *string            `json:"precondition,omitempty"`
	Note         *string            `json:"note,omitempty"`
	Steps        []StepRequest      `json:"steps,omitempty"`
	PlatformType *testcase.Platform `json:"platform_type,omitempty"`
}

// Create handles creating a new test case with a CREATE history entry.
func (h *TestCaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, ok := parseUUIDOrRespond(w, r, "projectID", "project")
	if !ok {
		return
	}
	sess, ok := GetSession(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req CreateTestCaseRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	steps := make(testcase.Steps, 0, len(req.Steps))
	for _, s := range req.Steps {
		steps = append(steps, testcase.Step{Step: s.Step, Expected: s.Expected})
	}

	tc := &testcase.TestCase{
		ProjectID:    projectID,
		SectionID:    req.SectionID,
		Title:        req.Title,
		Priority:     req.Priority,
		Type:         req.Type,
		Precondition: req.Precondition,
		Note:         req.Note,
		Steps:        steps,
		PlatformType: req.PlatformType,
		AuthorID:     sess.UserID,
	}

	if err := h.caseStore.Create(r.Context(), tc); err != nil {
		switch {
		case errors.Is(err, testcase.ErrInvalidTestCaseTitle), errors.Is(err, testcase.ErrNoSteps):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "failed to create test case")
		}
		return
	}

	h.appendHistory(r, &historylog.HistoryLog{
		ProjectID:    projectID,
		EntityID:     tc.ID,
		Action:       historylog.ActionCreate,
		ModifierID:   sess.UserID,
		ModifierName: sess.Name,
	})

	respondJSON(w, http.StatusCreated, tc)
}

// List handles listing a project's cases with pagination. A section query
// parameter narrows the listing to one section.
func (h *TestCaseHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, ok := parseUUIDOrRespond(w, r, "projectID", "project")
	if !ok {
		return
	}
	limit, offset := parsePagination(r)

	if sectionParam := r.URL.Query().Get("section"); sectionParam != "" {
		sectionID, err := uuid.Parse(sectionParam)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid section ID")
			return
		}
		cases, err := h.caseStore.ListBySection(r.Context(), sectionID, limit, offset)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to list test cases")
			return
		}
		respondJSON(w, http.StatusOK, NewPaginatedResponse(cases, len(cases), limit, offset))
		return
	}

	cases, err := h.caseStore.ListByProject(r.Context(), projectID, limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list test cases")
		return
	}

	respondJSON(w, http.StatusOK, NewPaginatedResponse(cases, len(cases), limit, offset))
}

// GetByID handles getting a single test case by ID.
func (h *TestCaseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDOrRespond(w, r, "id", "test case")
	if !ok {
		return
	}

	tc, err := h.caseStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, testcase.ErrTestCaseNotFound) {
			respondError(w, http.StatusNotFound, "test case not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to get test case")
		return
	}

	respondJSON(w, http.StatusOK, tc)
}

// Update applies a partial update and appends an UPDATE history entry
// when at least one field actually changed.
func (h *TestCaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDOrRespond(w, r, "id", "test case")
	if !ok {
		return
	}
	sess, ok := GetSession(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req UpdateTestCaseRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var setters []testcase.UpdateSetter
	if req.Title != nil {
		setters = append(setters, testcase.SetTitle(*req.Title))
	}
	if req.Priority != nil {
		setters = append(setters, testcase.SetPriority(*req.Priority))
	}
	if req.Type != nil {
		setters = append(setters, testcase.SetType(*req.Type))
	}
	if req.Precondition != nil {
		setters = append(setters, testcase.SetPrecondition(*req.Precondition))
	}
	if req.Note != nil {
		setters = append(setters, testcase.SetNote(*req.Note))
	}
	if req.SectionID != nil {
		setters = append(setters, testcase.SetSection(req.SectionID))
	}
	if req.PlatformType != nil {
		setters = append(setters, testcase.SetPlatform(*req.PlatformType))
	}
	if req.Steps != nil {
		steps := make(testcase.Steps, 0, len(req.Steps))
		for _, s := range req.Steps {
			steps = append(steps, testcase.Step{Step: s.Step, Expected: s.Expected})
		}
		setters = append(setters, testcase.SetSteps(steps))
	}

	if len(setters) == 0 {
		respondError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	before, after, err := h.caseStore.Update(r.Context(), id, setters...)
	if err != nil {
		switch {
		case errors.Is(err, testcase.ErrTestCaseNotFound):
			respondError(w, http.StatusNotFound, "test case not found")
		case errors.Is(err, testcase.ErrInvalidTestCaseTitle),
			errors.Is(err, testcase.ErrInvalidPriority),
			errors.Is(err, testcase.ErrInvalidType),
			errors.Is(err, testcase.ErrInvalidPlatform),
			errors.Is(err, testcase.ErrNoSteps):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "failed to update test case")
		}
		return
	}

	if changes := testcase.Diff(before, after); len(changes) > 0 {
		h.appendHistory(r, &historylog.HistoryLog{
			ProjectID:    after.ProjectID,
			EntityID:     after.ID,
			Action:       historylog.ActionUpdate,
			ModifierID:   sess.UserID,
			ModifierName: sess.Name,
			Changes:      changes,
		})
	}

	respondJSON(w, http.StatusOK, after)
}

// Delete handles deleting a test case.
func (h *TestCaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDOrRespond(w, r, "id", "test case")
	if !ok {
		return
	}

	if err := h.caseStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, testcase.ErrTestCaseNotFound) {
			respondError(w, http.StatusNotFound, "test case not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to delete test case")
		return
	}

	respondSuccess(w, "test case deleted")
}

// appendHistory writes a history entry, logging instead of failing the
// request when the write does not go through.
func (h *TestCaseHandler) appendHistory(r *http.Request, entry *historylog.HistoryLog) {
	if err := h.historyStore.Append(r.Context(), entry); err != nil {
		h.logger.Warn(r.Context(), "failed to append history entry", map[string]interface{}{
			"error":     err.Error(),
			"entity_id": entry.EntityID.String(),
		})
	}
}
