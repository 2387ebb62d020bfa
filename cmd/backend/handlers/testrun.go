package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"github.com/hairizuanbinnoorazman/testtrack/testresult"
	"github.com/hairizuanbinnoorazman/testtrack/testrun"
)

// TestRunHandler handles test run requests.
type TestRunHandler struct {
	runStore    testrun.Store
	resultStore testresult.Store
	logger      logger.Logger
}

// NewTestRunHandler creates a new test run handler.
func NewTestRunHandler(runStore testrun.Store, resultStore testresult.Store, log logger.Logger) *TestRunHandler {
	return &TestRunHandler{
		runStore:    runStore,
		resultStore: resultStore,
		logger:      log,
	}
}

// CreateTestRunRequest represents a test run creation request.
type CreateTestRunRequest struct {
	Title   string      `json:"title"`
	CaseIDs []uuid.UUID `json:"case_ids"`
}

// TestRunDetailResponse is a run together with its recorded results and
// a per-status tally for progress display.
type TestRunDetailResponse struct {
	Run      *testrun.TestRun          `json:"run"`
	Results  []*testresult.TestResult  `json:"results"`
	Progress map[testresult.Status]int `json:"progress"`
}

// Create handles creating a new test run. The case selection is
// snapshotted at creation and does not track later case changes.
func (h *TestRunHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, ok := parseUUIDOrRespond(w, r, "projectID", "project")
	if !ok {
		return
	}

	var req CreateTestRunRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	run := &testrun.TestRun{
		ProjectID: projectID,
		Title:     req.Title,
		Status:    testrun.StatusOpen,
		CaseIDs:   testrun.CaseIDs(req.CaseIDs),
	}

	if err := h.runStore.Create(r.Context(), run); err != nil {
		switch {
		case errors.Is(err, testrun.ErrInvalidTestRunTitle), errors.Is(err, testrun.ErrNoCases):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "failed to create test run")
		}
		return
	}

	respondJSON(w, http.StatusCreated, run)
}

// List handles listing a project's test runs with pagination.
func (h *TestRunHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, ok := parseUUIDOrRespond(w, r, "projectID", "project")
	if !ok {
		return
	}
	limit, offset := parsePagination(r)

	runs, err := h.runStore.ListByProject(r.Context(), projectID, limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list test runs")
		return
	}

	respondJSON(w, http.StatusOK, NewPaginatedResponse(runs, len(runs), limit, offset))
}

// GetByID handles getting a run with its results and progress tally.
func (h *TestRunHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDOrRespond(w, r, "id", "test run")
	if !ok {
		return
	}

	run, err := h.runStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, testrun.ErrTestRunNotFound) {
			respondError(w, http.StatusNotFound, "test run not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to get test run")
		return
	}

	results, err := h.resultStore.ListByRun(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list results")
		return
	}

	progress, err := h.resultStore.CountByStatus(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to tally results")
		return
	}

	respondJSON(w, http.StatusOK, TestRunDetailResponse{
		Run:      run,
		Results:  results,
		Progress: progress,
	})
}

// Complete handles closing a test run.
func (h *TestRunHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDOrRespond(w, r, "id", "test run")
	if !ok {
		return
	}

	if err := h.runStore.Complete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, testrun.ErrTestRunNotFound):
			respondError(w, http.StatusNotFound, "test run not found")
		case errors.Is(err, testrun.ErrTestRunCompleted):
			respondError(w, http.StatusConflict, "test run already completed")
		default:
			respondError(w, http.StatusInternalServerError, "failed to complete test run")
		}
		return
	}

	respondSuccess(w, "test run completed")
}

// Delete handles deleting a test run and its recorded results.
func (h *TestRunHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDOrRespond(w, r, "id", "test run")
	if !ok {
		return
	}

	if err := h.runStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, testrun.ErrTestRunNotFound) {
			respondError(w, http.StatusNotFound, "test run not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to delete test run")
		return
	}

	respondSuccess(w, "test run deleted")
}
