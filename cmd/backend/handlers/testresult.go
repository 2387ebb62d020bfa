package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/hairizuanbinnoorazman/testtrack/historylog"
	"github.com/hairizuanbinnoorazman/testtrack/issuetracker"
	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"github.com/hairizuanbinnoorazman/testtrack/testresult"
	"github.com/hairizuanbinnoorazman/testtrack/testrun"
)

// TestResultHandler handles recording and reading case executions.
type TestResultHandler struct {
	resultStore  testresult.Store
	runStore     testrun.Store
	historyStore historylog.Store
	logger       logger.Logger
}

// NewTestResultHandler creates a new test result handler.
func NewTestResultHandler(resultStore testresult.Store, runStore testrun.Store, historyStore historylog.Store, log logger.Logger) *TestResultHandler {
	return &TestResultHandler{
		resultStore:  resultStore,
		runStore:     runStore,
		historyStore: historyStore,
		logger:       log,
	}
}

// StepResultRequest is one per-step outcome in an execution payload.
type StepResultRequest struct {
	StepID uuid.UUID         `json:"step_id"`
	Status testresult.Status `json:"status"`
}

// RecordResultRequest represents an execution recording request. Status
// may be omitted when step results are present; the overall status is
// then aggregated from the steps.
type RecordResultRequest struct {
	CaseID         uuid.UUID                 `json:"case_id"`
	DevicePlatform testresult.DevicePlatform `json:"device_platform"`
	Status         testresult.Status         `json:"status"`
	ActualResult   string                    `json:"actual_result"`
	Comment        string                    `json:"comment"`
	IssueURLs      []string                  `json:"issue_urls"`
	StepResults    []StepResultRequest       `json:"step_results"`
}

// Record handles recording an execution for one case in a run. Recording
// against a completed run or a case outside the run's snapshot is rejected.
func (h *TestResultHandler) Record(w http.ResponseWriter, r *http.Request) {
	runID, ok := parseUUIDOrRespond(w, r, "runID", "test run")
	if !ok {
		return
	}
	sess, ok := GetSession(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req RecordResultRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	run, err := h.runStore.GetByID(r.Context(), runID)
	if err != nil {
		if errors.Is(err, testrun.ErrTestRunNotFound) {
			respondError(w, http.StatusNotFound, "test run not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to get test run")
		return
	}
	if run.Status == testrun.StatusCompleted {
		respondError(w, http.StatusConflict, "test run already completed")
		return
	}
	if !run.CaseIDs.Contains(req.CaseID) {
		respondError(w, http.StatusBadRequest, "case is not part of this run")
		return
	}

	stepResults := make(testresult.StepResults, 0, len(req.StepResults))
	for _, sr := range req.StepResults {
		stepResults = append(stepResults, testresult.StepResult{StepID: sr.StepID, Status: sr.Status})
	}

	status := req.Status
	if status == "" && len(stepResults) > 0 {
		status = testresult.AggregateStepStatuses(stepResults)
	}

	issues := make(testresult.Issues, 0, len(req.IssueURLs))
	for _, raw := range req.IssueURLs {
		label, err := issuetracker.Label(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid issue url: "+raw)
			return
		}
		issues = append(issues, testresult.Issue{ID: uuid.New(), Label: label, URL: raw})
	}

	exec := testresult.Execution{
		RunID:          runID,
		CaseID:         req.CaseID,
		DevicePlatform: req.DevicePlatform,
		Status:         status,
		ActualResult:   req.ActualResult,
		Comment:        req.Comment,
		TesterID:       sess.UserID,
		Issues:         issues,
		StepResults:    stepResults,
	}

	previous, stored, err := h.resultStore.Record(r.Context(), exec)
	if err != nil {
		switch {
		case errors.Is(err, testresult.ErrInvalidStatus),
			errors.Is(err, testresult.ErrInvalidPlatform),
			errors.Is(err, testresult.ErrInvalidCaseID):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "failed to record result")
		}
		return
	}

	if changes := testresult.Diff(previous, stored); len(changes) > 0 {
		entry := &historylog.HistoryLog{
			ProjectID:    run.ProjectID,
			EntityID:     stored.CaseID,
			Action:       historylog.ActionExecute,
			ModifierID:   sess.UserID,
			ModifierName: sess.Name,
			Changes:      changes,
		}
		if err := h.historyStore.Append(r.Context(), entry); err != nil {
			h.logger.Warn(r.Context(), "failed to append history entry", map[string]interface{}{
				"error":   err.Error(),
				"run_id":  runID.String(),
				"case_id": stored.CaseID.String(),
			})
		}
	}

	respondJSON(w, http.StatusOK, stored)
}

// ListByRun handles listing all results recorded for a run.
func (h *TestResultHandler) ListByRun(w http.ResponseWriter, r *http.Request) {
	runID, ok := parseUUIDOrRespond(w, r, "runID", "test run")
	if !ok {
		return
	}

	results, err := h.resultStore.ListByRun(r.Context(), runID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list results")
		return
	}

	respondJSON(w, http.StatusOK, results)
}

// ListByCase handles listing the per-platform results for one case in a run.
func (h *TestResultHandler) ListByCase(w http.ResponseWriter, r *http.Request) {
	runID, ok := parseUUIDOrRespond(w, r, "runID", "test run")
	if !ok {
		return
	}
	caseID, ok := parseUUIDOrRespond(w, r, "caseID", "test case")
	if !ok {
		return
	}

	results, err := h.resultStore.ListByRunAndCase(r.Context(), runID, caseID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list results")
		return
	}

	respondJSON(w, http.StatusOK, results)
}
