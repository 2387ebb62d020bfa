package testresult

import (
	"context"

	"github.com/google/uuid"
)

// Execution is the payload for recording one case execution.
type Execution struct {
	RunID          uuid.UUID
	CaseID         uuid.UUID
	DevicePlatform DevicePlatform
	Status         Status
	ActualResult   string
	Comment        string
	TesterID       uuid.UUID
	Issues         Issues
	StepResults    StepResults
}

// Store defines the interface for test result persistence operations.
type Store interface {
	// Record upserts the execution for its (run, case, platform) key.
	// When a previous execution exists, its non-untested state is pushed
	// onto the result's history before the new state is written. Returns
	// the previous state (nil on first execution) and the stored result.
	Record(ctx context.Context, exec Execution) (*TestResult, *TestResult, error)

	// Get retrieves the result for a (run, case, platform) key.
	Get(ctx context.Context, runID, caseID uuid.UUID, platform DevicePlatform) (*TestResult, error)

	// ListByRun retrieves all results recorded for a run.
	ListByRun(ctx context.Context, runID uuid.UUID) ([]*TestResult, error)

	// ListByRunAndCase retrieves the per-platform results for one case in a run.
	ListByRunAndCase(ctx context.Context, runID, caseID uuid.UUID) ([]*TestResult, error)

	// CountByStatus tallies a run's results per status for progress charts.
	CountByStatus(ctx context.Context, runID uuid.UUID) (map[Status]int, error)
}
