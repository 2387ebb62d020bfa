package testrun

import (
	"context"

	"github.com/google/uuid"
)

// Store defines the interface for test run persistence operations.
type Store interface {
	// Create creates a new test run with its case snapshot.
	Create(ctx context.Context, run *TestRun) error

	// GetByID retrieves a test run by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*TestRun, error)

	// Complete marks a test run as completed.
	Complete(ctx context.Context, id uuid.UUID) error

	// Delete removes a test run and its recorded results.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByProject retrieves a paginated list of runs for a project.
	ListByProject(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]*TestRun, error)
}
