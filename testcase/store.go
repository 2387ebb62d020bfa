package testcase

import (
	"context"

	"github.com/google/uuid"
)

// Store defines the interface for test case persistence operations.
type Store interface {
	// Create creates a new test case, assigning the next per-project
	// sequence number.
	Create(ctx context.Context, testCase *TestCase) error

	// CreateBatch creates multiple test cases in one insert, assigning
	// consecutive sequence numbers. Used by the CSV import sink.
	CreateBatch(ctx context.Context, testCases []*TestCase) error

	// GetByID retrieves a test case by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*TestCase, error)

	// Update updates a test case with the given setters. The author is
	// immutable after creation.
	Update(ctx context.Context, id uuid.UUID, setters ...UpdateSetter) (*TestCase, *TestCase, error)

	// Delete removes a test case.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByProject retrieves a paginated list of cases for a project.
	ListByProject(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]*TestCase, error)

	// ListBySection retrieves a paginated list of cases in a section.
	ListBySection(ctx context.Context, sectionID uuid.UUID, limit, offset int) ([]*TestCase, error)

	// GetByIDs retrieves all cases matching the given IDs.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*TestCase, error)
}

// UpdateSetter is a function that updates a test case field.
type UpdateSetter func(*TestCase) error
