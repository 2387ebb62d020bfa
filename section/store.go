package section

import (
	"context"

	"github.com/google/uuid"
)

// Store defines the interface for section persistence operations.
type Store interface {
	// Create creates a new section in the store.
	Create(ctx context.Context, section *Section) error

	// GetByID retrieves a section by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*Section, error)

	// GetByTitle retrieves a section by exact title match within a project.
	GetByTitle(ctx context.Context, projectID uuid.UUID, title string) (*Section, error)

	// GetOrCreateByTitle returns the section with the given title within a
	// project, creating it first if it does not exist.
	GetOrCreateByTitle(ctx context.Context, projectID uuid.UUID, title string) (*Section, error)

	// Update updates a section with the given setters.
	Update(ctx context.Context, id uuid.UUID, setters ...UpdateSetter) error

	// Delete removes a section. Cases in the section become uncategorized.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByProject retrieves all sections for a project ordered by title.
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*Section, error)
}

// UpdateSetter is a function that updates a section field.
type UpdateSetter func(*Section) error
