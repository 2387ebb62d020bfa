package section

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrSectionNotFound is returned when a section is not found.
	ErrSectionNotFound = errors.New("section not found")

	// ErrInvalidSectionTitle is returned when a section title is empty or invalid.
	ErrInvalidSectionTitle = errors.New("section title is required")

	// ErrInvalidProjectID is returned when project_id is not set.
	ErrInvalidProjectID = errors.New("project_id is required")
)

// DefaultTitle is the section assigned to cases imported without a
// section column.
const DefaultTitle = "Uncategorized"

// Section is a named folder of test cases within a project. Sections are
// flat; ParentID is kept for display ordering but no nesting is enforced.
type Section struct {
	ID        uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	ProjectID uuid.UUID  `json:"project_id" gorm:"type:char(36);not null;index:idx_project_id"`
	Title     string     `json:"title" gorm:"not null"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty" gorm:"type:char(36)"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// BeforeCreate hook to generate UUID before creating a new section
func (s *Section) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Validate checks if the section has valid required fields.
func (s *Section) Validate() error {
	if s.Title == "" {
		return ErrInvalidSectionTitle
	}
	if s.ProjectID == uuid.Nil {
		return ErrInvalidProjectID
	}
	return nil
}
