package testcase

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrTestCaseNotFound is returned when a test case is not found.
	ErrTestCaseNotFound = errors.New("test case not found")

	// ErrInvalidTestCaseTitle is returned when a test case title is empty or invalid.
	ErrInvalidTestCaseTitle = errors.New("test case title is required")

	// ErrInvalidProjectID is returned when project_id is not set.
	ErrInvalidProjectID = errors.New("project_id is required")

	// ErrInvalidAuthorID is returned when author_id is not set.
	ErrInvalidAuthorID = errors.New("author_id is required")

	// ErrNoSteps is returned when a test case is created without steps.
	ErrNoSteps = errors.New("test case requires at least one step")

	// ErrAuthorImmutable is returned when an update attempts to change the author.
	ErrAuthorImmutable = errors.New("author cannot be changed")
)

// Priority of a test case.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// IsValid checks if the priority is one of the known values.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Type categorizes what a test case exercises.
type Type string

const (
	TypeFunctional  Type = "functional"
	TypeUI          Type = "ui"
	TypePerformance Type = "performance"
	TypeSecurity    Type = "security"
)

// IsValid checks if the type is one of the known values.
func (t Type) IsValid() bool {
	switch t {
	case TypeFunctional, TypeUI, TypePerformance, TypeSecurity:
		return true
	default:
		return false
	}
}

// Platform is the product surface a case targets.
type Platform string

const (
	PlatformWeb Platform = "web"
	PlatformApp Platform = "app"
)

// IsValid checks if the platform is one of the known values.
func (p Platform) IsValid() bool {
	return p == PlatformWeb || p == PlatformApp
}

// Step is one action/expected-result pair within a test case.
type Step struct {
	ID       uuid.UUID `json:"id"`
	Step     string    `json:"step"`
	Expected string    `json:"expected"`
}

// Steps is the ordered step list, stored as a JSON column.
type Steps []Step

// Value implements the driver.Valuer interface for database storage.
func (s Steps) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface for database retrieval.
func (s *Steps) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan Steps: unsupported type")
	}

	return json.Unmarshal(bytes, s)
}

// TestCase represents a test case in the system.
type TestCase struct {
	ID           uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	ProjectID    uuid.UUID  `json:"project_id" gorm:"type:char(36);not null;index:idx_project_id"`
	SectionID    *uuid.UUID `json:"section_id,omitempty" gorm:"type:char(36);index:idx_section_id"`
	Title        string     `json:"title" gorm:"not null"`
	Priority     Priority   `json:"priority" gorm:"type:varchar(20);not null;default:'medium'"`
	Type         Type       `json:"type" gorm:"type:varchar(20);not null;default:'functional'"`
	Precondition string     `json:"precondition" gorm:"type:text"`
	Note         string     `json:"note" gorm:"type:text"`
	Steps        Steps      `json:"steps" gorm:"type:json"`
	PlatformType Platform   `json:"platform_type" gorm:"type:varchar(10);not null;default:'web'"`
	AuthorID     uuid.UUID  `json:"author_id" gorm:"type:char(36);not null;index:idx_author_id"`
	SeqID        uint       `json:"seq_id" gorm:"not null;default:0;index:idx_seq_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// BeforeCreate hook to generate UUIDs for the case and any steps missing one
func (tc *TestCase) BeforeCreate(tx *gorm.DB) error {
	if tc.ID == uuid.Nil {
		tc.ID = uuid.New()
	}
	for i := range tc.Steps {
		if tc.Steps[i].ID == uuid.Nil {
			tc.Steps[i].ID = uuid.New()
		}
	}
	return nil
}

// Validate checks if the test case has valid required fields. Steps must be
// non-empty at creation time.
func (tc *TestCase) Validate() error {
	if tc.Title == "" {
		return ErrInvalidTestCaseTitle
	}
	if tc.ProjectID == uuid.Nil {
		return ErrInvalidProjectID
	}
	if tc.AuthorID == uuid.Nil {
		return ErrInvalidAuthorID
	}
	if len(tc.Steps) == 0 {
		return ErrNoSteps
	}
	return nil
}
