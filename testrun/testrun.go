package testrun

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrTestRunNotFound is returned when a test run is not found.
	ErrTestRunNotFound = errors.New("test run not found")

	// ErrInvalidTestRunTitle is returned when a test run title is empty or invalid.
	ErrInvalidTestRunTitle = errors.New("test run title is required")

	// ErrInvalidProjectID is returned when project_id is not set.
	ErrInvalidProjectID = errors.New("project_id is required")

	// ErrNoCases is returned when a test run is created with an empty case selection.
	ErrNoCases = errors.New("test run requires at least one case")

	// ErrTestRunCompleted is returned when mutating a completed test run.
	ErrTestRunCompleted = errors.New("test run already completed")
)

// Status represents the status of a test run.
type Status string

const (
	StatusOpen      Status = "open"
	StatusCompleted Status = "completed"
)

// IsValid checks if the status is valid.
func (s Status) IsValid() bool {
	return s == StatusOpen || s == StatusCompleted
}

// CaseIDs is the snapshot of case IDs selected at run creation, stored as
// a JSON column. The snapshot is fixed; later case edits or additions to
// the project do not change it.
type CaseIDs []uuid.UUID

// Value implements the driver.Valuer interface for database storage.
func (c CaseIDs) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

// Scan implements the sql.Scanner interface for database retrieval.
func (c *CaseIDs) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan CaseIDs: unsupported type")
	}

	return json.Unmarshal(bytes, c)
}

// Contains reports whether the snapshot includes the given case.
func (c CaseIDs) Contains(id uuid.UUID) bool {
	for _, v := range c {
		if v == id {
			return true
		}
	}
	return false
}

// TestRun is a fixed snapshot of selected test cases scheduled for
// execution.
type TestRun struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	ProjectID   uuid.UUID  `json:"project_id" gorm:"type:char(36);not null;index:idx_project_id"`
	Title       string     `json:"title" gorm:"not null"`
	Status      Status     `json:"status" gorm:"type:varchar(20);not null;default:'open';index:idx_status"`
	CaseIDs     CaseIDs    `json:"case_ids" gorm:"type:json"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BeforeCreate hook to generate UUID before creating a new test run
func (tr *TestRun) BeforeCreate(tx *gorm.DB) error {
	if tr.ID == uuid.Nil {
		tr.ID = uuid.New()
	}
	return nil
}

// Validate checks if the test run has valid required fields.
func (tr *TestRun) Validate() error {
	if tr.Title == "" {
		return ErrInvalidTestRunTitle
	}
	if tr.ProjectID == uuid.Nil {
		return ErrInvalidProjectID
	}
	if len(tr.CaseIDs) == 0 {
		return ErrNoCases
	}
	return nil
}

// Complete marks the run as completed. Completing twice is an error.
func (tr *TestRun) Complete() error {
	if tr.Status == StatusCompleted {
		return ErrTestRunCompleted
	}
	now := time.Now()
	tr.Status = StatusCompleted
	tr.CompletedAt = &now
	return nil
}
