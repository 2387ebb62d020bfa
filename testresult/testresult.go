package testresult

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrTestResultNotFound is returned when a test result is not found.
	ErrTestResultNotFound = errors.New("test result not found")

	// ErrInvalidRunID is returned when run_id is not set.
	ErrInvalidRunID = errors.New("run_id is required")

	// ErrInvalidCaseID is returned when case_id is not set.
	ErrInvalidCaseID = errors.New("case_id is required")

	// ErrInvalidTesterID is returned when tester_id is not set.
	ErrInvalidTesterID = errors.New("tester_id is required")

	// ErrInvalidStatus is returned when status is invalid.
	ErrInvalidStatus = errors.New("invalid result status")

	// ErrInvalidPlatform is returned when the device platform is invalid.
	ErrInvalidPlatform = errors.New("invalid device platform")
)

// Status is the recorded outcome of executing a case.
type Status string

const (
	StatusPass     Status = "pass"
	StatusFail     Status = "fail"
	StatusBlock    Status = "block"
	StatusNA       Status = "na"
	StatusUntested Status = "untested"
	StatusRetest   Status = "retest"
)

// IsValid checks if the status is one of the known values.
func (s Status) IsValid() bool {
	switch s {
	case StatusPass, StatusFail, StatusBlock, StatusNA, StatusUntested, StatusRetest:
		return true
	default:
		return false
	}
}

// DevicePlatform is the device family a result was recorded on.
type DevicePlatform string

const (
	PlatformPC      DevicePlatform = "pc"
	PlatformIOS     DevicePlatform = "ios"
	PlatformAndroid DevicePlatform = "android"
)

// IsValid checks if the platform is one of the known values.
func (p DevicePlatform) IsValid() bool {
	switch p {
	case PlatformPC, PlatformIOS, PlatformAndroid:
		return true
	default:
		return false
	}
}

// Issue links a result to an external bug or ticket.
type Issue struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
	URL   string    `json:"url"`
}

// Issues is the issue link list, stored as a JSON column.
type Issues []Issue

// Value implements the driver.Valuer interface for database storage.
func (i Issues) Value() (driver.Value, error) {
	if i == nil {
		return nil, nil
	}
	return json.Marshal(i)
}

// Scan implements the sql.Scanner interface for database retrieval.
func (i *Issues) Scan(value interface{}) error {
	return scanJSON(value, i)
}

// StepResult is the recorded outcome of one step within a case execution.
type StepResult struct {
	StepID uuid.UUID `json:"step_id"`
	Status Status    `json:"status"`
}

// StepResults is the per-step status list, stored as a JSON column.
type StepResults []StepResult

// Value implements the driver.Valuer interface for database storage.
func (s StepResults) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface for database retrieval.
func (s *StepResults) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// Snapshot is a prior execution state preserved when a case is re-executed.
type Snapshot struct {
	Status       Status      `json:"status"`
	ActualResult string      `json:"actual_result"`
	Comment      string      `json:"comment"`
	TesterID     uuid.UUID   `json:"tester_id"`
	StepResults  StepResults `json:"step_results,omitempty"`
	Issues       Issues      `json:"issues,omitempty"`
	Timestamp    time.Time   `json:"timestamp"`
}

// History is the list of prior snapshots, stored as a JSON column.
type History []Snapshot

// Value implements the driver.Valuer interface for database storage.
func (h History) Value() (driver.Value, error) {
	if h == nil {
		return nil, nil
	}
	return json.Marshal(h)
}

// Scan implements the sql.Scanner interface for database retrieval.
func (h *History) Scan(value interface{}) error {
	return scanJSON(value, h)
}

func scanJSON(value, dest interface{}) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan JSON column: unsupported type")
	}

	return json.Unmarshal(bytes, dest)
}

// TestResult records the outcome of executing one case within a run on one
// device platform. One row exists per (run, case, platform); re-executions
// overwrite the row after pushing the previous state onto History.
type TestResult struct {
	ID             uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	RunID          uuid.UUID      `json:"run_id" gorm:"type:char(36);not null;uniqueIndex:idx_run_case_platform"`
	CaseID         uuid.UUID      `json:"case_id" gorm:"type:char(36);not null;uniqueIndex:idx_run_case_platform"`
	DevicePlatform DevicePlatform `json:"device_platform" gorm:"type:varchar(10);not null;default:'pc';uniqueIndex:idx_run_case_platform"`
	Status         Status         `json:"status" gorm:"type:varchar(20);not null;default:'untested'"`
	ActualResult   string         `json:"actual_result" gorm:"type:text"`
	Comment        string         `json:"comment" gorm:"type:text"`
	TesterID       uuid.UUID      `json:"tester_id" gorm:"type:char(36);not null"`
	Issues         Issues         `json:"issues" gorm:"type:json"`
	StepResults    StepResults    `json:"step_results" gorm:"type:json"`
	History        History        `json:"history" gorm:"type:json"`
	Timestamp      time.Time      `json:"timestamp"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// BeforeCreate hook to generate UUID before creating a new test result
func (tr *TestResult) BeforeCreate(tx *gorm.DB) error {
	if tr.ID == uuid.Nil {
		tr.ID = uuid.New()
	}
	return nil
}

// Validate checks if the test result has valid required fields.
func (tr *TestResult) Validate() error {
	if tr.RunID == uuid.Nil {
		return ErrInvalidRunID
	}
	if tr.CaseID == uuid.Nil {
		return ErrInvalidCaseID
	}
	if tr.TesterID == uuid.Nil {
		return ErrInvalidTesterID
	}
	if !tr.Status.IsValid() {
		return ErrInvalidStatus
	}
	if !tr.DevicePlatform.IsValid() {
		return ErrInvalidPlatform
	}
	return nil
}

// snapshot captures the current execution state for the history list.
func (tr *TestResult) snapshot() Snapshot {
	return Snapshot{
		Status:       tr.Status,
		ActualResult: tr.ActualResult,
		Comment:      tr.Comment,
		TesterID:     tr.TesterID,
		StepResults:  tr.StepResults,
		Issues:       tr.Issues,
		Timestamp:    tr.Timestamp,
	}
}
