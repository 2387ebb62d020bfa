package project

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")

	// ErrInvalidProjectTitle is returned when a project title is empty or invalid.
	ErrInvalidProjectTitle = errors.New("project title is required")

	// ErrInvalidStatus is returned when status is invalid.
	ErrInvalidStatus = errors.New("invalid project status")
)

// Status represents the lifecycle status of a project.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// IsValid checks if the status is valid.
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusArchived
}

// Project represents a test management project. It owns sections, test
// cases and test runs; deleting a project removes all of them.
type Project struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Status      Status    `json:"status" gorm:"type:varchar(20);not null;default:'active';index:idx_status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate hook to generate UUID before creating a new project
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Validate checks if the project has valid required fields.
func (p *Project) Validate() error {
	if p.Title == "" {
		return ErrInvalidProjectTitle
	}
	if p.Status != "" && !p.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}
