package historylog

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrInvalidEntityID is returned when entity_id is not set.
	ErrInvalidEntityID = errors.New("entity_id is required")

	// ErrInvalidAction is returned when the action is not a known action.
	ErrInvalidAction = errors.New("invalid history action")

	// ErrNoChanges is returned when a log entry carries no field deltas.
	ErrNoChanges = errors.New("history entry requires at least one change")
)

// Action describes what kind of mutation produced a history entry.
type Action string

const (
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionExecute Action = "execute"
)

// IsValid checks if the action is one of the known actions.
func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionExecute:
		return true
	default:
		return false
	}
}

// Change records a single field delta.
type Change struct {
	Field string `json:"field"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

// Changes is the delta list, stored as a JSON column.
type Changes []Change

// Value implements the driver.Valuer interface for database storage.
func (c Changes) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

// Scan implements the sql.Scanner interface for database retrieval.
func (c *Changes) Scan(value interface{}) error {
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
		return errors.New("failed to scan Changes: unsupported type")
	}

	return json.Unmarshal(bytes, c)
}

// HistoryLog is an append-only record of a case- or result-mutating action.
// One entry is written per action that produced at least one field delta.
type HistoryLog struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	ProjectID    uuid.UUID `json:"project_id" gorm:"type:char(36);not null;index:idx_project_id"`
	EntityID     uuid.UUID `json:"entity_id" gorm:"type:char(36);not null;index:idx_entity_id"`
	Action       Action    `json:"action" gorm:"type:varchar(20);not null"`
	ModifierID   uuid.UUID `json:"modifier_id" gorm:"type:char(36);not null"`
	ModifierName string    `json:"modifier_name" gorm:"not null"`
	Changes      Changes   `json:"changes" gorm:"type:json"`
	CreatedAt    time.Time `json:"created_at"`
}

// BeforeCreate hook to generate UUID before creating a new history log
func (h *HistoryLog) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// Validate checks if the history log has valid required fields. A create
// action may carry zero deltas; update and execute must carry at least one.
func (h *HistoryLog) Validate() error {
	if h.EntityID == uuid.Nil {
		return ErrInvalidEntityID
	}
	if !h.Action.IsValid() {
		return ErrInvalidAction
	}
	if h.Action != ActionCreate && len(h.Changes) == 0 {
		return ErrNoChanges
	}
	return nil
}
