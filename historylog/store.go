package historylog

import (
	"context"

	"github.com/google/uuid"
)

// Store defines the interface for history log persistence. Logs are
// append-only; there are no update or delete operations.
type Store interface {
	// Append writes a new history log entry.
	Append(ctx context.Context, log *HistoryLog) error

	// ListByEntity retrieves history entries for an entity, newest first.
	ListByEntity(ctx context.Context, entityID uuid.UUID, limit, offset int) ([]*HistoryLog, error)

	// ListByProject retrieves history entries across a project, newest first.
	ListByProject(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]*HistoryLog, error)
}
