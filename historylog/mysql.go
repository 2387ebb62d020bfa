package historylog

import (
	"context"

	"github.com/google/uuid"
	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"gorm.io/gorm"
)

// MySQLStore implements the Store interface using GORM and MySQL.
type MySQLStore struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewMySQLStore creates a new MySQL-backed history log store.
func NewMySQLStore(db *gorm.DB, log logger.Logger) *MySQLStore {
	return &MySQLStore{
		db:     db,
		logger: log,
	}
}

// Append writes a new history log entry.
func (s *MySQLStore) Append(ctx context.Context, entry *HistoryLog) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		s.logger.Error(ctx, "failed to append history log", map[string]interface{}{
			"error":     err.Error(),
			"entity_id": entry.EntityID.String(),
			"action":    string(entry.Action),
		})
		return err
	}

	return nil
}

// ListByEntity retrieves history entries for an entity, newest first.
func (s *MySQLStore) ListByEntity(ctx context.Context, entityID uuid.UUID, limit, offset int) ([]*HistoryLog, error) {
	var logs []*HistoryLog
	err := s.db.WithContext(ctx).
		Where("entity_id = ?", entityID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list history logs", map[string]interface{}{
			"error":     err.Error(),
			"entity_id": entityID.String(),
		})
		return nil, err
	}

	return logs, nil
}

// ListByProject retrieves history entries across a project, newest first.
func (s *MySQLStore) ListByProject(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]*HistoryLog, error) {
	var logs []*HistoryLog
	err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list project history logs", map[string]interface{}{
			"error":      err.Error(),
			"project_id": projectID.String(),
		})
		return nil, err
	}

	return logs, nil
}
