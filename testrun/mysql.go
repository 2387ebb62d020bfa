package testrun

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"gorm.io/gorm"
)

// MySQLStore implements the Store interface using GORM and MySQL.
type MySQLStore struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewMySQLStore creates a new MySQL-backed test run store.
func NewMySQLStore(db *gorm.DB, log logger.Logger) *MySQLStore {
	return &MySQLStore{
		db:     db,
		logger: log,
	}
}

// Create creates a new test run in the database.
func (s *MySQLStore) Create(ctx context.Context, run *TestRun) error {
	if err := run.Validate(); err != nil {
		return err
	}
	if run.Status == "" {
		run.Status = StatusOpen
	}

	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		s.logger.Error(ctx, "failed to create test run", map[string]interface{}{
			"error":      err.Error(),
			"project_id": run.ProjectID.String(),
			"title":      run.Title,
		})
		return err
	}

	s.logger.Info(ctx, "test run created", map[string]interface{}{
		"run_id":     run.ID.String(),
		"project_id": run.ProjectID.String(),
		"case_count": len(run.CaseIDs),
	})

	return nil
}

// GetByID retrieves a test run by its ID.
func (s *MySQLStore) GetByID(ctx context.Context, id uuid.UUID) (*TestRun, error) {
	var run TestRun
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&run).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestRunNotFound
		}
		s.logger.Error(ctx, "failed to get test run by ID", map[string]interface{}{
			"error":  err.Error(),
			"run_id": id.String(),
		})
		return nil, err
	}

	return &run, nil
}

// Complete marks a test run as completed.
func (s *MySQLStore) Complete(ctx context.Context, id uuid.UUID) error {
	run, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := run.Complete(); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Save(run).Error; err != nil {
		s.logger.Error(ctx, "failed to complete test run", map[string]interface{}{
			"error":  err.Error(),
			"run_id": id.String(),
		})
		return err
	}

	s.logger.Info(ctx, "test run completed", map[string]interface{}{
		"run_id": id.String(),
	})

	return nil
}

// Delete removes a test run together with its recorded results.
func (s *MySQLStore) Delete(ctx context.Context, id uuid.UUID) error {
	run, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM test_results WHERE run_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(run).Error
	})

	if err != nil {
		s.logger.Error(ctx, "failed to delete test run", map[string]interface{}{
			"error":  err.Error(),
			"run_id": id.String(),
		})
		return err
	}

	s.logger.Info(ctx, "test run deleted", map[string]interface{}{
		"run_id": id.String(),
	})

	return nil
}

// ListByProject retrieves a paginated list of runs for a project, newest
// first.
func (s *MySQLStore) ListByProject(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]*TestRun, error) {
	var runs []*TestRun
	err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&runs).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list test runs", map[string]interface{}{
			"error":      err.Error(),
			"project_id": projectID.String(),
		})
		return nil, err
	}

	return runs, nil
}
