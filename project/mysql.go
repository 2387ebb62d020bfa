package project

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

// NewMySQLStore creates a new MySQL-backed project store.
func NewMySQLStore(db *gorm.DB, log logger.Logger) *MySQLStore {
	return &MySQLStore{
		db:     db,
		logger: log,
	}
}

// Create creates a new project in the database.
func (s *MySQLStore) Create(ctx context.Context, project *Project) error {
	if err := project.Validate(); err != nil {
		return err
	}
	if project.Status == "" {
		project.Status = StatusActive
	}

	if err := s.db.WithContext(ctx).Create(project).Error; err != nil {
		s.logger.Error(ctx, "failed to create project", map[string]interface{}{
			"error": err.Error(),
			"title": project.Title,
		})
		return err
	}

	s.logger.Info(ctx, "project created", map[string]interface{}{
		"project_id": project.ID.String(),
		"title":      project.Title,
	})

	return nil
}

// GetByID retrieves a project by its ID.
func (s *MySQLStore) GetByID(ctx context.Context, id uuid.UUID) (*Project, error) {
	var project Project
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&project).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		s.logger.Error(ctx, "failed to get project by ID", map[string]interface{}{
			"error":      err.Error(),
			"project_id": id.String(),
		})
		return nil, err
	}

	return &project, nil
}

// Update updates a project with the given setters.
func (s *MySQLStore) Update(ctx context.Context, id uuid.UUID, setters ...UpdateSetter) error {
	project, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	for _, setter := range setters {
		if err := setter(project); err != nil {
			return err
		}
	}

	if err := s.db.WithContext(ctx).Save(project).Error; err != nil {
		s.logger.Error(ctx, "failed to update project", map[string]interface{}{
			"error":      err.Error(),
			"project_id": id.String(),
		})
		return err
	}

	s.logger.Info(ctx, "project updated", map[string]interface{}{
		"project_id": id.String(),
	})

	return nil
}

// Delete removes a project together with its sections, test cases, test
// runs, results and history logs. The deletes run inside one transaction
// ordered from leaf tables up to the project row.
func (s *MySQLStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM history_logs WHERE project_id = ?", id,
		).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			"DELETE FROM test_results WHERE run_id IN (SELECT id FROM test_runs WHERE project_id = ?)", id,
		).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM test_runs WHERE project_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM test_cases WHERE project_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM sections WHERE project_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Exec("DELETE FROM projects WHERE id = ?", id).Error
	})

	if err != nil {
		s.logger.Error(ctx, "failed to delete project", map[string]interface{}{
			"error":      err.Error(),
			"project_id": id.String(),
		})
		return err
	}

	s.logger.Info(ctx, "project deleted", map[string]interface{}{
		"project_id": id.String(),
	})

	return nil
}

// List retrieves a paginated list of projects, newest first.
func (s *MySQLStore) List(ctx context.Context, limit, offset int) ([]*Project, error) {
	var projects []*Project
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&projects).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list projects", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	return projects, nil
}
