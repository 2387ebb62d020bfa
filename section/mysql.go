package section

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

// NewMySQLStore creates a new MySQL-backed section store.
func NewMySQLStore(db *gorm.DB, log logger.Logger) *MySQLStore {
	return &MySQLStore{
		db:     db,
		logger: log,
	}
}

// Create creates a new section in the database.
func (s *MySQLStore) Create(ctx context.Context, sec *Section) error {
	if err := sec.Validate(); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Create(sec).Error; err != nil {
		s.logger.Error(ctx, "failed to create section", map[string]interface{}{
			"error":      err.Error(),
			"project_id": sec.ProjectID.String(),
			"title":      sec.Title,
		})
		return err
	}

	s.logger.Info(ctx, "section created", map[string]interface{}{
		"section_id": sec.ID.String(),
		"project_id": sec.ProjectID.String(),
		"title":      sec.Title,
	})

	return nil
}

// GetByID retrieves a section by its ID.
func (s *MySQLStore) GetByID(ctx context.Context, id uuid.UUID) (*Section, error) {
	var sec Section
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sec).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		s.logger.Error(ctx, "failed to get section by ID", map[string]interface{}{
			"error":      err.Error(),
			"section_id": id.String(),
		})
		return nil, err
	}

	return &sec, nil
}

// GetByTitle retrieves a section by exact title match within a project.
func (s *MySQLStore) GetByTitle(ctx context.Context, projectID uuid.UUID, title string) (*Section, error) {
	var sec Section
	err := s.db.WithContext(ctx).
		Where("project_id = ? AND title = ?", projectID, title).
		First(&sec).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		s.logger.Error(ctx, "failed to get section by title", map[string]interface{}{
			"error":      err.Error(),
			"project_id": projectID.String(),
			"title":      title,
		})
		return nil, err
	}

	return &sec, nil
}

// GetOrCreateByTitle returns the section with the given title, creating it
// if absent. Lookups go by exact title match within the project.
func (s *MySQLStore) GetOrCreateByTitle(ctx context.Context, projectID uuid.UUID, title string) (*Section, error) {
	sec, err := s.GetByTitle(ctx, projectID, title)
	if err == nil {
		return sec, nil
	}
	if !errors.Is(err, ErrSectionNotFound) {
		return nil, err
	}

	sec = &Section{
		ProjectID: projectID,
		Title:     title,
	}
	if err := s.Create(ctx, sec); err != nil {
		return nil, err
	}

	return sec, nil
}

// Update updates a section with the given setters.
func (s *MySQLStore) Update(ctx context.Context, id uuid.UUID, setters ...UpdateSetter) error {
	sec, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	for _, setter := range setters {
		if err := setter(sec); err != nil {
			return err
		}
	}

	if err := s.db.WithContext(ctx).Save(sec).Error; err != nil {
		s.logger.Error(ctx, "failed to update section", map[string]interface{}{
			"error":      err.Error(),
			"section_id": id.String(),
		})
		return err
	}

	return nil
}

// Delete removes a section and detaches its cases into the uncategorized
// state (section_id set to NULL).
func (s *MySQLStore) Delete(ctx context.Context, id uuid.UUID) error {
	sec, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("UPDATE test_cases SET section_id = NULL WHERE section_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(sec).Error
	})

	if err != nil {
		s.logger.Error(ctx, "failed to delete section", map[string]interface{}{
			"error":      err.Error(),
			"section_id": id.String(),
		})
		return err
	}

	s.logger.Info(ctx, "section deleted", map[string]interface{}{
		"section_id": id.String(),
	})

	return nil
}

// ListByProject retrieves all sections for a project ordered by title.
func (s *MySQLStore) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*Section, error) {
	var sections []*Section
	err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("title ASC").
		Find(&sections).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list sections", map[string]interface{}{
			"error":      err.Error(),
			"project_id": projectID.String(),
		})
		return nil, err
	}

	return sections, nil
}
