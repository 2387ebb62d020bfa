package testcase

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

// NewMySQLStore creates a new MySQL-backed test case store.
func NewMySQLStore(db *gorm.DB, log logger.Logger) *MySQLStore {
	return &MySQLStore{
		db:     db,
		logger: log,
	}
}

// nextSeqID returns the next per-project display number. Runs inside the
// caller's transaction so batch inserts get consecutive numbers.
func nextSeqID(tx *gorm.DB, projectID uuid.UUID) (uint, error) {
	var maxSeq uint
	err := tx.Model(&TestCase{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(MAX(seq_id), 0)").
		Scan(&maxSeq).Error
	if err != nil {
		return 0, err
	}
	return maxSeq + 1, nil
}

// Create creates a new test case in the database.
func (s *MySQLStore) Create(ctx context.Context, tc *TestCase) error {
	if err := tc.Validate(); err != nil {
		return err
	}
	applyDefaults(tc)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := nextSeqID(tx, tc.ProjectID)
		if err != nil {
			return err
		}
		tc.SeqID = seq
		return tx.Create(tc).Error
	})

	if err != nil {
		s.logger.Error(ctx, "failed to create test case", map[string]interface{}{
			"error":      err.Error(),
			"project_id": tc.ProjectID.String(),
			"title":      tc.Title,
		})
		return err
	}

	s.logger.Info(ctx, "test case created", map[string]interface{}{
		"case_id":    tc.ID.String(),
		"project_id": tc.ProjectID.String(),
		"seq_id":     tc.SeqID,
	})

	return nil
}

// CreateBatch creates multiple test cases in one insert with consecutive
// sequence numbers. All cases must belong to the same project.
func (s *MySQLStore) CreateBatch(ctx context.Context, cases []*TestCase) error {
	if len(cases) == 0 {
		return nil
	}

	projectID := cases[0].ProjectID
	for _, tc := range cases {
		if err := tc.Validate(); err != nil {
			return err
		}
		if tc.ProjectID != projectID {
			return ErrInvalidProjectID
		}
		applyDefaults(tc)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := nextSeqID(tx, projectID)
		if err != nil {
			return err
		}
		for i, tc := range cases {
			tc.SeqID = seq + uint(i)
		}
		return tx.Create(&cases).Error
	})

	if err != nil {
		s.logger.Error(ctx, "failed to create test cases", map[string]interface{}{
			"error":      err.Error(),
			"project_id": projectID.String(),
			"count":      len(cases),
		})
		return err
	}

	s.logger.Info(ctx, "test cases created", map[string]interface{}{
		"project_id": projectID.String(),
		"count":      len(cases),
	})

	return nil
}

// GetByID retrieves a test case by its ID.
func (s *MySQLStore) GetByID(ctx context.Context, id uuid.UUID) (*TestCase, error) {
	var tc TestCase
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tc).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestCaseNotFound
		}
		s.logger.Error(ctx, "failed to get test case by ID", map[string]interface{}{
			"error":   err.Error(),
			"case_id": id.String(),
		})
		return nil, err
	}

	return &tc, nil
}

// Update applies the setters to a test case and returns the state before
// and after the update so the caller can log field deltas. The author is
// never modified.
func (s *MySQLStore) Update(ctx context.Context, id uuid.UUID, setters ...UpdateSetter) (*TestCase, *TestCase, error) {
	tc, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	before := *tc
	author := tc.AuthorID

	for _, setter := range setters {
		if err := setter(tc); err != nil {
			return nil, nil, err
		}
	}

	if tc.AuthorID != author {
		return nil, nil, ErrAuthorImmutable
	}

	if err := s.db.WithContext(ctx).Save(tc).Error; err != nil {
		s.logger.Error(ctx, "failed to update test case", map[string]interface{}{
			"error":   err.Error(),
			"case_id": id.String(),
		})
		return nil, nil, err
	}

	s.logger.Info(ctx, "test case updated", map[string]interface{}{
		"case_id": id.String(),
	})

	return &before, tc, nil
}

// Delete removes a test case.
func (s *MySQLStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&TestCase{})

	if result.Error != nil {
		s.logger.Error(ctx, "failed to delete test case", map[string]interface{}{
			"error":   result.Error.Error(),
			"case_id": id.String(),
		})
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrTestCaseNotFound
	}

	s.logger.Info(ctx, "test case deleted", map[string]interface{}{
		"case_id": id.String(),
	})

	return nil
}

// ListByProject retrieves a paginated list of cases for a project ordered
// by their display number.
func (s *MySQLStore) ListByProject(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]*TestCase, error) {
	var cases []*TestCase
	err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("seq_id ASC").
		Limit(limit).
		Offset(offset).
		Find(&cases).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list test cases", map[string]interface{}{
			"error":      err.Error(),
			"project_id": projectID.String(),
		})
		return nil, err
	}

	return cases, nil
}

// ListBySection retrieves a paginated list of cases in a section.
func (s *MySQLStore) ListBySection(ctx context.Context, sectionID uuid.UUID, limit, offset int) ([]*TestCase, error) {
	var cases []*TestCase
	err := s.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("seq_id ASC").
		Limit(limit).
		Offset(offset).
		Find(&cases).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list test cases by section", map[string]interface{}{
			"error":      err.Error(),
			"section_id": sectionID.String(),
		})
		return nil, err
	}

	return cases, nil
}

// GetByIDs retrieves all cases matching the given IDs. Missing IDs are
// silently skipped; callers relying on a run snapshot tolerate deleted
// cases.
func (s *MySQLStore) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*TestCase, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var cases []*TestCase
	err := s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("seq_id ASC").
		Find(&cases).Error

	if err != nil {
		s.logger.Error(ctx, "failed to get test cases by IDs", map[string]interface{}{
			"error": err.Error(),
			"count": len(ids),
		})
		return nil, err
	}

	return cases, nil
}

func applyDefaults(tc *TestCase) {
	if tc.Priority == "" {
		tc.Priority = PriorityMedium
	}
	if tc.Type == "" {
		tc.Type = TypeFunctional
	}
	if tc.PlatformType == "" {
		tc.PlatformType = PlatformWeb
	}
}
