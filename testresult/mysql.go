package testresult

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"gorm.io/gorm"
)

// MySQLStore implements the Store interface using GORM and MySQL.
type MySQLStore struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewMySQLStore creates a new MySQL-backed test result store.
func NewMySQLStore(db *gorm.DB, log logger.Logger) *MySQLStore {
	return &MySQLStore{
		db:     db,
		logger: log,
	}
}

// Record upserts the execution for its (run, case, platform) key. The
// previous non-untested state is pushed onto History before the new state
// overwrites the row.
func (s *MySQLStore) Record(ctx context.Context, exec Execution) (*TestResult, *TestResult, error) {
	if exec.DevicePlatform == "" {
		exec.DevicePlatform = PlatformPC
	}

	now := time.Now()

	existing, err := s.Get(ctx, exec.RunID, exec.CaseID, exec.DevicePlatform)
	if err != nil && !errors.Is(err, ErrTestResultNotFound) {
		return nil, nil, err
	}

	if existing == nil {
		result := &TestResult{
			RunID:          exec.RunID,
			CaseID:         exec.CaseID,
			DevicePlatform: exec.DevicePlatform,
			Status:         exec.Status,
			ActualResult:   exec.ActualResult,
			Comment:        exec.Comment,
			TesterID:       exec.TesterID,
			Issues:         exec.Issues,
			StepResults:    exec.StepResults,
			Timestamp:      now,
		}
		if err := result.Validate(); err != nil {
			return nil, nil, err
		}

		if err := s.db.WithContext(ctx).Create(result).Error; err != nil {
			s.logger.Error(ctx, "failed to record test result", map[string]interface{}{
				"error":   err.Error(),
				"run_id":  exec.RunID.String(),
				"case_id": exec.CaseID.String(),
			})
			return nil, nil, err
		}

		s.logger.Info(ctx, "test result recorded", map[string]interface{}{
			"result_id": result.ID.String(),
			"run_id":    exec.RunID.String(),
			"case_id":   exec.CaseID.String(),
			"platform":  string(exec.DevicePlatform),
			"status":    string(exec.Status),
		})

		return nil, result, nil
	}

	before := *existing

	if existing.Status != StatusUntested {
		existing.History = append(existing.History, existing.snapshot())
	}

	existing.Status = exec.Status
	existing.ActualResult = exec.ActualResult
	existing.Comment = exec.Comment
	existing.TesterID = exec.TesterID
	existing.Issues = exec.Issues
	existing.StepResults = exec.StepResults
	existing.Timestamp = now

	if err := existing.Validate(); err != nil {
		return nil, nil, err
	}

	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		s.logger.Error(ctx, "failed to update test result", map[string]interface{}{
			"error":     err.Error(),
			"result_id": existing.ID.String(),
		})
		return nil, nil, err
	}

	s.logger.Info(ctx, "test result re-recorded", map[string]interface{}{
		"result_id":     existing.ID.String(),
		"run_id":        exec.RunID.String(),
		"case_id":       exec.CaseID.String(),
		"platform":      string(exec.DevicePlatform),
		"status":        string(exec.Status),
		"history_depth": len(existing.History),
	})

	return &before, existing, nil
}

// Get retrieves the result for a (run, case, platform) key.
func (s *MySQLStore) Get(ctx context.Context, runID, caseID uuid.UUID, platform DevicePlatform) (*TestResult, error) {
	var result TestResult
	err := s.db.WithContext(ctx).
		Where("run_id = ? AND case_id = ? AND device_platform = ?", runID, caseID, platform).
		First(&result).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestResultNotFound
		}
		s.logger.Error(ctx, "failed to get test result", map[string]interface{}{
			"error":   err.Error(),
			"run_id":  runID.String(),
			"case_id": caseID.String(),
		})
		return nil, err
	}

	return &result, nil
}

// ListByRun retrieves all results recorded for a run.
func (s *MySQLStore) ListByRun(ctx context.Context, runID uuid.UUID) ([]*TestResult, error) {
	var results []*TestResult
	err := s.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("updated_at DESC").
		Find(&results).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list test results", map[string]interface{}{
			"error":  err.Error(),
			"run_id": runID.String(),
		})
		return nil, err
	}

	return results, nil
}

// ListByRunAndCase retrieves the per-platform results for one case in a run.
func (s *MySQLStore) ListByRunAndCase(ctx context.Context, runID, caseID uuid.UUID) ([]*TestResult, error) {
	var results []*TestResult
	err := s.db.WithContext(ctx).
		Where("run_id = ? AND case_id = ?", runID, caseID).
		Order("device_platform ASC").
		Find(&results).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list test results for case", map[string]interface{}{
			"error":   err.Error(),
			"run_id":  runID.String(),
			"case_id": caseID.String(),
		})
		return nil, err
	}

	return results, nil
}

// CountByStatus tallies a run's results per status.
func (s *MySQLStore) CountByStatus(ctx context.Context, runID uuid.UUID) (map[Status]int, error) {
	type row struct {
		Status Status
		Count  int
	}

	var rows []row
	err := s.db.WithContext(ctx).
		Model(&TestResult{}).
		Select("status, COUNT(*) as count").
		Where("run_id = ?", runID).
		Group("status").
		Scan(&rows).Error

	if err != nil {
		s.logger.Error(ctx, "failed to count test results", map[string]interface{}{
			"error":  err.Error(),
			"run_id": runID.String(),
		})
		return nil, err
	}

	counts := make(map[Status]int, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}

	return counts, nil
}
