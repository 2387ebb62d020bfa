package testresult

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"github.com/hairizuanbinnoorazman/testtrack/testutil"
	"gorm.io/gorm"
)

// setupTestStore creates a test database and test result store for testing.
func setupTestStore(t *testing.T) (*gorm.DB, Store) {
	db := testutil.SetupTestDB(t)
	testutil.AutoMigrate(t, db, &TestResult{})

	log := logger.NewTestLogger()
	store := NewMySQLStore(db, log)

	return db, store
}

// makeExecution builds an execution payload with default values.
func makeExecution(runID, caseID uuid.UUID, status Status) Execution {
	return Execution{
		RunID:          runID,
		CaseID:         caseID,
		DevicePlatform: PlatformPC,
		Status:         status,
		TesterID:       uuid.New(),
	}
}
