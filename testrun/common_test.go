package testrun

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"github.com/hairizuanbinnoorazman/testtrack/testresult"
	"github.com/hairizuanbinnoorazman/testtrack/testutil"
	"gorm.io/gorm"
)

// setupTestStore creates a test database and test run store. The result
// table is migrated too so run deletion can clean it up.
func setupTestStore(t *testing.T) (*gorm.DB, Store) {
	db := testutil.SetupTestDB(t)
	testutil.AutoMigrate(t, db, &TestRun{}, &testresult.TestResult{})

	log := logger.NewTestLogger()
	store := NewMySQLStore(db, log)

	return db, store
}

// createTestRun creates a run with a single-case snapshot.
func createTestRun(projectID uuid.UUID, title string) *TestRun {
	return &TestRun{
		ProjectID: projectID,
		Title:     title,
		Status:    StatusOpen,
		CaseIDs:   CaseIDs{uuid.New()},
	}
}
