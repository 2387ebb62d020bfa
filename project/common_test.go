package project

import (
	"testing"

	"github.com/hairizuanbinnoorazman/testtrack/historylog"
	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"github.com/hairizuanbinnoorazman/testtrack/section"
	"github.com/hairizuanbinnoorazman/testtrack/testcase"
	"github.com/hairizuanbinnoorazman/testtrack/testresult"
	"github.com/hairizuanbinnoorazman/testtrack/testrun"
	"github.com/hairizuanbinnoorazman/testtrack/testutil"
	"gorm.io/gorm"
)

// setupTestStore creates a test database and project store. The dependent
// tables are migrated too so cascade deletes have something to act on.
func setupTestStore(t *testing.T) (*gorm.DB, Store) {
	db := testutil.SetupTestDB(t)
	testutil.AutoMigrate(t, db,
		&Project{},
		&section.Section{},
		&testcase.TestCase{},
		&testrun.TestRun{},
		&testresult.TestResult{},
		&historylog.HistoryLog{},
	)

	log := logger.NewTestLogger()
	store := NewMySQLStore(db, log)

	return db, store
}

// createTestProject creates a project with default values.
func createTestProject(title string) *Project {
	return &Project{
		Title:  title,
		Status: StatusActive,
	}
}
