package testcase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"github.com/hairizuanbinnoorazman/testtrack/testutil"
	"gorm.io/gorm"
)

// setupTestStore creates a test database and test case store for testing.
func setupTestStore(t *testing.T) (*gorm.DB, Store) {
	db := testutil.SetupTestDB(t)
	testutil.AutoMigrate(t, db, &TestCase{})

	log := logger.NewTestLogger()
	store := NewMySQLStore(db, log)

	return db, store
}

// createTestCase creates a test case with default values.
func createTestCase(projectID uuid.UUID, title string) *TestCase {
	return &TestCase{
		ProjectID: projectID,
		Title:     title,
		Priority:  PriorityMedium,
		Type:      TypeFunctional,
		Steps: Steps{
			{Step: "Do the thing", Expected: "The thing happens"},
		},
		PlatformType: PlatformWeb,
		AuthorID:     uuid.New(),
	}
}
