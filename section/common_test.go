package section

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"github.com/hairizuanbinnoorazman/testtrack/testutil"
	"gorm.io/gorm"
)

// caseRow mirrors the test case table columns the section store touches
// when detaching cases from a deleted section.
type caseRow struct {
	ID        uuid.UUID  `gorm:"type:char(36);primaryKey"`
	ProjectID uuid.UUID  `gorm:"type:char(36)"`
	SectionID *uuid.UUID `gorm:"type:char(36)"`
	Title     string
}

func (caseRow) TableName() string { return "test_cases" }

// setupTestStore creates a test database and section store for testing.
func setupTestStore(t *testing.T) (*gorm.DB, Store) {
	db := testutil.SetupTestDB(t)
	testutil.AutoMigrate(t, db, &Section{}, &caseRow{})

	log := logger.NewTestLogger()
	store := NewMySQLStore(db, log)

	return db, store
}
