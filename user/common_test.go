package user

import (
	"testing"

	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"github.com/hairizuanbinnoorazman/testtrack/testutil"
	"gorm.io/gorm"
)

// setupTestStore creates a test database and user store for testing.
func setupTestStore(t *testing.T) (*gorm.DB, Store) {
	db := testutil.SetupTestDB(t)
	testutil.AutoMigrate(t, db, &User{})

	log := logger.NewTestLogger()
	store := NewMySQLStore(db, log)

	return db, store
}

// createTestUser creates a test user with default values.
func createTestUser(email, name, password string) *User {
	u := &User{
		Email:    email,
		Name:     name,
		Role:     RoleInternal,
		IsActive: true,
	}
	u.SetPassword(password)
	return u
}
