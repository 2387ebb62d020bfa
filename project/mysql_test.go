package project

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hairizuanbinnoorazman/testtrack/historylog"
	"github.com/hairizuanbinnoorazman/testtrack/section"
	"github.com/hairizuanbinnoorazman/testtrack/testcase"
	"github.com/hairizuanbinnoorazman/testtrack/testrun"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMySQLStore_Create(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	t.Run("successfully create project", func(t *testing.T) {
		p := createTestProject("Checkout Regression")
		err := store.Create(ctx, p)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, p.ID)
		assert.Equal(t, StatusActive, p.Status)
	})

	t.Run("missing title returns error", func(t *testing.T) {
		p := &Project{Status: StatusActive}
		err := store.Create(ctx, p)
		assert.ErrorIs(t, err, ErrInvalidProjectTitle)
	})
}

func TestMySQLStore_GetByID(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	t.Run("retrieve existing project", func(t *testing.T) {
		p := createTestProject("Mobile App")
		require.NoError(t, store.Create(ctx, p))

		retrieved, err := store.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.ID, retrieved.ID)
		assert.Equal(t, "Mobile App", retrieved.Title)
	})

	t.Run("non-existent project returns error", func(t *testing.T) {
		_, err := store.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})
}

func TestMySQLStore_Update(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	t.Run("update title and status", func(t *testing.T) {
		p := createTestProject("Old Title")
		require.NoError(t, store.Create(ctx, p))

		err := store.Update(ctx, p.ID,
			SetTitle("New Title"),
			SetStatus(StatusArchived),
		)
		require.NoError(t, err)

		updated, err := store.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Title", updated.Title)
		assert.Equal(t, StatusArchived, updated.Status)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		p := createTestProject("Status Project")
		require.NoError(t, store.Create(ctx, p))

		err := store.Update(ctx, p.ID, SetStatus(Status("paused")))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("non-existent project returns error", func(t *testing.T) {
		err := store.Update(ctx, uuid.New(), SetTitle("Nothing"))
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})
}

func TestMySQLStore_Delete(t *testing.T) {
	db, store := setupTestStore(t)
	ctx := context.Background()

	t.Run("delete removes project and contents", func(t *testing.T) {
		p := createTestProject("To Delete")
		require.NoError(t, store.Create(ctx, p))

		sec := &section.Section{ProjectID: p.ID, Title: "Login"}
		require.NoError(t, db.Create(sec).Error)

		tc := &testcase.TestCase{
			ProjectID: p.ID,
			SectionID: &sec.ID,
			Title:     "Login with valid credentials",
			Priority:  testcase.PriorityMedium,
			Type:      testcase.TypeFunctional,
			Steps: testcase.Steps{
				{Step: "Open login page", Expected: "Form shown"},
			},
			PlatformType: testcase.PlatformWeb,
			AuthorID:     uuid.New(),
		}
		require.NoError(t, db.Create(tc).Error)

		run := &testrun.TestRun{
			ProjectID: p.ID,
			Title:     "Sprint 1",
			Status:    testrun.StatusOpen,
			CaseIDs:   testrun.CaseIDs{tc.ID},
		}
		require.NoError(t, db.Create(run).Error)

		entry := &historylog.HistoryLog{
			ProjectID:    p.ID,
			EntityID:     tc.ID,
			Action:       historylog.ActionCreate,
			ModifierID:   uuid.New(),
			ModifierName: "Tester",
		}
		require.NoError(t, db.Create(entry).Error)

		require.NoError(t, store.Delete(ctx, p.ID))

		_, err := store.GetByID(ctx, p.ID)
		assert.ErrorIs(t, err, ErrProjectNotFound)

		var sectionCount, caseCount, runCount, historyCount int64
		db.Model(&section.Section{}).Where("project_id = ?", p.ID).Count(&sectionCount)
		db.Model(&testcase.TestCase{}).Where("project_id = ?", p.ID).Count(&caseCount)
		db.Model(&testrun.TestRun{}).Where("project_id = ?", p.ID).Count(&runCount)
		db.Model(&historylog.HistoryLog{}).Where("project_id = ?", p.ID).Count(&historyCount)
		assert.Zero(t, sectionCount)
		assert.Zero(t, caseCount)
		assert.Zero(t, runCount)
		assert.Zero(t, historyCount)
	})

	t.Run("non-existent project returns error", func(t *testing.T) {
		err := store.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})
}

func TestMySQLStore_List(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		require.NoError(t, store.Create(ctx, createTestProject(title)))
	}

	t.Run("list with limit", func(t *testing.T) {
		projects, err := store.List(ctx, 2, 0)
		require.NoError(t, err)
		assert.Len(t, projects, 2)
	})

	t.Run("list with offset", func(t *testing.T) {
		projects, err := store.List(ctx, 10, 2)
		require.NoError(t, err)
		assert.Len(t, projects, 1)
	})
}
