package testresult

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMySQLStore_Record(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	t.Run("first execution creates a row", func(t *testing.T) {
		exec := makeExecution(uuid.New(), uuid.New(), StatusPass)

		previous, stored, err := store.Record(ctx, exec)
		require.NoError(t, err)
		assert.Nil(t, previous)
		assert.NotEqual(t, uuid.Nil, stored.ID)
		assert.Equal(t, StatusPass, stored.Status)
		assert.Empty(t, stored.History)
	})

	t.Run("re-execution overwrites and pushes history", func(t *testing.T) {
		runID, caseID := uuid.New(), uuid.New()

		first := makeExecution(runID, caseID, StatusFail)
		first.ActualResult = "Button missing"
		_, _, err := store.Record(ctx, first)
		require.NoError(t, err)

		second := makeExecution(runID, caseID, StatusPass)
		previous, stored, err := store.Record(ctx, second)
		require.NoError(t, err)

		require.NotNil(t, previous)
		assert.Equal(t, StatusFail, previous.Status)

		assert.Equal(t, StatusPass, stored.Status)
		require.Len(t, stored.History, 1)
		assert.Equal(t, StatusFail, stored.History[0].Status)
		assert.Equal(t, "Button missing", stored.History[0].ActualResult)
	})

	t.Run("untested state is not pushed onto history", func(t *testing.T) {
		runID, caseID := uuid.New(), uuid.New()

		_, _, err := store.Record(ctx, makeExecution(runID, caseID, StatusUntested))
		require.NoError(t, err)

		_, stored, err := store.Record(ctx, makeExecution(runID, caseID, StatusPass))
		require.NoError(t, err)
		assert.Empty(t, stored.History)
	})

	t.Run("platforms are tracked separately", func(t *testing.T) {
		runID, caseID := uuid.New(), uuid.New()

		pc := makeExecution(runID, caseID, StatusPass)
		pc.DevicePlatform = PlatformPC
		_, _, err := store.Record(ctx, pc)
		require.NoError(t, err)

		ios := makeExecution(runID, caseID, StatusFail)
		ios.DevicePlatform = PlatformIOS
		previous, _, err := store.Record(ctx, ios)
		require.NoError(t, err)
		assert.Nil(t, previous)

		results, err := store.ListByRunAndCase(ctx, runID, caseID)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("missing platform defaults to pc", func(t *testing.T) {
		exec := makeExecution(uuid.New(), uuid.New(), StatusPass)
		exec.DevicePlatform = ""

		_, stored, err := store.Record(ctx, exec)
		require.NoError(t, err)
		assert.Equal(t, PlatformPC, stored.DevicePlatform)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		exec := makeExecution(uuid.New(), uuid.New(), Status("passed"))
		_, _, err := store.Record(ctx, exec)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestMySQLStore_Get(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	t.Run("unknown key returns not found", func(t *testing.T) {
		_, err := store.Get(ctx, uuid.New(), uuid.New(), PlatformPC)
		assert.ErrorIs(t, err, ErrTestResultNotFound)
	})
}

func TestMySQLStore_CountByStatus(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()
	runID := uuid.New()

	for _, status := range []Status{StatusPass, StatusPass, StatusFail, StatusBlock} {
		_, _, err := store.Record(ctx, makeExecution(runID, uuid.New(), status))
		require.NoError(t, err)
	}

	counts, err := store.CountByStatus(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[StatusPass])
	assert.Equal(t, 1, counts[StatusFail])
	assert.Equal(t, 1, counts[StatusBlock])
	assert.Zero(t, counts[StatusRetest])
}

func TestMySQLStore_ListByRun(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()
	runID := uuid.New()

	for i := 0; i < 3; i++ {
		_, _, err := store.Record(ctx, makeExecution(runID, uuid.New(), StatusPass))
		require.NoError(t, err)
	}
	_, _, err := store.Record(ctx, makeExecution(uuid.New(), uuid.New(), StatusPass))
	require.NoError(t, err)

	results, err := store.ListByRun(ctx, runID)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}
