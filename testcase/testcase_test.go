package testcase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTestCase_Validate(t *testing.T) {
	t.Run("valid case", func(t *testing.T) {
		tc := createTestCase(uuid.New(), "Valid case")
		assert.NoError(t, tc.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		tc := createTestCase(uuid.New(), "")
		assert.ErrorIs(t, tc.Validate(), ErrInvalidTestCaseTitle)
	})

	t.Run("missing project", func(t *testing.T) {
		tc := createTestCase(uuid.Nil, "No project")
		assert.ErrorIs(t, tc.Validate(), ErrInvalidProjectID)
	})

	t.Run("missing author", func(t *testing.T) {
		tc := createTestCase(uuid.New(), "No author")
		tc.AuthorID = uuid.Nil
		assert.ErrorIs(t, tc.Validate(), ErrInvalidAuthorID)
	})

	t.Run("no steps", func(t *testing.T) {
		tc := createTestCase(uuid.New(), "No steps")
		tc.Steps = nil
		assert.ErrorIs(t, tc.Validate(), ErrNoSteps)
	})
}

func TestPriority_IsValid(t *testing.T) {
	assert.True(t, PriorityHigh.IsValid())
	assert.True(t, PriorityMedium.IsValid())
	assert.True(t, PriorityLow.IsValid())
	assert.False(t, Priority("urgent").IsValid())
}

func TestType_IsValid(t *testing.T) {
	assert.True(t, TypeFunctional.IsValid())
	assert.True(t, TypeUI.IsValid())
	assert.True(t, TypePerformance.IsValid())
	assert.True(t, TypeSecurity.IsValid())
	assert.False(t, Type("smoke").IsValid())
}

func TestSetSteps_AssignsMissingIDs(t *testing.T) {
	existing := uuid.New()
	tc := createTestCase(uuid.New(), "Step IDs")

	err := SetSteps(Steps{
		{ID: existing, Step: "Keep my ID", Expected: "Unchanged"},
		{Step: "Assign me one", Expected: "Gets an ID"},
	})(tc)
	assert.NoError(t, err)

	assert.Equal(t, existing, tc.Steps[0].ID)
	assert.NotEqual(t, uuid.Nil, tc.Steps[1].ID)
}

func TestSetSteps_RejectsEmpty(t *testing.T) {
	tc := createTestCase(uuid.New(), "Empty steps")
	err := SetSteps(Steps{})(tc)
	assert.ErrorIs(t, err, ErrNoSteps)
}
