package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapColumns(t *testing.T) {
	t.Run("english headers", func(t *testing.T) {
		mapping := MapColumns([]string{"Section", "Title", "Priority", "Type", "Precondition", "Note", "Step", "Expected Result"})

		assert.Equal(t, 0, mapping.Column(FieldSection))
		assert.Equal(t, 1, mapping.Column(FieldTitle))
		assert.Equal(t, 2, mapping.Column(FieldPriority))
		assert.Equal(t, 3, mapping.Column(FieldType))
		assert.Equal(t, 4, mapping.Column(FieldPrecondition))
		assert.Equal(t, 5, mapping.Column(FieldNote))
		assert.Equal(t, 6, mapping.Column(FieldStep))
		assert.Equal(t, 7, mapping.Column(FieldExpected))
	})

	t.Run("korean headers", func(t *testing.T) {
		mapping := MapColumns([]string{"섹션", "제목", "우선순위", "단계", "기대 결과", "비고"})

		assert.Equal(t, 0, mapping.Column(FieldSection))
		assert.Equal(t, 1, mapping.Column(FieldTitle))
		assert.Equal(t, 2, mapping.Column(FieldPriority))
		assert.Equal(t, 3, mapping.Column(FieldStep))
		assert.Equal(t, 4, mapping.Column(FieldExpected))
		assert.Equal(t, 5, mapping.Column(FieldNote))
	})

	t.Run("compound headers classify by leading concern", func(t *testing.T) {
		mapping := MapColumns([]string{"Section Title", "Expected Result"})

		assert.Equal(t, 0, mapping.Column(FieldSection))
		assert.Equal(t, 1, mapping.Column(FieldExpected))
		assert.Equal(t, -1, mapping.Column(FieldTitle))
	})

	t.Run("last matching header wins the field", func(t *testing.T) {
		mapping := MapColumns([]string{"Title", "Case Name"})
		assert.Equal(t, 1, mapping.Column(FieldTitle))
	})

	t.Run("blank and unknown headers skipped", func(t *testing.T) {
		mapping := MapColumns([]string{"", "Automation Flag", "Title"})

		assert.Equal(t, 2, mapping.Column(FieldTitle))
		assert.Len(t, mapping, 1)
	})

	t.Run("unmapped field reports -1", func(t *testing.T) {
		mapping := MapColumns([]string{"Title"})
		assert.Equal(t, -1, mapping.Column(FieldStep))
	})
}
