package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderStepText(t *testing.T) {
	t.Run("no markers", func(t *testing.T) {
		assert.Equal(t, "Click submit", renderStepText("Click submit", "", ""))
	})

	t.Run("condition prefix", func(t *testing.T) {
		got := renderStepText("Click submit", "logged in", "")
		assert.Equal(t, "[조건: logged in]\nClick submit", got)
	})

	t.Run("note suffix", func(t *testing.T) {
		got := renderStepText("Click submit", "", "flaky on staging")
		assert.Equal(t, "Click submit\n[비고: flaky on staging]", got)
	})

	t.Run("both markers", func(t *testing.T) {
		got := renderStepText("Click submit", "logged in", "flaky")
		assert.Equal(t, "[조건: logged in]\nClick submit\n[비고: flaky]", got)
	})
}

func TestSplitStepMarkers(t *testing.T) {
	t.Run("round-trips rendered text", func(t *testing.T) {
		text := renderStepText("Click submit", "logged in", "flaky")

		precondition, action, note := SplitStepMarkers(text)
		assert.Equal(t, "logged in", precondition)
		assert.Equal(t, "Click submit", action)
		assert.Equal(t, "flaky", note)
	})

	t.Run("plain text passes through", func(t *testing.T) {
		precondition, action, note := SplitStepMarkers("Click submit")
		assert.Empty(t, precondition)
		assert.Equal(t, "Click submit", action)
		assert.Empty(t, note)
	})

	t.Run("marker in the middle is left alone", func(t *testing.T) {
		_, action, note := SplitStepMarkers("before [비고: mid] after")
		assert.Equal(t, "before [비고: mid] after", action)
		assert.Empty(t, note)
	})
}
