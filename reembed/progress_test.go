package reembed

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressTracker(t *testing.T) {
	t.Run("reports at interval", func(t *testing.T) {
		var buf bytes.Buffer
		tracker := NewProgressTracker(&buf, 100, 10)
		tracker.Start()

		tracker.Increment(5)
		assert.Empty(t, buf.String(), "below interval, no report expected")

		tracker.Increment(5)
		assert.Contains(t, buf.String(), "10/100")
	})

	t.Run("finish reports full total", func(t *testing.T) {
		var buf bytes.Buffer
		tracker := NewProgressTracker(&buf, 50, 100)
		tracker.Start()
		tracker.Increment(20)
		tracker.Finish()

		out := buf.String()
		assert.Contains(t, out, "50/50")
		assert.Contains(t, out, "100.0%")
		assert.True(t, strings.HasSuffix(out, "\n"))
	})

	t.Run("increment before start is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		tracker := NewProgressTracker(&buf, 10, 1)
		tracker.Increment(5)
		assert.Empty(t, buf.String())
	})

	t.Run("current is capped at total", func(t *testing.T) {
		var buf bytes.Buffer
		tracker := NewProgressTracker(&buf, 10, 1)
		tracker.Start()
		tracker.Increment(25)
		assert.Contains(t, buf.String(), "10/10")
	})

	t.Run("elapsed is zero before start", func(t *testing.T) {
		tracker := NewProgressTracker(&bytes.Buffer{}, 10, 1)
		assert.Zero(t, tracker.Elapsed())
	})
}
