package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPurgeCutoff(t *testing.T) {
	now := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	cutoff := purgeCutoff(now, 30)

	// A row soft-deleted yesterday stays retrievable for restore.
	recent := now.Add(-24 * time.Hour)
	assert.False(t, recent.Before(cutoff), "fresh soft deletes are not eligible")

	// Past the retention window the row and its object get reclaimed.
	old := now.Add(-31 * 24 * time.Hour)
	assert.True(t, old.Before(cutoff), "rows older than retention are eligible")

	assert.Equal(t, now.Add(-30*24*time.Hour), cutoff)
}
