package store

import (
	"path/filepath"
	"testing"
	"time"

	"fjacquet/fintrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMonthTracker(t *testing.T) *MonthTracker {
	t.Helper()
	dir := t.TempDir()
	transactions := NewTransactionStore(filepath.Join(dir, "transactions.json"))
	preferences := NewPreferenceStore(filepath.Join(dir, "preferences.json"))
	return NewMonthTracker(filepath.Join(dir, "month_marker.yaml"), transactions, preferences)
}

func fixedClock(year int, month time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, 15, 10, 0, 0, 0, time.Local)
	}
}

func TestMonthTracker_FirstRunRecordsBaseline(t *testing.T) {
	tracker := newTestMonthTracker(t)
	tracker.Clock = fixedClock(2025, time.March)

	assert.False(t, tracker.HasMonthChanged())

	// Baseline persisted: a second check in the same month still reports false
	assert.False(t, tracker.HasMonthChanged())
}

func TestMonthTracker_ReportsRolloverExactlyOnce(t *testing.T) {
	tracker := newTestMonthTracker(t)

	tracker.Clock = fixedClock(2025, time.March)
	assert.False(t, tracker.HasMonthChanged())

	tracker.Clock = fixedClock(2025, time.April)
	assert.True(t, tracker.HasMonthChanged())

	// Marker was advanced before reporting, so the rollover debounces
	assert.False(t, tracker.HasMonthChanged())
	assert.False(t, tracker.HasMonthChanged())

	tracker.Clock = fixedClock(2025, time.May)
	assert.True(t, tracker.HasMonthChanged())
}

func TestMonthTracker_YearRollover(t *testing.T) {
	tracker := newTestMonthTracker(t)

	tracker.Clock = fixedClock(2024, time.December)
	assert.False(t, tracker.HasMonthChanged())

	tracker.Clock = fixedClock(2025, time.January)
	assert.True(t, tracker.HasMonthChanged())
}

func TestMonthTracker_SameMonthDifferentYear(t *testing.T) {
	tracker := newTestMonthTracker(t)

	tracker.Clock = fixedClock(2024, time.June)
	assert.False(t, tracker.HasMonthChanged())

	tracker.Clock = fixedClock(2025, time.June)
	assert.True(t, tracker.HasMonthChanged())
}

func TestMonthTracker_MarkerSurvivesRestart(t *testing.T) {
	tracker := newTestMonthTracker(t)
	tracker.Clock = fixedClock(2025, time.March)
	assert.False(t, tracker.HasMonthChanged())

	// A new tracker over the same marker file sees the baseline
	reopened := NewMonthTracker(tracker.MarkerFile, tracker.Transactions, tracker.Preferences)
	reopened.Clock = fixedClock(2025, time.March)
	assert.False(t, reopened.HasMonthChanged())

	reopened.Clock = fixedClock(2025, time.April)
	assert.True(t, reopened.HasMonthChanged())
}

func TestMonthTracker_HandleMonthChange(t *testing.T) {
	tracker := newTestMonthTracker(t)
	tracker.Clock = fixedClock(2025, time.April)
	tracker.Transactions.Clock = tracker.Clock

	older := models.Transaction{
		ID:    "old",
		Title: "March rent",
		Date:  time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local).UnixMilli(),
	}
	require.NoError(t, tracker.Transactions.SaveAll([]models.Transaction{older}))
	require.NoError(t, tracker.Preferences.MarkBudgetWarningShown())

	require.NoError(t, tracker.HandleMonthChange())

	// Archive step observes but does not mutate; preference flags are cleared
	assert.Len(t, tracker.Transactions.List(), 1)
	assert.False(t, tracker.Preferences.BudgetWarningShown())
}
