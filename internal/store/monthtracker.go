package store

import (
	"fmt"
	"time"

	"fjacquet/fintrack/internal/fileutils"
	"fjacquet/fintrack/internal/models"

	"gopkg.in/yaml.v3"
)

// MonthTracker detects calendar-month rollover across application launches.
// The persisted marker is advanced before the rollover is reported, so the
// rollover action fires at most once per calendar month no matter how often
// the check runs.
type MonthTracker struct {
	MarkerFile   string
	Transactions *TransactionStore
	Preferences  *PreferenceStore

	Clock func() time.Time
}

// NewMonthTracker creates a tracker that persists its marker to markerFile
// and drives the rollover actions on the given stores.
func NewMonthTracker(markerFile string, transactions *TransactionStore, preferences *PreferenceStore) *MonthTracker {
	return &MonthTracker{
		MarkerFile:   markerFile,
		Transactions: transactions,
		Preferences:  preferences,
		Clock:        time.Now,
	}
}

func (t *MonthTracker) loadMarker() (models.MonthMarker, bool) {
	data, err := fileutils.ReadFile(t.MarkerFile)
	if err != nil {
		return models.MonthMarker{}, false
	}

	var marker models.MonthMarker
	if err := yaml.Unmarshal(data, &marker); err != nil {
		log.Warnf("Corrupt month marker at %s: %v", t.MarkerFile, err)
		return models.MonthMarker{}, false
	}
	if marker.Month < 1 || marker.Month > 12 {
		return models.MonthMarker{}, false
	}
	return marker, true
}

func (t *MonthTracker) saveMarker(marker models.MonthMarker) error {
	data, err := yaml.Marshal(marker)
	if err != nil {
		return fmt.Errorf("failed to encode month marker: %w", err)
	}
	if err := fileutils.WriteFileAtomic(t.MarkerFile, data, 0600); err != nil {
		return fmt.Errorf("failed to persist month marker: %w", err)
	}
	return nil
}

// HasMonthChanged compares the persisted marker against the current calendar
// month. The first-ever check records the baseline and reports no change.
// A detected change advances the marker immediately, so a second check in
// the same month reports false.
func (t *MonthTracker) HasMonthChanged() bool {
	now := t.Clock()
	current := models.MonthMarker{Month: int(now.Month()), Year: now.Year()}

	marker, ok := t.loadMarker()
	if !ok {
		// First run: record the baseline without reporting a change.
		if err := t.saveMarker(current); err != nil {
			log.Warnf("Failed to save month baseline: %v", err)
		}
		return false
	}

	if marker.Matches(now) {
		return false
	}

	log.Infof("Month changed from %d/%d to %d/%d", marker.Month, marker.Year, current.Month, current.Year)
	if err := t.saveMarker(current); err != nil {
		log.Warnf("Failed to advance month marker: %v", err)
	}
	return true
}

// HandleMonthChange runs the rollover actions: the transaction archive step
// first, then the preference reset. Call it only after HasMonthChanged
// reported true.
func (t *MonthTracker) HandleMonthChange() error {
	log.Debug("Handling month change")

	archived := t.Transactions.ArchivePreviousMonth()
	log.Debugf("Archive step observed %d transactions from previous months", len(archived))

	if err := t.Preferences.ResetMonthlyStats(); err != nil {
		return fmt.Errorf("failed to reset monthly stats: %w", err)
	}
	return nil
}
