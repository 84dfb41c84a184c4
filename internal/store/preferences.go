package store

import (
	"encoding/json"
	"fmt"

	"fjacquet/fintrack/internal/fileutils"
	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// PreferenceStore manages the single scalar settings record.
type PreferenceStore struct {
	FilePath string
}

// NewPreferenceStore creates a preference store backed by the given file.
func NewPreferenceStore(filePath string) *PreferenceStore {
	return &PreferenceStore{FilePath: filePath}
}

// Load returns the persisted preferences. A missing or corrupt record yields
// the defaults.
func (s *PreferenceStore) Load() models.Preferences {
	data, err := fileutils.ReadFile(s.FilePath)
	if err != nil {
		return models.DefaultPreferences()
	}

	prefs := models.DefaultPreferences()
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Warnf("Corrupt preference data at %s: %v", s.FilePath, err)
		return models.DefaultPreferences()
	}
	return prefs
}

func (s *PreferenceStore) save(prefs models.Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := fileutils.WriteFileAtomic(s.FilePath, data, 0600); err != nil {
		return fmt.Errorf("failed to persist preferences: %w", err)
	}
	return nil
}

// CurrencySymbol returns the configured currency symbol.
func (s *PreferenceStore) CurrencySymbol() string {
	return s.Load().CurrencySymbol
}

// SetCurrencySymbol stores the currency symbol.
func (s *PreferenceStore) SetCurrencySymbol(symbol string) error {
	prefs := s.Load()
	prefs.CurrencySymbol = symbol
	return s.save(prefs)
}

// MonthlyBudget returns the configured monthly budget. Zero means unset.
func (s *PreferenceStore) MonthlyBudget() decimal.Decimal {
	return s.Load().MonthlyBudget
}

// SetMonthlyBudget stores the monthly budget. Negative values are rejected.
func (s *PreferenceStore) SetMonthlyBudget(budget decimal.Decimal) error {
	if budget.IsNegative() {
		log.Errorf("Rejected negative monthly budget %s", budget)
		return ErrNegativeBudget
	}
	prefs := s.Load()
	prefs.MonthlyBudget = budget
	return s.save(prefs)
}

// NotificationsEnabled reports whether budget notifications are enabled.
func (s *PreferenceStore) NotificationsEnabled() bool {
	return s.Load().NotificationsEnabled
}

// SetNotificationsEnabled stores the notification toggle.
func (s *PreferenceStore) SetNotificationsEnabled(enabled bool) error {
	prefs := s.Load()
	prefs.NotificationsEnabled = enabled
	return s.save(prefs)
}

// BudgetWarningShown reports whether the approaching-budget warning has
// already been shown this month.
func (s *PreferenceStore) BudgetWarningShown() bool {
	return s.Load().BudgetWarningShown
}

// MarkBudgetWarningShown records that the approaching-budget warning was shown.
func (s *PreferenceStore) MarkBudgetWarningShown() error {
	prefs := s.Load()
	prefs.BudgetWarningShown = true
	return s.save(prefs)
}

// BudgetExceededShown reports whether the budget-exceeded alert has already
// been shown this month.
func (s *PreferenceStore) BudgetExceededShown() bool {
	return s.Load().BudgetExceededShown
}

// MarkBudgetExceededShown records that the budget-exceeded alert was shown.
func (s *PreferenceStore) MarkBudgetExceededShown() error {
	prefs := s.Load()
	prefs.BudgetExceededShown = true
	return s.save(prefs)
}

// ResetMonthlyStats clears the transient per-month flags. The budget and the
// currency symbol are left untouched.
func (s *PreferenceStore) ResetMonthlyStats() error {
	prefs := s.Load()
	prefs.BudgetWarningShown = false
	prefs.BudgetExceededShown = false
	if err := s.save(prefs); err != nil {
		return err
	}
	log.Debug("Monthly preference stats reset")
	return nil
}
