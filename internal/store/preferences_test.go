package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPreferenceStore(t *testing.T) *PreferenceStore {
	t.Helper()
	return NewPreferenceStore(filepath.Join(t.TempDir(), "preferences.json"))
}

func TestPreferenceStore_Defaults(t *testing.T) {
	s := newTestPreferenceStore(t)

	assert.Equal(t, "$", s.CurrencySymbol())
	assert.True(t, s.MonthlyBudget().IsZero())
	assert.True(t, s.NotificationsEnabled())
}

func TestPreferenceStore_DefaultsOnCorruptFile(t *testing.T) {
	s := newTestPreferenceStore(t)
	require.NoError(t, os.WriteFile(s.FilePath, []byte("!!"), 0600))

	assert.Equal(t, "$", s.CurrencySymbol())
	assert.True(t, s.NotificationsEnabled())
}

func TestPreferenceStore_SetAndGet(t *testing.T) {
	s := newTestPreferenceStore(t)

	require.NoError(t, s.SetCurrencySymbol("€"))
	require.NoError(t, s.SetMonthlyBudget(decimal.RequireFromString("1500.50")))
	require.NoError(t, s.SetNotificationsEnabled(false))

	assert.Equal(t, "€", s.CurrencySymbol())
	assert.True(t, s.MonthlyBudget().Equal(decimal.RequireFromString("1500.50")))
	assert.False(t, s.NotificationsEnabled())
}

func TestPreferenceStore_RejectsNegativeBudget(t *testing.T) {
	s := newTestPreferenceStore(t)
	require.NoError(t, s.SetMonthlyBudget(decimal.NewFromInt(100)))

	err := s.SetMonthlyBudget(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrNegativeBudget)

	// Previous value untouched
	assert.True(t, s.MonthlyBudget().Equal(decimal.NewFromInt(100)))
}

func TestPreferenceStore_ResetMonthlyStats(t *testing.T) {
	s := newTestPreferenceStore(t)

	require.NoError(t, s.SetCurrencySymbol("CHF"))
	require.NoError(t, s.SetMonthlyBudget(decimal.NewFromInt(800)))
	require.NoError(t, s.MarkBudgetWarningShown())
	require.NoError(t, s.MarkBudgetExceededShown())
	assert.True(t, s.BudgetWarningShown())
	assert.True(t, s.BudgetExceededShown())

	require.NoError(t, s.ResetMonthlyStats())

	// Only the transient flags are cleared
	assert.False(t, s.BudgetWarningShown())
	assert.False(t, s.BudgetExceededShown())
	assert.Equal(t, "CHF", s.CurrencySymbol())
	assert.True(t, s.MonthlyBudget().Equal(decimal.NewFromInt(800)))
}
