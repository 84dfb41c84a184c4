package container

import (
	"path/filepath"
	"testing"
	"time"

	"fjacquet/fintrack/internal/analytics"
	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.Log.Level = "error"
	cfg.Log.Format = "text"
	cfg.Data.Directory = filepath.Join(dir, "data")
	cfg.Backup.Directory = filepath.Join(dir, "backups")
	return cfg
}

func TestNewContainer_NilConfig(t *testing.T) {
	_, err := NewContainer(nil)
	assert.Error(t, err)
}

func TestNewContainer_WiresStores(t *testing.T) {
	c, err := NewContainer(testConfig(t))
	require.NoError(t, err)

	assert.NotNil(t, c.GetTransactionStore())
	assert.NotNil(t, c.GetUserStore())
	assert.NotNil(t, c.GetPreferenceStore())
	assert.NotNil(t, c.GetMonthTracker())
	assert.NotNil(t, c.GetBackupManager())
	assert.NotNil(t, c.GetConfig())
}

func TestContainer_EndToEndFlow(t *testing.T) {
	c, err := NewContainer(testConfig(t))
	require.NoError(t, err)

	// Record a transaction through the wired store
	tx := models.NewTransaction("Groceries", decimal.NewFromInt(50), "Food",
		time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local), true)
	require.NoError(t, c.GetTransactionStore().Add(tx))

	// Back it up and restore it through the wired manager
	name, err := c.GetBackupManager().Export(c.GetTransactionStore().List())
	require.NoError(t, err)

	restored, err := c.GetBackupManager().Import(name)
	require.NoError(t, err)
	require.Len(t, restored, 1)
	assert.Equal(t, tx.ID, restored[0].ID)

	// Aggregate the stored transactions against the configured budget
	require.NoError(t, c.GetPreferenceStore().SetMonthlyBudget(decimal.NewFromInt(100)))
	summary := analytics.Totals(c.GetTransactionStore().List())
	assert.True(t, summary.Expenses.Equal(decimal.NewFromInt(50)))

	status := analytics.BudgetStatus(summary.Expenses, c.GetPreferenceStore().MonthlyBudget())
	assert.Equal(t, models.BudgetNormal, status.Tier)
	assert.Equal(t, 50, status.DisplayPercent)
}

func TestContainer_CheckMonthRollover(t *testing.T) {
	c, err := NewContainer(testConfig(t))
	require.NoError(t, err)

	clock := func() time.Time {
		return time.Date(2025, time.March, 15, 9, 0, 0, 0, time.Local)
	}
	c.GetMonthTracker().Clock = clock
	c.GetTransactionStore().Clock = clock

	// First check records the baseline
	require.NoError(t, c.CheckMonthRollover())
	require.NoError(t, c.GetPreferenceStore().MarkBudgetWarningShown())

	// Next month: rollover actions fire and the warning flag resets
	c.GetMonthTracker().Clock = func() time.Time {
		return time.Date(2025, time.April, 1, 9, 0, 0, 0, time.Local)
	}
	require.NoError(t, c.CheckMonthRollover())
	assert.False(t, c.GetPreferenceStore().BudgetWarningShown())
}
