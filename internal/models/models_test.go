package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction_GeneratesUniqueIDs(t *testing.T) {
	date := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.Local)

	first := NewTransaction("Groceries", decimal.NewFromInt(50), "Food", date, true)
	second := NewTransaction("Groceries", decimal.NewFromInt(50), "Food", date, true)

	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestTransaction_EffectiveDate(t *testing.T) {
	date := time.Date(2025, time.March, 14, 12, 30, 0, 0, time.Local)
	tx := NewTransaction("Lunch", decimal.NewFromInt(15), "Food", date, true)

	assert.True(t, date.Equal(tx.EffectiveDate()))
}

func TestTransaction_JSONRoundTrip(t *testing.T) {
	tx := NewTransaction("Salary", decimal.RequireFromString("2500.50"), "Income",
		time.Date(2025, time.January, 31, 9, 0, 0, 0, time.Local), false)

	data, err := json.Marshal(tx)
	require.NoError(t, err)

	var decoded Transaction
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, tx.ID, decoded.ID)
	assert.Equal(t, tx.Title, decoded.Title)
	assert.True(t, tx.Amount.Equal(decoded.Amount))
	assert.Equal(t, tx.Date, decoded.Date)
	assert.False(t, decoded.IsExpense)
}

func TestUser_EmailEquals(t *testing.T) {
	u := NewUser("Alice", "alice@example.com", "secret")

	assert.True(t, u.EmailEquals("alice@example.com"))
	assert.True(t, u.EmailEquals("ALICE@Example.COM"))
	assert.False(t, u.EmailEquals("bob@example.com"))
}

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()

	assert.Equal(t, "$", prefs.CurrencySymbol)
	assert.True(t, prefs.MonthlyBudget.IsZero())
	assert.True(t, prefs.NotificationsEnabled)
	assert.False(t, prefs.BudgetWarningShown)
	assert.False(t, prefs.BudgetExceededShown)
}

func TestMonthMarker_Matches(t *testing.T) {
	marker := MonthMarker{Month: 3, Year: 2025}

	assert.True(t, marker.Matches(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)))
	assert.True(t, marker.Matches(time.Date(2025, time.March, 31, 23, 59, 59, 0, time.Local)))
	assert.False(t, marker.Matches(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.Local)))
	assert.False(t, marker.Matches(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)))
}
