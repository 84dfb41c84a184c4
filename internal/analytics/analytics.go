// Package analytics computes derived views over transaction lists: month and
// range filters, income/expense totals, category breakdowns and budget
// classification. All functions are pure; the reference time is always an
// explicit argument.
package analytics

import (
	"time"

	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Budget tier thresholds in percent.
var (
	approachingThreshold = decimal.NewFromInt(80)
	exceededThreshold    = decimal.NewFromInt(100)
)

// FilterByMonth returns the transactions whose effective date falls in the
// given calendar month and year.
func FilterByMonth(transactions []models.Transaction, month time.Month, year int) []models.Transaction {
	var filtered []models.Transaction
	for _, t := range transactions {
		if dateutils.InMonth(t.EffectiveDate(), month, year) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// FilterByYear returns the transactions whose effective date falls in the
// given calendar year.
func FilterByYear(transactions []models.Transaction, year int) []models.Transaction {
	var filtered []models.Transaction
	for _, t := range transactions {
		if t.EffectiveDate().Year() == year {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// FilterByRelativeRange returns the transactions dated at or after the
// reference time shifted back by monthsBack calendar months.
func FilterByRelativeRange(transactions []models.Transaction, monthsBack int, now time.Time) []models.Transaction {
	cutoff := dateutils.MonthsBack(now, monthsBack)

	var filtered []models.Transaction
	for _, t := range transactions {
		if !t.EffectiveDate().Before(cutoff) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Totals sums the inflows and outflows of a transaction list.
func Totals(transactions []models.Transaction) models.Summary {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, t := range transactions {
		if t.IsExpense {
			expenses = expenses.Add(t.Amount)
		} else {
			income = income.Add(t.Amount)
		}
	}
	return models.Summary{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Sub(expenses),
	}
}

// GroupByCategory sums expense amounts per category. Income transactions are
// ignored and categories whose sum is zero are excluded.
func GroupByCategory(transactions []models.Transaction) map[string]decimal.Decimal {
	grouped := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if !t.IsExpense {
			continue
		}
		grouped[t.Category] = grouped[t.Category].Add(t.Amount)
	}
	for category, sum := range grouped {
		if sum.IsZero() {
			delete(grouped, category)
		}
	}
	return grouped
}

// BudgetStatus classifies expenses against the monthly budget. A budget of
// zero or less yields the Unset tier rather than a zero-percent Normal, so
// callers never imply a budget exists when none was configured.
func BudgetStatus(expenses, budget decimal.Decimal) models.BudgetStatus {
	if budget.LessThanOrEqual(decimal.Zero) {
		return models.BudgetStatus{Tier: models.BudgetUnset, Percentage: decimal.Zero}
	}

	percentage := expenses.Div(budget).Mul(oneHundred)

	tier := models.BudgetNormal
	switch {
	case percentage.GreaterThanOrEqual(exceededThreshold):
		tier = models.BudgetExceeded
	case percentage.GreaterThanOrEqual(approachingThreshold):
		tier = models.BudgetApproaching
	}

	// Display value is truncated, not rounded; the progress value is
	// additionally clamped to a full bar.
	display := int(percentage.IntPart())
	progress := display
	if progress > 100 {
		progress = 100
	}

	return models.BudgetStatus{
		Tier:           tier,
		Percentage:     percentage,
		DisplayPercent: display,
		ProgressValue:  progress,
	}
}
