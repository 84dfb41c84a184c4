package models

import "github.com/shopspring/decimal"

// Summary holds the derived totals over a set of transactions.
type Summary struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// BudgetTier classifies spending against the configured monthly budget.
type BudgetTier string

const (
	// BudgetUnset indicates no budget has been configured (budget <= 0).
	BudgetUnset BudgetTier = "unset"
	// BudgetNormal indicates spending below the warning threshold.
	BudgetNormal BudgetTier = "normal"
	// BudgetApproaching indicates spending at or above 80% of the budget.
	BudgetApproaching BudgetTier = "approaching"
	// BudgetExceeded indicates spending at or above 100% of the budget.
	BudgetExceeded BudgetTier = "exceeded"
)

// BudgetStatus is the result of classifying expenses against a budget.
// Percentage is the raw, unclamped ratio in percent. DisplayPercent is
// truncated to a whole number and ProgressValue is additionally clamped to
// 100 for progress-bar rendering.
type BudgetStatus struct {
	Tier           BudgetTier      `json:"tier"`
	Percentage     decimal.Decimal `json:"percentage"`
	DisplayPercent int             `json:"displayPercent"`
	ProgressValue  int             `json:"progressValue"`
}
