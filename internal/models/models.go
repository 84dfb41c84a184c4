// Package models defines the data types shared by the fintrack stores and
// the aggregation engine.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a single income or expense entry.
// Date is an absolute timestamp in epoch milliseconds; it records the
// transaction's effective date, independent of creation time.
type Transaction struct {
	ID        string          `json:"id" yaml:"id"`
	Title     string          `json:"title" yaml:"title"`
	Amount    decimal.Decimal `json:"amount" yaml:"amount"`
	Category  string          `json:"category" yaml:"category"`
	Date      int64           `json:"date" yaml:"date"`
	IsExpense bool            `json:"isExpense" yaml:"is_expense"`
}

// NewTransaction creates a transaction with a freshly generated ID.
func NewTransaction(title string, amount decimal.Decimal, category string, date time.Time, isExpense bool) Transaction {
	return Transaction{
		ID:        uuid.NewString(),
		Title:     title,
		Amount:    amount,
		Category:  category,
		Date:      date.UnixMilli(),
		IsExpense: isExpense,
	}
}

// EffectiveDate returns the transaction date as a time.Time in the local zone.
func (t Transaction) EffectiveDate() time.Time {
	return time.UnixMilli(t.Date)
}

// User represents a registered account holder.
// The password is stored as entered; see DESIGN.md for the authentication
// parity decision.
type User struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
}

// NewUser creates a user with a freshly generated ID.
func NewUser(name, email, password string) User {
	return User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: password,
	}
}

// EmailEquals compares the user's email against another under
// case-insensitive semantics.
func (u User) EmailEquals(email string) bool {
	return strings.EqualFold(u.Email, email)
}

// Session is the explicit login session object. It is created by a
// successful login, persisted independently of the user roster, and
// destroyed by logout.
type Session struct {
	User       User      `json:"user" yaml:"user"`
	LoggedInAt time.Time `json:"loggedInAt" yaml:"logged_in_at"`
}

// Preferences holds the scalar application settings.
// MonthlyBudget of zero means no budget has been configured.
// The *Shown flags dedupe budget notifications within a calendar month and
// are cleared on month rollover.
type Preferences struct {
	CurrencySymbol       string          `json:"currencySymbol"`
	MonthlyBudget        decimal.Decimal `json:"monthlyBudget"`
	NotificationsEnabled bool            `json:"notificationsEnabled"`
	BudgetWarningShown   bool            `json:"budgetWarningShown"`
	BudgetExceededShown  bool            `json:"budgetExceededShown"`
}

// DefaultPreferences returns the settings used before the user changes anything.
func DefaultPreferences() Preferences {
	return Preferences{
		CurrencySymbol:       "$",
		MonthlyBudget:        decimal.Zero,
		NotificationsEnabled: true,
	}
}

// MonthMarker records the last calendar month and year observed by the
// rollover tracker. Month is 1-12 as in time.Month.
type MonthMarker struct {
	Month int `yaml:"month"`
	Year  int `yaml:"year"`
}

// Matches reports whether the marker points at the month containing ref.
func (m MonthMarker) Matches(ref time.Time) bool {
	return m.Month == int(ref.Month()) && m.Year == ref.Year()
}
