package store

import "errors"

// Validation failures surfaced by the stores. All of them leave the persisted
// state untouched; none of them is fatal.
var (
	// ErrEmptyID is returned when an operation references a record with an empty ID.
	ErrEmptyID = errors.New("record has empty id")

	// ErrDuplicateID is returned when adding a transaction whose ID is already present.
	ErrDuplicateID = errors.New("transaction id already exists")

	// ErrNotFound is returned when no record matches the given ID.
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken is returned when registering with an email already in use.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on a failed login. It deliberately does
	// not distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNegativeBudget is returned when setting a monthly budget below zero.
	ErrNegativeBudget = errors.New("monthly budget must not be negative")
)
