// Package store provides the file-backed stores for transactions, users,
// preferences and the month-rollover marker. Each store persists its whole
// record set as one unit: operations read the collection, mutate it in
// memory and atomically write it back. The stores provide no internal
// locking and expect a single coordinated writer.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/fileutils"
	"fjacquet/fintrack/internal/models"

	"github.com/sirupsen/logrus"
)

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// TransactionStore manages the durable transaction collection.
type TransactionStore struct {
	FilePath string

	// Clock supplies the current time for month comparisons. Tests override it.
	Clock func() time.Time
}

// NewTransactionStore creates a transaction store backed by the given file.
func NewTransactionStore(filePath string) *TransactionStore {
	return &TransactionStore{
		FilePath: filePath,
		Clock:    time.Now,
	}
}

// List returns all persisted transactions in insertion order. Records with an
// empty ID are filtered out. A missing or corrupt file yields an empty
// collection, never an error.
func (s *TransactionStore) List() []models.Transaction {
	data, err := fileutils.ReadFile(s.FilePath)
	if err != nil {
		log.Debugf("No transaction data at %s", s.FilePath)
		return []models.Transaction{}
	}

	var transactions []models.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		log.Warnf("Corrupt transaction data at %s: %v", s.FilePath, err)
		return []models.Transaction{}
	}

	valid := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.ID == "" {
			log.Warnf("Dropping persisted transaction with empty ID")
			continue
		}
		valid = append(valid, t)
	}
	return valid
}

// Add appends a transaction and persists the collection. An empty or
// colliding ID leaves the store untouched.
func (s *TransactionStore) Add(transaction models.Transaction) error {
	if transaction.ID == "" {
		log.Error("Attempted to add transaction with empty ID")
		return ErrEmptyID
	}

	transactions := s.List()
	for _, existing := range transactions {
		if existing.ID == transaction.ID {
			log.Errorf("Transaction with ID %s already exists", transaction.ID)
			return fmt.Errorf("add %s: %w", transaction.ID, ErrDuplicateID)
		}
	}

	transactions = append(transactions, transaction)
	if err := s.SaveAll(transactions); err != nil {
		return err
	}
	log.Debugf("Added transaction with ID %s", transaction.ID)
	return nil
}

// Update replaces the record matching the transaction's ID, preserving its
// position in the collection.
func (s *TransactionStore) Update(transaction models.Transaction) error {
	if transaction.ID == "" {
		log.Error("Attempted to update transaction with empty ID")
		return ErrEmptyID
	}

	transactions := s.List()
	for i, existing := range transactions {
		if existing.ID == transaction.ID {
			transactions[i] = transaction
			if err := s.SaveAll(transactions); err != nil {
				return err
			}
			log.Debugf("Updated transaction with ID %s", transaction.ID)
			return nil
		}
	}

	log.Errorf("Transaction with ID %s not found for update", transaction.ID)
	return fmt.Errorf("update %s: %w", transaction.ID, ErrNotFound)
}

// Delete permanently removes the record with the given ID.
func (s *TransactionStore) Delete(id string) error {
	if id == "" {
		log.Error("Attempted to delete transaction with empty ID")
		return ErrEmptyID
	}

	transactions := s.List()
	remaining := make([]models.Transaction, 0, len(transactions))
	for _, existing := range transactions {
		if existing.ID != id {
			remaining = append(remaining, existing)
		}
	}

	if len(remaining) == len(transactions) {
		log.Errorf("Transaction with ID %s not found for deletion", id)
		return fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}

	if err := s.SaveAll(remaining); err != nil {
		return err
	}
	log.Debugf("Deleted transaction with ID %s", id)
	return nil
}

// SaveAll unconditionally overwrites the whole collection. It is used by
// restore and by the month-rollover reset.
func (s *TransactionStore) SaveAll(transactions []models.Transaction) error {
	data, err := json.Marshal(transactions)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}
	if err := fileutils.WriteFileAtomic(s.FilePath, data, 0600); err != nil {
		return fmt.Errorf("failed to persist transactions: %w", err)
	}
	log.Debugf("Saved %d transactions to %s", len(transactions), s.FilePath)
	return nil
}

// ArchivePreviousMonth returns the transactions dated outside the current
// calendar month. It only observes: the records stay in place untouched.
func (s *TransactionStore) ArchivePreviousMonth() []models.Transaction {
	now := s.Clock()

	var archived []models.Transaction
	for _, t := range s.List() {
		if !dateutils.SameMonth(t.EffectiveDate(), now) {
			archived = append(archived, t)
		}
	}

	log.Infof("Found %d transactions outside %s %d; records left in place",
		len(archived), now.Month(), now.Year())
	return archived
}
