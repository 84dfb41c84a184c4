// Package backup serializes the transaction collection to timestamp-named
// snapshot files and restores it from them.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/currencyutils"
	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/fileutils"
	"fjacquet/fintrack/internal/models"

	"github.com/gocarina/gocsv"
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

// Snapshot naming convention: finance_backup_<YYYYMMDD_HHMMSS>.json
const (
	snapshotPrefix = "finance_backup_"
	snapshotSuffix = ".json"
	csvPrefix      = "finance_export_"
	csvSuffix      = ".csv"
)

// Manager owns the snapshot directory.
type Manager struct {
	Directory string

	Clock func() time.Time
}

// NewManager creates a backup manager writing snapshots under dir.
func NewManager(dir string) *Manager {
	return &Manager{
		Directory: dir,
		Clock:     time.Now,
	}
}

// IsSnapshotName reports whether a filename follows the snapshot convention.
// Path separators never match, which keeps deletes inside the snapshot
// directory.
func IsSnapshotName(name string) bool {
	if name != filepath.Base(name) {
		return false
	}
	return strings.HasPrefix(name, snapshotPrefix) && strings.HasSuffix(name, snapshotSuffix)
}

// Export serializes the given transactions to a new snapshot file and
// returns its name. An existing snapshot is never overwritten.
func (m *Manager) Export(transactions []models.Transaction) (string, error) {
	name := snapshotPrefix + dateutils.SnapshotTimestamp(m.Clock()) + snapshotSuffix
	path := filepath.Join(m.Directory, name)

	if fileutils.FileExists(path) {
		return "", fmt.Errorf("snapshot %s already exists", name)
	}

	data, err := json.Marshal(transactions)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := fileutils.WriteFileAtomic(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	log.Infof("Exported %d transactions to %s", len(transactions), name)
	return name, nil
}

// Import deserializes a named snapshot. A missing file or malformed content
// is an error; backup failures are never silently absorbed.
func (m *Manager) Import(name string) ([]models.Transaction, error) {
	if !IsSnapshotName(name) {
		return nil, fmt.Errorf("not a snapshot file: %s", name)
	}

	data, err := fileutils.ReadFile(filepath.Join(m.Directory, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var transactions []models.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, fmt.Errorf("malformed snapshot %s: %w", name, err)
	}

	log.Infof("Imported %d transactions from %s", len(transactions), name)
	return transactions, nil
}

// List returns the names of all snapshot files in the backup directory.
func (m *Manager) List() ([]string, error) {
	entries, err := fileutils.ListFilesWithExtension(m.Directory, snapshotSuffix)
	if err != nil {
		return nil, err
	}

	var snapshots []string
	for _, name := range entries {
		if IsSnapshotName(name) {
			snapshots = append(snapshots, name)
		}
	}
	return snapshots, nil
}

// Delete removes a snapshot file. The name must follow the snapshot
// convention, so unrelated files cannot be removed through this path.
func (m *Manager) Delete(name string) error {
	if !IsSnapshotName(name) {
		log.Errorf("Refusing to delete non-snapshot file: %s", name)
		return fmt.Errorf("not a snapshot file: %s", name)
	}

	path := filepath.Join(m.Directory, name)
	if !fileutils.FileExists(path) {
		return fmt.Errorf("snapshot does not exist: %s", name)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	log.Infof("Deleted snapshot %s", name)
	return nil
}

// FormattedTimestamp renders the creation time embedded in a snapshot name
// for display. The raw name is returned when the timestamp cannot be parsed.
func (m *Manager) FormattedTimestamp(name string) string {
	token := strings.TrimSuffix(strings.TrimPrefix(name, snapshotPrefix), snapshotSuffix)
	ts, err := dateutils.ParseSnapshotTimestamp(token)
	if err != nil {
		log.Warnf("Failed to parse snapshot timestamp from %s: %v", name, err)
		return name
	}
	return dateutils.FormatDisplay(ts)
}

// csvRow maps a transaction onto the CSV export columns.
type csvRow struct {
	ID       string `csv:"ID"`
	Title    string `csv:"Title"`
	Amount   string `csv:"Amount"`
	Category string `csv:"Category"`
	Date     string `csv:"Date"`
	Type     string `csv:"Type"`
}

// ExportCSV writes the transactions to a timestamp-named CSV file for use
// outside the application. Amounts carry the given currency symbol and a
// sign. The snapshot files remain the restore format.
func (m *Manager) ExportCSV(transactions []models.Transaction, symbol string) (string, error) {
	name := csvPrefix + dateutils.SnapshotTimestamp(m.Clock()) + csvSuffix
	path := filepath.Join(m.Directory, name)

	if fileutils.FileExists(path) {
		return "", fmt.Errorf("export %s already exists", name)
	}

	rows := make([]csvRow, 0, len(transactions))
	for _, t := range transactions {
		kind := "Income"
		if t.IsExpense {
			kind = "Expense"
		}
		rows = append(rows, csvRow{
			ID:       t.ID,
			Title:    t.Title,
			Amount:   currencyutils.FormatSigned(t.Amount, symbol, t.IsExpense),
			Category: t.Category,
			Date:     dateutils.FormatDate(t.EffectiveDate()),
			Type:     kind,
		})
	}

	data, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return "", fmt.Errorf("failed to encode CSV export: %w", err)
	}
	if err := fileutils.WriteFileAtomic(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write CSV export: %w", err)
	}

	log.Infof("Exported %d transactions to %s", len(transactions), name)
	return name, nil
}
