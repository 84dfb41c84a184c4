// Package container provides dependency injection for the fintrack core.
// It centralizes the creation and wiring of all stores, making dependencies
// explicit and testable.
package container

import (
	"fmt"
	"path/filepath"

	"fjacquet/fintrack/internal/backup"
	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/fileutils"
	"fjacquet/fintrack/internal/store"
)

// File names inside the data directory.
const (
	transactionsFile = "transactions.json"
	usersFile        = "users.json"
	sessionFile      = "session.yaml"
	preferencesFile  = "preferences.json"
	monthMarkerFile  = "month_marker.yaml"
)

// Container holds all wired application dependencies. It is immutable after
// creation; components are reached through getter methods.
type Container struct {
	config       *config.Config
	transactions *store.TransactionStore
	users        *store.UserStore
	preferences  *store.PreferenceStore
	monthTracker *store.MonthTracker
	backups      *backup.Manager
}

// NewContainer creates and wires all application dependencies from the
// configuration. The data and backup directories are created if missing.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := config.ConfigureLoggingFromConfig(cfg)
	store.SetLogger(logger)
	backup.SetLogger(logger)
	fileutils.SetLogger(logger)

	if err := fileutils.EnsureDirectoryExists(cfg.Data.Directory); err != nil {
		return nil, fmt.Errorf("data directory: %w", err)
	}
	if err := fileutils.EnsureDirectoryExists(cfg.Backup.Directory); err != nil {
		return nil, fmt.Errorf("backup directory: %w", err)
	}

	transactions := store.NewTransactionStore(filepath.Join(cfg.Data.Directory, transactionsFile))
	users := store.NewUserStore(
		filepath.Join(cfg.Data.Directory, usersFile),
		filepath.Join(cfg.Data.Directory, sessionFile),
	)
	preferences := store.NewPreferenceStore(filepath.Join(cfg.Data.Directory, preferencesFile))
	monthTracker := store.NewMonthTracker(
		filepath.Join(cfg.Data.Directory, monthMarkerFile),
		transactions,
		preferences,
	)
	backups := backup.NewManager(cfg.Backup.Directory)

	logger.WithField("data_dir", cfg.Data.Directory).Debug("Container initialized")

	return &Container{
		config:       cfg,
		transactions: transactions,
		users:        users,
		preferences:  preferences,
		monthTracker: monthTracker,
		backups:      backups,
	}, nil
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetTransactionStore returns the wired transaction store.
func (c *Container) GetTransactionStore() *store.TransactionStore {
	return c.transactions
}

// GetUserStore returns the wired user store.
func (c *Container) GetUserStore() *store.UserStore {
	return c.users
}

// GetPreferenceStore returns the wired preference store.
func (c *Container) GetPreferenceStore() *store.PreferenceStore {
	return c.preferences
}

// GetMonthTracker returns the wired month-rollover tracker.
func (c *Container) GetMonthTracker() *store.MonthTracker {
	return c.monthTracker
}

// GetBackupManager returns the wired backup manager.
func (c *Container) GetBackupManager() *backup.Manager {
	return c.backups
}

// CheckMonthRollover runs the rollover check and, when a new month has begun,
// the rollover actions. Intended to be called once per app foreground
// transition by the UI layer.
func (c *Container) CheckMonthRollover() error {
	if !c.monthTracker.HasMonthChanged() {
		return nil
	}
	return c.monthTracker.HandleMonthChange()
}
