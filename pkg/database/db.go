package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mkrugly/nr-frequency/pkg/logger"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	// Use modernc.org/sqlite (pure Go, no CGO)
	"gorm.io/driver/sqlite"
	_ "modernc.org/sqlite"
)

// DB wraps the GORM connection to the cell plan store
type DB struct {
	db     *gorm.DB
	logger *logger.Logger
}

// Config holds cell plan store configuration
type Config struct {
	Path string // Path to the SQLite file holding resolved plans
}

// NewDB opens the cell plan store, applying schema migrations and the
// SQLite pragmas the store needs. The store is written once per resolve
// and read by the API, so WAL with NORMAL synchronous is sufficient.
func NewDB(cfg Config, log *logger.Logger) (*DB, error) {
	if cfg.Path == "" {
		cfg.Path = "nr-frequency.db"
	}

	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Configure GORM logger to use our logger
	gormLog := gormlogger.New(
		&gormLogAdapter{log: log},
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	// Open with the pure Go modernc.org/sqlite driver
	dialector := sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        cfg.Path,
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := sqlDB.Exec(pragma); err != nil {
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if err := db.AutoMigrate(&CellPlan{}); err != nil {
		return nil, fmt.Errorf("failed to migrate cell plan schema: %w", err)
	}

	d := &DB{
		db:     db,
		logger: log,
	}

	stored, err := d.StoredPlans()
	if err != nil {
		return nil, fmt.Errorf("failed to count stored cell plans: %w", err)
	}

	log.Info("Cell plan store ready",
		logger.String("path", cfg.Path),
		logger.Int64("stored_plans", stored))

	return d, nil
}

// StoredPlans returns the number of cell plans currently persisted.
func (d *DB) StoredPlans() (int64, error) {
	var n int64
	err := d.db.Model(&CellPlan{}).Count(&n).Error
	return n, err
}

// Close closes the database connection
func (d *DB) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the underlying GORM database instance
func (d *DB) GetDB() *gorm.DB {
	return d.db
}

// gormLogAdapter adapts our logger to GORM's logger interface
type gormLogAdapter struct {
	log *logger.Logger
}

func (l *gormLogAdapter) Printf(format string, args ...interface{}) {
	l.log.Info(fmt.Sprintf(format, args...))
}
