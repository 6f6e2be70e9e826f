// Package migration applies embedded SQL migrations with goose.
package migration

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"helpdesk/internal/shared/logger"
)

//go:embed scripts/*.sql
var scriptsFS embed.FS

const scriptsDir = "scripts"

// Runner executes goose migrations against the gorm connection.
type Runner struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewRunner(db *gorm.DB, log logger.Interface) *Runner {
	return &Runner{db: db, logger: log}
}

// Up applies all pending migrations.
func (r *Runner) Up() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(scriptsFS)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	before, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if err := goose.Up(sqlDB, scriptsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	after, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	r.logger.Infow("migrations applied", "from_version", before, "to_version", after)
	return nil
}

// Down rolls back the most recent migration.
func (r *Runner) Down() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(scriptsFS)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Down(sqlDB, scriptsDir); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	r.logger.Infow("migration rolled back", "version", version)
	return nil
}

// Status prints the state of every known migration.
func (r *Runner) Status() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(scriptsFS)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.Status(sqlDB, scriptsDir)
}
