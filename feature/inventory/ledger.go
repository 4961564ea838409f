package inventory

import (
	"context"
	"errors"
	"fmt"

	"stock-sync/feature/inventory/models"

	"gorm.io/gorm"
)

// ErrLedgerDisabled is returned when no database is connected.
var ErrLedgerDisabled = errors.New("run ledger is disabled: no database connected")

// Run listing bounds for Recent.
const (
	DefaultRunLimit = 20
	MaxRunLimit     = 200
)

// Ledger records reconciliation runs in the optional database.
type Ledger struct {
	db *gorm.DB
}

// NewLedger wraps db. A nil db yields a disabled ledger.
func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// Enabled reports whether a database is connected.
func (l *Ledger) Enabled() bool {
	return l != nil && l.db != nil
}

// Migrate creates or updates the reconcile_runs table.
func (l *Ledger) Migrate() error {
	if !l.Enabled() {
		return ErrLedgerDisabled
	}
	if err := l.db.AutoMigrate(&models.ReconcileRun{}); err != nil {
		return fmt.Errorf("failed to migrate run ledger: %w", err)
	}
	return nil
}

// Record inserts run.
func (l *Ledger) Record(ctx context.Context, run *models.ReconcileRun) error {
	if !l.Enabled() {
		return ErrLedgerDisabled
	}
	if err := l.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to record run %s: %w", run.ID, err)
	}
	return nil
}

// Recent returns up to limit runs, newest first. limit is clamped to
// [1, MaxRunLimit]; a non-positive limit means DefaultRunLimit.
func (l *Ledger) Recent(ctx context.Context, limit int) ([]models.ReconcileRun, error) {
	if !l.Enabled() {
		return nil, ErrLedgerDisabled
	}
	if limit <= 0 {
		limit = DefaultRunLimit
	}
	if limit > MaxRunLimit {
		limit = MaxRunLimit
	}

	var runs []models.ReconcileRun
	err := l.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// DB exposes the underlying connection for schema inspection.
func (l *Ledger) DB() *gorm.DB {
	if l == nil {
		return nil
	}
	return l.db
}
