package integrity

import (
	"context"
	"errors"

	"stock-sync/core/archive"
	"stock-sync/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoDatabase is returned by CheckLedger when no database is connected.
var ErrNoDatabase = errors.New("database not connected")

// Service handles integrity checks.
type Service struct {
	archive *archive.Archive
	db      *gorm.DB
	logger  *zap.Logger
}

// NewService creates a new integrity service. db may be nil.
func NewService(arc *archive.Archive, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		archive: arc,
		db:      db,
		logger:  logger,
	}
}

// CheckStructure returns the archive roots that do not exist.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.archive.Stores())
}

// FixStructure creates the missing archive roots.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.archive.Stores(), s.logger, missing)
}

// CheckRecords reports record keys outside the dated layout.
func (s *Service) CheckRecords(ctx context.Context) (*checks.RecordsReport, error) {
	return checks.CheckRecords(ctx, s.archive.Records)
}

// CheckLedger compares the run ledger table with its model.
func (s *Service) CheckLedger() (*checks.LedgerReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	return checks.CheckLedgerIntegrity(s.db)
}
