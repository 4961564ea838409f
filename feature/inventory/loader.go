package inventory

import (
	"stock-sync/core/archive"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the inventory feature. db may be nil, which disables
// the run ledger.
func NewFeature(arc *archive.Archive, sweeper *archive.Sweeper, logger *zap.Logger, db *gorm.DB) *Feature {
	svc := NewService(arc, sweeper, NewLedger(db), logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "inventory"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load migrates the ledger when a database is connected and registers the routes.
func (f *Feature) Load(app fiber.Router) error {
	if ledger := f.service.Ledger(); ledger.Enabled() {
		if err := ledger.Migrate(); err != nil {
			return err
		}
	}
	f.handler.RegisterRoutes(app)
	return nil
}
