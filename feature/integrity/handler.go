package integrity

import (
	"errors"

	"stock-sync/core/logger"
	"stock-sync/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.LedgerReport{}
	var _ = checks.RecordsReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/records", h.HandleRecordsCheck)
	group.Get("/ledger", h.HandleLedgerCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Structure, Records, Ledger).
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if missing, err := h.service.CheckStructure(ctx); err != nil {
		report["structure"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["structure"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	if recReport, err := h.service.CheckRecords(ctx); err != nil {
		report["records"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["records"] = recReport
	}

	if ledReport, err := h.service.CheckLedger(); errors.Is(err, ErrNoDatabase) {
		report["ledger"] = map[string]interface{}{"status": "disabled"}
	} else if err != nil {
		report["ledger"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["ledger"] = ledReport
	}

	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes the archive roots.
// @Summary Check Structure
// @Description Checks that the upload and record roots exist. Optionally creates missing roots.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Create missing roots"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	missing, err := h.service.CheckStructure(c.Context())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix missing folders")
			if err := h.service.FixStructure(c.Context(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleRecordsCheck checks the records root layout.
// @Summary Check Records
// @Description Lists archived records and flags keys outside the dated upload/diff layout.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.RecordsReport "Records Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/records [get]
func (h *Handler) HandleRecordsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckRecords(c.Context())
	if err != nil {
		l.Error("Records check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if len(report.Stray) > 0 {
		l.Warn("Stray records detected", zap.Strings("stray", report.Stray))
	}

	return c.JSON(report)
}

// HandleLedgerCheck checks the run ledger schema.
// @Summary Check Ledger Schema
// @Description Checks that the reconcile_runs table matches the expected model.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.LedgerReport "Ledger Check Report"
// @Failure 503 {object} map[string]string "Database not connected"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/ledger [get]
func (h *Handler) HandleLedgerCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting ledger schema check")

	report, err := h.service.CheckLedger()
	if errors.Is(err, ErrNoDatabase) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Ledger schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}
