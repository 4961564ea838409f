package inventory

import (
	"fmt"
	"io"
	"mime/multipart"

	"stock-sync/core/logger"
	"stock-sync/core/middleware/rayid"
	"stock-sync/core/sheet"
	"stock-sync/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for inventory reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = models.ReconcileRun{}
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleForm)
	app.Post("/", h.HandleReconcile)
	app.Get("/vendors", h.HandleVendors)
	app.Get("/runs", h.HandleRuns)
}

// HandleForm renders the upload form.
// @Summary Upload Form
// @Description HTML form for uploading the official and vendor spreadsheets.
// @Tags inventory
// @Produce html
// @Success 200 {string} string "HTML form"
// @Router / [get]
func (h *Handler) HandleForm(c *fiber.Ctx) error {
	page, err := renderForm(c.Query("api_key"))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to render form", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(page)
}

// HandleReconcile reconciles an official spreadsheet against a vendor feed.
// @Summary Reconcile Inventory
// @Description Updates Inventory and Track Inventory of the selected vendor's pre-order rows from the vendor feed and returns the vendor's updated rows.
// @Tags inventory
// @Accept multipart/form-data
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param file1 formData file true "Official store spreadsheet"
// @Param file2 formData file true "Vendor stock spreadsheet"
// @Param vendor_selection formData string true "Vendor (Light in the Attic, Light, Juno)"
// @Success 200 {file} binary "updated_official_<vendor>_only.xlsx"
// @Failure 400 {string} string "Missing upload, unsupported vendor or schema mismatch"
// @Failure 500 {string} string "Internal Server Error"
// @Router / [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	official, err := formUpload(c, "file1")
	if err != nil {
		l.Error("Failed to read upload", zap.String("field", "file1"), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}
	feed, err := formUpload(c, "file2")
	if err != nil {
		l.Error("Failed to read upload", zap.String("field", "file2"), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	out, err := h.service.Process(c.UserContext(), Request{
		Vendor:   c.FormValue("vendor_selection"),
		Official: official,
		Feed:     feed,
		RayID:    rayid.FromContext(c),
	})
	if err != nil {
		if IsClientError(err) {
			l.Warn("Rejected reconcile request", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).SendString(err.Error())
		}
		l.Error("Reconciliation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error: reconciliation failed")
	}

	c.Attachment(out.Filename)
	c.Set(fiber.HeaderContentType, sheet.ContentType)
	c.Set("X-Run-ID", out.RunID)
	c.Set("X-Diff-Records", fmt.Sprint(len(out.Result.Diff)))
	return c.Send(out.Updated)
}

// HandleVendors lists the supported vendors.
// @Summary List Vendors
// @Description Lists supported vendors with their aliases and feed layout.
// @Tags inventory
// @Produce json
// @Success 200 {array} Vendor "Vendors"
// @Router /vendors [get]
func (h *Handler) HandleVendors(c *fiber.Ctx) error {
	return c.JSON(Vendors)
}

// HandleRuns lists recent runs from the ledger.
// @Summary List Runs
// @Description Lists recent reconciliation runs, newest first.
// @Tags inventory
// @Produce json
// @Param limit query int false "Maximum runs (default 20, max 200)"
// @Success 200 {array} models.ReconcileRun "Runs"
// @Failure 503 {object} map[string]string "Ledger disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /runs [get]
func (h *Handler) HandleRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	ledger := h.service.Ledger()
	if !ledger.Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": ErrLedgerDisabled.Error()})
	}

	runs, err := ledger.Recent(c.UserContext(), c.QueryInt("limit", DefaultRunLimit))
	if err != nil {
		l.Error("Failed to list runs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(runs)
}

// formUpload reads a multipart file field. An absent field yields nil.
func formUpload(c *fiber.Ctx, field string) (*Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil || fh.Filename == "" {
		return nil, nil
	}
	return readUpload(fh)
}

func readUpload(fh *multipart.FileHeader) (*Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &Upload{Filename: fh.Filename, Data: data}, nil
}
