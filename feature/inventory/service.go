package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stock-sync/core/archive"
	"stock-sync/core/reconcile"
	"stock-sync/core/sheet"
	"stock-sync/feature/inventory/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Upload is one uploaded spreadsheet.
type Upload struct {
	Filename string
	Data     []byte
}

// Request is one reconciliation request.
type Request struct {
	// Vendor is the raw vendor selector.
	Vendor string
	// Official is the store inventory spreadsheet (form field file1).
	Official *Upload
	// Feed is the vendor stock spreadsheet (form field file2).
	Feed *Upload
	// RayID correlates logs and the ledger entry with the HTTP request.
	RayID string
}

// Outcome is the result of a successful request.
type Outcome struct {
	RunID    string
	Policy   reconcile.Policy
	Result   *reconcile.Result
	Filename string
	// Updated is the encoded vendor table, identical to the archived upload record.
	Updated []byte
	// Diff is the encoded diff report.
	Diff []byte
	// Artifacts lists everything persisted for the request.
	Artifacts []archive.Handle
}

// Service runs the reconciliation pipeline and its side effects.
type Service struct {
	archive *archive.Archive
	sweeper *archive.Sweeper
	ledger  *Ledger
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string
}

// NewService creates the inventory service. arc, sweeper and ledger are
// optional; a nil archive disables persistence.
func NewService(arc *archive.Archive, sweeper *archive.Sweeper, ledger *Ledger, logger *zap.Logger) *Service {
	return &Service{
		archive: arc,
		sweeper: sweeper,
		ledger:  ledger,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Ledger returns the run ledger.
func (s *Service) Ledger() *Ledger {
	return s.ledger
}

// Process validates the request, persists the uploads, reconciles, exports
// and records the run. Request errors (missing uploads, unknown vendor) are
// detected before anything is written.
func (s *Service) Process(ctx context.Context, req Request) (*Outcome, error) {
	l := s.logger
	if req.RayID != "" {
		l = l.With(zap.String("ray_id", req.RayID))
	}

	var missing []string
	if req.Official == nil || req.Official.Filename == "" {
		missing = append(missing, "file1")
	}
	if req.Feed == nil || req.Feed.Filename == "" {
		missing = append(missing, "file2")
	}
	if len(missing) > 0 {
		return nil, &MissingUploadError{Fields: missing}
	}

	policy, err := ResolveVendor(req.Vendor)
	if err != nil {
		return nil, err
	}
	l = l.With(zap.String("vendor", policy.Vendor))

	out := &Outcome{
		RunID:    s.newID(),
		Policy:   policy,
		Filename: OutputFilename(policy),
	}

	if s.archive != nil {
		for _, up := range []*Upload{req.Official, req.Feed} {
			h, err := s.archive.Uploads.Save(ctx, archive.UploadKey(up.Filename), up.Data)
			if err != nil {
				return nil, fmt.Errorf("failed to persist upload: %w", err)
			}
			out.Artifacts = append(out.Artifacts, h)
		}
	}

	official, err := sheet.ReadBytes(req.Official.Data, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to read official spreadsheet: %w", err)
	}
	feed, err := sheet.ReadBytes(req.Feed.Data, policy.FeedHeaderRow)
	if err != nil {
		return nil, fmt.Errorf("failed to read vendor spreadsheet: %w", err)
	}

	result, err := reconcile.Run(official, feed, policy)
	if err != nil {
		return nil, err
	}
	out.Result = result

	st := result.Stats
	l.Info("Reconciliation completed",
		zap.Int("official_rows", st.OfficialRows),
		zap.Int("feed_entries", st.FeedEntries),
		zap.Int("vendor_rows", st.VendorRows),
		zap.Int("eligible", st.Eligible),
		zap.Int("updated", st.Updated),
		zap.Int("not_in_feed", st.NotInFeed),
		zap.Int("readmitted", st.Readmitted),
		zap.Int("duplicates", st.Duplicates),
		zap.Int("output_rows", st.OutputRows),
		zap.Int("diff_records", st.DiffRecords),
	)

	if out.Updated, err = sheet.Encode(result.After); err != nil {
		return nil, fmt.Errorf("failed to export updated table: %w", err)
	}
	if out.Diff, err = sheet.Encode(reconcile.DiffTable(result.Diff)); err != nil {
		return nil, fmt.Errorf("failed to export diff: %w", err)
	}

	run := &models.ReconcileRun{
		ID:           out.RunID,
		RayID:        req.RayID,
		Vendor:       policy.Vendor,
		OfficialFile: req.Official.Filename,
		FeedFile:     req.Feed.Filename,
		OfficialRows: st.OfficialRows,
		FeedEntries:  st.FeedEntries,
		VendorRows:   st.VendorRows,
		Eligible:     st.Eligible,
		Updated:      st.Updated,
		Readmitted:   st.Readmitted,
		Duplicates:   st.Duplicates,
		OutputRows:   st.OutputRows,
		DiffRecords:  st.DiffRecords,
		CreatedAt:    s.now(),
	}

	if s.archive != nil {
		uploadKey, diffKey := archive.RecordKeys(run.CreatedAt, suffix(out.RunID))
		h, err := s.archive.Records.Save(ctx, uploadKey, out.Updated)
		if err != nil {
			return nil, fmt.Errorf("failed to persist upload record: %w", err)
		}
		out.Artifacts = append(out.Artifacts, h)
		h, err = s.archive.Records.Save(ctx, diffKey, out.Diff)
		if err != nil {
			return nil, fmt.Errorf("failed to persist diff record: %w", err)
		}
		out.Artifacts = append(out.Artifacts, h)
		run.UploadKey, run.DiffKey = uploadKey, diffKey
	}

	if s.ledger.Enabled() {
		if err := s.ledger.Record(ctx, run); err != nil {
			l.Warn("Failed to record run", zap.Error(err))
		}
	}

	if s.sweeper != nil {
		if _, err := s.sweeper.Sweep(ctx); err != nil && !errors.Is(err, context.Canceled) {
			l.Warn("Retention sweep failed", zap.Error(err))
		}
	}

	return out, nil
}

// suffix is the first 8 hex characters of a uuid.
func suffix(id string) string {
	if len(id) < 8 {
		return id
	}
	return id[:8]
}
