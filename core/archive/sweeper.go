package archive

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// SweepReport lists what a sweep removed, keyed by store root.
type SweepReport struct {
	Cutoff  time.Time           `json:"cutoff"`
	Removed map[string][]string `json:"removed"`
}

// Total returns the number of removed artifacts.
func (r *SweepReport) Total() int {
	n := 0
	for _, keys := range r.Removed {
		n += len(keys)
	}
	return n
}

// Sweeper applies the retention policy to a set of stores.
type Sweeper struct {
	stores    []Store
	retention time.Duration
	logger    *zap.Logger
	sf        singleflight.Group
	now       func() time.Time
}

// NewSweeper creates a sweeper removing artifacts older than retention.
func NewSweeper(retention time.Duration, logger *zap.Logger, stores ...Store) *Sweeper {
	return &Sweeper{
		stores:    stores,
		retention: retention,
		logger:    logger,
		now:       time.Now,
	}
}

// Retention returns the configured retention age.
func (s *Sweeper) Retention() time.Duration {
	return s.retention
}

// WithRetention returns a sweeper over the same stores with another age.
func (s *Sweeper) WithRetention(retention time.Duration) *Sweeper {
	out := NewSweeper(retention, s.logger, s.stores...)
	out.now = s.now
	return out
}

// Sweep prunes every store. Concurrent callers share one sweep. A failing
// store does not stop the others; their errors are joined.
func (s *Sweeper) Sweep(ctx context.Context) (*SweepReport, error) {
	v, err, _ := s.sf.Do("sweep", func() (any, error) {
		return s.sweep(ctx)
	})
	report, _ := v.(*SweepReport)
	return report, err
}

func (s *Sweeper) sweep(ctx context.Context) (*SweepReport, error) {
	report := &SweepReport{
		Cutoff:  s.now().Add(-s.retention),
		Removed: make(map[string][]string),
	}

	var errs []error
	for _, store := range s.stores {
		removed, err := store.Prune(ctx, report.Cutoff)
		if len(removed) > 0 {
			report.Removed[store.Root()] = removed
		}
		if err != nil {
			s.logger.Warn("Retention sweep failed", zap.String("root", store.Root()), zap.Error(err))
			errs = append(errs, err)
		}
	}

	if n := report.Total(); n > 0 {
		s.logger.Info("Retention sweep removed artifacts",
			zap.Int("removed", n),
			zap.Time("cutoff", report.Cutoff))
	}
	return report, errors.Join(errs...)
}

// Run sweeps every interval until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = s.Sweep(ctx)
		}
	}
}
