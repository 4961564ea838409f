package checks

import (
	"context"

	"stock-sync/core/archive"

	"go.uber.org/zap"
)

// CheckStructure returns the roots of the stores that do not exist yet.
func CheckStructure(ctx context.Context, stores []archive.Store) ([]string, error) {
	missing := []string{}
	for _, s := range stores {
		exists, err := s.Exists(ctx)
		if err != nil {
			return nil, err
		}
		if !exists {
			missing = append(missing, s.Root())
		}
	}
	return missing, nil
}

// FixStructure creates the missing store roots.
func FixStructure(ctx context.Context, stores []archive.Store, logger *zap.Logger, missing []string) error {
	want := make(map[string]struct{}, len(missing))
	for _, m := range missing {
		want[m] = struct{}{}
	}

	for _, s := range stores {
		if _, ok := want[s.Root()]; !ok {
			continue
		}
		if err := s.Ensure(ctx); err != nil {
			logger.Error("Failed to create folder", zap.String("folder", s.Root()), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", s.Root()))
	}
	return nil
}
