package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var pruneDays int

// pruneCmd runs one retention sweep over the archive.
var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete archived uploads and records past retention",
	Long:  `Removes archived uploads and records older than the retention period (ARCHIVE_RETENTION_DAYS unless --days is set).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		sweeper := a.sweeper()
		if pruneDays > 0 {
			sweeper = sweeper.WithRetention(time.Duration(pruneDays) * 24 * time.Hour)
		}

		report, err := sweeper.Sweep(context.Background())
		if report != nil {
			for root, keys := range report.Removed {
				a.logger.Info("Pruned artifacts", zap.String("root", root), zap.Strings("keys", keys))
			}
			a.logger.Info("Retention sweep finished",
				zap.Time("cutoff", report.Cutoff),
				zap.Int("removed", report.Total()))
		}
		return err
	},
}

func init() {
	pruneCmd.Flags().IntVar(&pruneDays, "days", 0, "Retention in days (overrides configuration)")
	RootCmd.AddCommand(pruneCmd)
}
