package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"stock-sync/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	vendorFlag   string
	officialFlag string
	feedFlag     string
	outFlag      string
	persistFlag  bool
)

// reconcileCmd runs one reconciliation from local files.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile an official spreadsheet against a vendor feed",
	Long: `Reconciles the official store spreadsheet against a vendor stock feed and
writes the updated vendor rows and the diff report to the output directory.

Examples:
  # Juno feed, results in the current directory
  reconcile --vendor juno --official official.xlsx --feed juno.xlsx

  # Archive uploads and records and record the run like the server does
  reconcile --vendor "Light in the Attic" --official official.xlsx --feed lita.xlsx --persist`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&vendorFlag, "vendor", "", "Vendor name, slug or alias")
	reconcileCmd.Flags().StringVar(&officialFlag, "official", "", "Official store spreadsheet (.xlsx)")
	reconcileCmd.Flags().StringVar(&feedFlag, "feed", "", "Vendor stock spreadsheet (.xlsx)")
	reconcileCmd.Flags().StringVar(&outFlag, "out", ".", "Directory for the updated table and diff report")
	reconcileCmd.Flags().BoolVar(&persistFlag, "persist", false, "Archive uploads and records, record the run and sweep")
	_ = reconcileCmd.MarkFlagRequired("vendor")
	_ = reconcileCmd.MarkFlagRequired("official")
	_ = reconcileCmd.MarkFlagRequired("feed")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	official, err := readUpload(officialFlag)
	if err != nil {
		return err
	}
	feed, err := readUpload(feedFlag)
	if err != nil {
		return err
	}

	var svc *inventory.Service
	if persistFlag {
		ledger := inventory.NewLedger(a.db)
		if ledger.Enabled() {
			if err := ledger.Migrate(); err != nil {
				return err
			}
		}
		svc = inventory.NewService(a.archive, a.sweeper(), ledger, a.logger)
	} else {
		svc = inventory.NewService(nil, nil, nil, a.logger)
	}

	out, err := svc.Process(ctx, inventory.Request{
		Vendor:   vendorFlag,
		Official: official,
		Feed:     feed,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outFlag, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	updatedPath := filepath.Join(outFlag, out.Filename)
	if err := os.WriteFile(updatedPath, out.Updated, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", updatedPath, err)
	}
	diffPath := filepath.Join(outFlag, inventory.DiffFilename(out.Policy))
	if err := os.WriteFile(diffPath, out.Diff, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", diffPath, err)
	}

	a.logger.Info("Reconciliation written",
		zap.String("run_id", out.RunID),
		zap.String("vendor", out.Policy.Vendor),
		zap.String("updated", updatedPath),
		zap.String("diff", diffPath),
		zap.Int("rows", out.Result.Stats.OutputRows),
		zap.Int("diff_records", out.Result.Stats.DiffRecords),
		zap.Int("archived", len(out.Artifacts)),
	)
	return nil
}

func readUpload(path string) (*inventory.Upload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return &inventory.Upload{Filename: filepath.Base(path), Data: data}, nil
}
