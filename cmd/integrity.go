package cmd

import (
	"context"
	"errors"

	"stock-sync/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the archive and ledger",
	Long:  `Checks that the archive roots exist, that records follow the dated layout and that the ledger schema matches.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(context.Background(), true, true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the archive roots",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(context.Background(), true, false, false)
	},
}

// recordsCmd represents the integrity records command
var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Check the layout of archived records",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(context.Background(), false, true, false)
	},
}

// ledgerCmd represents the integrity ledger command
var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Check the run ledger schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(context.Background(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, recordsCmd, ledgerCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing roots")
}

func runIntegrityChecks(ctx context.Context, runStructure, runRecords, runLedger bool) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	logg := a.logger
	defer logg.Sync()

	svc := integrity.NewService(a.archive, a.db, logg)

	if runStructure {
		logg.Info("Checking archive structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return err
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))

			if fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					return err
				}
				logg.Info("Structure fixed successfully.")
			} else {
				logg.Info("Run with --fix to create missing folders.")
			}
		}
	}

	if runRecords {
		logg.Info("Checking archived records...")
		report, err := svc.CheckRecords(ctx)
		if err != nil {
			return err
		}
		logg.Info("Records checked",
			zap.Int("total", report.Total),
			zap.Int("uploads", report.Uploads),
			zap.Int("diffs", report.Diffs))
		if len(report.Stray) > 0 {
			logg.Warn("Stray records detected", zap.Strings("stray", report.Stray))
		}
	}

	if runLedger {
		logg.Info("Checking ledger schema...")
		report, err := svc.CheckLedger()
		switch {
		case errors.Is(err, integrity.ErrNoDatabase):
			logg.Info("Ledger database not connected, skipping.")
		case err != nil:
			return err
		case report.Matched:
			logg.Info("Ledger schema matches expected definition.", zap.String("table", report.Table))
		default:
			logg.Warn("Ledger schema mismatches found", zap.String("table", report.Table))
			if len(report.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.Strings("columns", report.MissingColumns))
			}
			if len(report.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.Strings("mismatches", report.TypeMismatches))
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	return nil
}
