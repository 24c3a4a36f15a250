package cmd

import (
	"fmt"
	"strconv"

	"asset-registry/core/reconcile"
	"asset-registry/feature/scan"
	scanReconcile "asset-registry/feature/scan/reconcile"

	"github.com/spf13/cobra"
)

var scanJSON bool

// scanCmd is the parent command for reconciliation.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Compare spreadsheets with the registry",
}

// scanRunCmd runs one scan in the foreground and prints the differences.
var scanRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Scan the configured directories once",
	Long: `Finds the workbooks in the configured scan directories, compares every
qualifying sheet with the stored inventory and prints new, changed and
missing rows per file. Use --json for the full result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer e.close()

		s := scan.NewScheduler(e.cfg.Scan, scanReconcile.NewAdapter(e.store), nil, nil, e.logger)
		defer s.Stop()

		result, err := s.RunNow(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if scanJSON {
			return writeJSON(out, result)
		}
		return printScan(cmd, result)
	},
}

func printScan(cmd *cobra.Command, result *reconcile.ScanResult) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Status: %s (%d scanned, %d skipped, %d failed) in %s\n",
		result.Status, result.FilesScanned, result.FilesSkipped, len(result.FileErrors), result.Duration)

	rows := make([][]string, 0, len(result.Files))
	for _, f := range result.Files {
		rows = append(rows, []string{
			f.File,
			strconv.Itoa(f.TotalRows),
			strconv.Itoa(len(f.NewRows)),
			strconv.Itoa(len(f.ChangedRows)),
			strconv.Itoa(len(f.MissingRows)),
		})
	}
	if len(rows) > 0 {
		if err := renderTable(out, []string{"File", "Rows", "New", "Changed", "Missing"}, rows); err != nil {
			return err
		}
	}

	for _, f := range result.Files {
		for _, changed := range f.ChangedRows {
			for _, ch := range changed.Changes {
				fmt.Fprintf(out, "%s  %s: %q -> %q\n", changed.Key, ch.Column, ch.Stored, ch.Sheet)
			}
		}
	}
	for _, fe := range result.FileErrors {
		fmt.Fprintf(out, "error: %s: %s\n", fe.File, fe.Error)
	}
	return nil
}

func init() {
	scanRunCmd.Flags().BoolVar(&scanJSON, "json", false, "Print the full result as JSON")
	scanCmd.AddCommand(scanRunCmd)
	RootCmd.AddCommand(scanCmd)
}
