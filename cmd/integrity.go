package cmd

import (
	"errors"
	"fmt"
	"sort"

	"asset-registry/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on storage, database and local files",
	Long:  `Checks the storage bucket layout, the registry schema and the spreadsheet paths the registry reads from.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, false, false)
	},
}

// serverCmd represents the integrity server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Check the registry schema against the models",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, true, false)
	},
}

// filesCmd represents the integrity files command
var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Check the import source, export template and scan directories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, false, true)
	},
}

func init() {
	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing folders")
	integrityCmd.AddCommand(structureCmd, serverCmd, filesCmd)
	RootCmd.AddCommand(integrityCmd)
}

func runIntegrityChecks(cmd *cobra.Command, structure, server, files bool) error {
	ctx := cmd.Context()
	e, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer e.close()

	client, err := e.storageClient(ctx)
	if err != nil {
		e.logger.Warn("Object storage unavailable", zap.Error(err))
		client = nil
	}

	svc := integrity.NewService(client, e.cfg.Storage.Bucket, e.db, integrity.Options{
		Folders: []string{e.cfg.Backup.Prefix, e.cfg.Spreadsheet.ExportPrefix},
		Paths:   append([]string{e.cfg.Spreadsheet.Source, e.cfg.Spreadsheet.Template}, e.cfg.Scan.Directories...),
	}, e.logger)
	out := cmd.OutOrStdout()
	failed := false

	if structure {
		missing, err := svc.CheckStructure(ctx)
		switch {
		case errors.Is(err, integrity.ErrStorageDisabled):
			fmt.Fprintln(out, "Structure: storage disabled")
		case err != nil:
			return fmt.Errorf("structure check failed: %w", err)
		case len(missing) == 0:
			fmt.Fprintln(out, "Structure: ok")
		case fixFlag:
			if err := svc.FixStructure(ctx, missing); err != nil {
				return fmt.Errorf("failed to fix structure: %w", err)
			}
			fmt.Fprintf(out, "Structure: created %v\n", missing)
		default:
			fmt.Fprintf(out, "Structure: missing %v (run with --fix)\n", missing)
			failed = true
		}
	}

	if server {
		report, err := svc.CheckServer()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		rows := [][]string{}
		for table, diff := range report.Tables {
			rows = append(rows, []string{table, fmt.Sprint(diff.Exists), fmt.Sprint(diff.Missing), fmt.Sprint(diff.Extra)})
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })
		fmt.Fprintf(out, "Schema (%s): matched=%v\n", report.Driver, report.Matched)
		if err := renderTable(out, []string{"Table", "Exists", "Missing", "Extra"}, rows); err != nil {
			return err
		}
		for _, msg := range report.Errors {
			fmt.Fprintln(out, msg)
		}
		failed = failed || !report.Matched
	}

	if files {
		report := svc.CheckFiles()
		for _, p := range report.Present {
			fmt.Fprintf(out, "Files: found %s\n", p)
		}
		for _, p := range report.Missing {
			fmt.Fprintf(out, "Files: missing %s\n", p)
		}
		failed = failed || len(report.Missing) > 0
	}

	if failed {
		return errors.New("integrity checks reported problems")
	}
	return nil
}
