package cmd

import (
	"fmt"
	"strings"

	"asset-registry/feature/backup"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// backupCmd is the parent command for database backups.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up the registry database",
}

var backupRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Write a backup now and apply retention",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer e.close()

		client, err := e.storageClient(ctx)
		if err != nil {
			e.logger.Warn("Object storage unavailable, keeping local copy only", zap.Error(err))
			client = nil
		}

		result, err := backup.NewService(e.db, e.cfg.Backup, client, e.cfg.Storage.Bucket, e.logger).Run(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Backup written: %s (%d bytes)\n", result.File, result.Size)
		if result.Uploaded {
			fmt.Fprintf(out, "Uploaded: %s\n", result.Key)
		}
		if len(result.Pruned) > 0 {
			fmt.Fprintf(out, "Pruned: %s\n", strings.Join(result.Pruned, ", "))
		}
		return nil
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List local backups, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer e.close()

		entries, err := backup.NewService(e.db, e.cfg.Backup, nil, "", e.logger).List()
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(entries))
		for _, en := range entries {
			rows = append(rows, []string{en.File, fmt.Sprint(en.Size), en.Modified.Format("2006-01-02 15:04:05")})
		}
		return renderTable(cmd.OutOrStdout(), []string{"File", "Size", "Modified"}, rows)
	},
}

func init() {
	backupCmd.AddCommand(backupRunCmd, backupListCmd)
	RootCmd.AddCommand(backupCmd)
}
