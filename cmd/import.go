package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// importCmd ingests a workbook into the registry.
var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a spreadsheet into the registry",
	Long: `Reads the workbook (default: the configured spreadsheet source) and inserts
asset definitions and inventory records that are not stored yet. Rows that fail
validation are reported and skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer e.close()

		file := ""
		if len(args) == 1 {
			file = args[0]
		}

		stats, err := e.registryService(ctx).Import(ctx, file)
		if err != nil {
			return err
		}

		for _, msg := range stats.Errors {
			e.logger.Warn("Row skipped", zap.String("reason", msg))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Assets added: %d\nInventory added: %d\nErrors: %d\n",
			stats.AssetsAdded, stats.InventoryAdded, len(stats.Errors))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(importCmd)
}
