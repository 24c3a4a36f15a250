package cmd

import (
	"fmt"
	"os"
	"sort"

	"asset-registry/feature/registry"
	"asset-registry/feature/registry/models"

	"github.com/spf13/cobra"
)

var (
	inventoryValues   map[string]string
	inventoryQuantity int
	inventoryOutput   string
	inventoryUpload   bool
)

// inventoryCmd is the parent command for inventory records.
var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Manage inventory records",
}

var inventoryListCmd = &cobra.Command{
	Use:   "list [search]",
	Short: "List inventory records, optionally filtered",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer e.close()

		search := ""
		if len(args) == 1 {
			search = args[0]
		}
		records, err := e.store.GetAllInventory(ctx, search)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(records))
		for _, r := range records {
			rows = append(rows, []string{r.Kode, r.NamaAset, r.SerialNumber, r.User, r.LokasiAset, r.Status})
		}
		if err := renderTable(cmd.OutOrStdout(), []string{"Kode", "Nama Aset", "Serial Number", "User", "Lokasi", "Status"}, rows); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d records\n", len(records))
		return nil
	},
}

var inventoryAddCmd = &cobra.Command{
	Use:   "add <kode> <nama_aset>",
	Short: "Add one item, or a sequence of items with --quantity",
	Long: `Adds an inventory record. Field values are given as --set key=value using
the storage column names (e.g. --set serial_number=SN-001,user=budi).

With --quantity greater than one, codes and serials are generated from the
given ones and unset fields are filled from the newest record of the asset,
then from its definition.`,
	Example: `  inventory add A001 Laptop --set serial_number=SN-001
  inventory add A010 Laptop --quantity 5 --set serial_number=SN-010,lokasi_aset=Jakarta`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer e.close()
		svc := e.registryService(ctx)
		out := cmd.OutOrStdout()

		if inventoryQuantity > 1 {
			values := make(map[string]string, len(inventoryValues))
			for k, v := range inventoryValues {
				values[k] = v
			}
			serial := values["serial_number"]
			delete(values, "serial_number")

			result, err := svc.BulkCreate(ctx, registry.BulkRequest{
				AssetName:  args[1],
				BaseCode:   args[0],
				BaseSerial: serial,
				Quantity:   inventoryQuantity,
				Values:     values,
			})
			if err != nil {
				return err
			}
			for _, w := range result.Warnings {
				fmt.Fprintf(out, "warning: %s\n", w)
			}
			fmt.Fprintf(out, "Created %d records: %v\n", len(result.Codes), result.Codes)
			return nil
		}

		rec := &models.InventoryRecord{Kode: args[0], NamaAset: args[1]}
		keys := make([]string, 0, len(inventoryValues))
		for k := range inventoryValues {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			f, ok := models.FieldByKey(k)
			if !ok {
				return fmt.Errorf("unknown field %q", k)
			}
			if err := f.Set(rec, inventoryValues[k]); err != nil {
				return fmt.Errorf("field %s: %w", k, err)
			}
		}
		if err := svc.CreateInventory(ctx, rec); err != nil {
			return err
		}
		fmt.Fprintf(out, "Created %s\n", rec.Kode)
		return nil
	},
}

var inventoryDeleteCmd = &cobra.Command{
	Use:   "delete <kode>",
	Short: "Delete an inventory record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer e.close()

		removed, err := e.store.DeleteInventory(ctx, args[0])
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("inventory '%s' not found", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
		return nil
	},
}

var inventoryExportCmd = &cobra.Command{
	Use:   "export [search]",
	Short: "Export inventory records to a workbook",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer e.close()
		svc := e.registryService(ctx)

		search := ""
		if len(args) == 1 {
			search = args[0]
		}

		if inventoryUpload {
			key, err := svc.ExportToStorage(ctx, search)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s\n", key)
			return nil
		}

		f, err := os.Create(inventoryOutput)
		if err != nil {
			return err
		}
		n, err := svc.Export(ctx, f, search)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s\n", n, inventoryOutput)
		return nil
	},
}

func init() {
	inventoryAddCmd.Flags().StringToStringVar(&inventoryValues, "set", nil, "Field values as key=value")
	inventoryAddCmd.Flags().IntVar(&inventoryQuantity, "quantity", 1, "Number of sequential items to create")
	inventoryExportCmd.Flags().StringVarP(&inventoryOutput, "output", "o", "inventory_export.xlsx", "Output file")
	inventoryExportCmd.Flags().BoolVar(&inventoryUpload, "upload", false, "Upload to object storage instead of writing a file")

	inventoryCmd.AddCommand(inventoryListCmd, inventoryAddCmd, inventoryDeleteCmd, inventoryExportCmd)
	RootCmd.AddCommand(inventoryCmd)
}
