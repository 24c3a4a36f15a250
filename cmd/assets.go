package cmd

import (
	"fmt"

	"asset-registry/core/utils"
	"asset-registry/feature/registry/models"

	"github.com/spf13/cobra"
)

var assetValues map[string]string

// assetsCmd is the parent command for asset definitions.
var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Manage asset definitions",
}

var assetsListCmd = &cobra.Command{
	Use:   "list [partial]",
	Short: "List asset definitions, or search by partial name",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer e.close()

		var defs []models.AssetDefinition
		if len(args) == 1 {
			defs, err = e.store.SearchAssets(ctx, args[0])
		} else {
			defs, err = e.store.GetAllAssets(ctx)
		}
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(defs))
		for _, d := range defs {
			rows = append(rows, []string{d.NamaAset, d.Brand, d.JenisAset, d.SubKlasifikasi, d.Layanan})
		}
		return renderTable(cmd.OutOrStdout(), []string{"Nama Aset", "Brand", "Jenis Aset", "Sub Klasifikasi", "Layanan"}, rows)
	},
}

var assetsAddCmd = &cobra.Command{
	Use:     "add <nama_aset>",
	Short:   "Add an asset definition",
	Long:    `Adds a catalog entry. Attributes are given as --set key=value using the storage column names.`,
	Example: `  assets add "Laptop Dell" --set brand=Dell,jenis_aset=Hardware,os=Windows`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer e.close()

		rec := &models.InventoryRecord{NamaAset: utils.Clean(args[0])}
		for k, v := range assetValues {
			f, ok := models.FieldByKey(k)
			if !ok {
				return fmt.Errorf("unknown field %q", k)
			}
			if err := f.Set(rec, v); err != nil {
				return fmt.Errorf("field %s: %w", k, err)
			}
		}

		def := models.DefinitionFrom(rec)
		if err := e.store.InsertAsset(ctx, &def); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created asset %s\n", def.NamaAset)
		return nil
	},
}

func init() {
	assetsAddCmd.Flags().StringToStringVar(&assetValues, "set", nil, "Attribute values as key=value")
	assetsCmd.AddCommand(assetsListCmd, assetsAddCmd)
	RootCmd.AddCommand(assetsCmd)
}
