// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/crop-advisor/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the crop catalog (import, list)",
	Long: `Catalog moves crop profiles between a YAML catalog file and a SQLite
catalog database, and lists the catalog currently in use.`,
}

// --- import subcommand ---

var catalogImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a YAML catalog into the catalog database",
	Long: `Import reads the YAML catalog given by --catalog and replaces the contents
of the database given by --db with it, preserving catalog order.`,
	RunE: runCatalogImport,
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	if cfg.Catalog.Database == "" {
		return fmt.Errorf("--db is required")
	}

	crops, err := catalog.LoadCrops(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	store, err := catalog.NewStore(cfg.Catalog.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Import(cmd.Context(), crops); err != nil {
		return err
	}
	logger.Info("catalog imported", "catalog", cfg.Catalog.Path, "database", cfg.Catalog.Database, "crops", len(crops))
	fmt.Printf("Imported %d crops into %s\n", len(crops), cfg.Catalog.Database)
	return nil
}

// --- list subcommand ---

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the crops in the catalog",
	RunE:  runCatalogList,
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	crops, err := loadCatalog(cmd.Context(), cfg.Catalog)
	if err != nil {
		return err
	}

	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		data, err := catalog.MarshalCrops(crops)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	if len(crops) == 0 {
		fmt.Println("Catalog is empty.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-24s  %8s  %8s  %8s  %6s  %10s\n",
		"#", "Name", "Temp °C", "Humid %", "Water mm", "pH", "Resistance")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 82))
	for i, c := range crops {
		fmt.Fprintf(os.Stdout, "%-4d  %-24s  %8.1f  %8.1f  %8.1f  %6.2f  %10.1f\n",
			i+1, c.Name, c.OptimalTemp, c.OptimalHumidity, c.WaterNeeds, c.OptimalPH, c.PestResistance)
	}
	fmt.Printf("\n%d crops\n", len(crops))
	return nil
}

func init() {
	catalogListCmd.Flags().Bool("yaml", false, "print the catalog as YAML")

	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}
