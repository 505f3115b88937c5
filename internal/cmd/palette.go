package cmd

import (
	"fmt"

	"github.com/MeKo-Tech/iriscolor/internal/palette"
	"github.com/MeKo-Tech/iriscolor/internal/palettedb"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Inspect and export the reference palette",
}

var paletteShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List the reference palette colors",
	RunE:  runPaletteShow,
}

var paletteExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the built-in palette to a database file",
	Long: `Export writes the built-in reference palette to a SQLite database
that can later be loaded with --palette, typically as a starting point
for a customized palette.`,
	RunE: runPaletteExport,
}

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.AddCommand(paletteShowCmd)
	paletteCmd.AddCommand(paletteExportCmd)

	paletteExportCmd.Flags().StringP("output", "o", "palette.db", "Output database path")

	if err := viper.BindPFlag("palette.output", paletteExportCmd.Flags().Lookup("output")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func runPaletteShow(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	table, err := loadReferenceTable()
	if err != nil {
		return err
	}

	for _, e := range table.Entries() {
		fmt.Printf("#%s  %s\n", e.Hex, palette.DisplayName(e.Name))
	}
	fmt.Printf("%d colors\n", table.Len())
	return nil
}

func runPaletteExport(cmd *cobra.Command, args []string) error {
	output := viper.GetString("palette.output")

	if logger == nil {
		initLogging()
	}

	table := palette.Default()
	metadata := palettedb.Metadata{
		Name:        "iriscolor reference palette",
		Description: "Named reference colors for iris shade matching",
		Version:     "1.0",
	}

	if err := palettedb.Write(output, metadata, table.Entries()); err != nil {
		return fmt.Errorf("failed to export palette: %w", err)
	}

	logger.Info("Palette exported", "path", output, "colors", table.Len())
	return nil
}
