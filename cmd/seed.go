package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/factories"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a synthetic raw price extract",
	Long: `seed writes a deterministic, deliberately garbled raw extract CSV so the
pipeline can be exercised end to end without a real OCR run. The same seed
always produces the same extract.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		logger := newLogger()
		defer logger.Sync()

		rows := factories.NewExtractFactory(cfg.SeedSeed).Rows(cfg.SeedRows)

		if err := os.MkdirAll(filepath.Dir(cfg.RawFile), os.ModePerm); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		file, err := os.Create(cfg.RawFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating raw extract: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()

		w := csv.NewWriter(file)
		if err := w.Write([]string{"day", "category", "item_name", "specification", "price"}); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing raw extract: %v\n", err)
			os.Exit(1)
		}
		for _, row := range rows {
			record := []string{row.DayLabel, row.Category, row.ItemName, row.Specification, row.Price}
			if err := w.Write(record); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing raw extract: %v\n", err)
				os.Exit(1)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing raw extract: %v\n", err)
			os.Exit(1)
		}

		logger.Info("seed complete",
			zap.Int("rows", len(rows)),
			zap.Int64("seed", cfg.SeedSeed),
			zap.String("file", cfg.RawFile))
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().Int("seed-rows", 150, "Number of extract rows to generate")
	seedCmd.Flags().Int64("seed-seed", 42, "Random seed")
	seedCmd.Flags().String("raw-file", "data/raw/raw_prices.csv", "Output path for the synthetic extract")
}
