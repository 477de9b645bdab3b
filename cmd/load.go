package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/models"
	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/repositories/postgres"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the cleaned price table into the star-schema warehouse",
	Long: `load upserts the cleaned price table into postgres: one dim_item row per
item, one dim_date row per market day (with its ISO week number), and one
fact_prices row per (item, date). Re-running a load replaces prices instead
of duplicating them.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		logger := newLogger()
		defer logger.Sync()

		rows, err := models.ReadCleanedRecords(cfg.CleanedFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading cleaned prices: %v\n", err)
			os.Exit(1)
		}

		ctx := context.Background()
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to warehouse: %v\n", err)
			os.Exit(1)
		}
		warehouse := postgres.NewWarehouse(pool)
		defer warehouse.Close()

		if err := warehouse.EnsureSchema(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error preparing warehouse schema: %v\n", err)
			os.Exit(1)
		}
		if err := warehouse.LoadCleaned(ctx, rows); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading warehouse: %v\n", err)
			os.Exit(1)
		}

		items, _ := warehouse.Items.Count(ctx)
		dates, _ := warehouse.Dates.Count(ctx)
		facts, _ := warehouse.Prices.Count(ctx)
		logger.Info("load complete",
			zap.Int("rows", len(rows)),
			zap.Int("dim_item", items),
			zap.Int("dim_date", dates),
			zap.Int("fact_prices", facts))
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().String("cleaned-file", "data/processed/cleaned_prices.csv", "Path to the cleaned price CSV")
}
