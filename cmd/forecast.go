package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/forecast"
	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/models"
	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/output"
	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/repositories/postgres"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Predict holiday prices from the cleaned price table",
	Long: `forecast reads the cleaned price table and computes one predicted price
per item for the target date: the mean of same-month observations with the
seasonal markup applied, falling back to the last known price for items with
no history in the target month. With --store the predictions are also
upserted into the warehouse.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		logger := newLogger()
		defer logger.Sync()

		history, err := models.ReadCleanedRecords(cfg.CleanedFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading cleaned prices: %v\n", err)
			os.Exit(1)
		}

		f := forecast.New(cfg.TargetDate, cfg.Markup, logger)
		predictions := f.Forecast(history)

		dest, err := output.ForConfig(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output destination: %v\n", err)
			os.Exit(1)
		}
		defer dest.Close()

		for _, pred := range predictions {
			if err := writeEvent(dest, models.TopicPredictedPrices, pred.Event()); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing prediction: %v\n", err)
				os.Exit(1)
			}
		}

		store, _ := cmd.Flags().GetBool("store")
		if store {
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
			if err := warehouse.LoadPredicted(ctx, predictions); err != nil {
				fmt.Fprintf(os.Stderr, "Error storing predictions: %v\n", err)
				os.Exit(1)
			}
		}

		logger.Info("forecast complete",
			zap.Int("history_rows", len(history)),
			zap.Int("predictions", len(predictions)),
			zap.Time("target_date", cfg.TargetDate),
			zap.Bool("stored", store))
	},
}

func init() {
	rootCmd.AddCommand(forecastCmd)

	forecastCmd.Flags().String("cleaned-file", "data/processed/cleaned_prices.csv", "Path to the cleaned price CSV")
	forecastCmd.Flags().String("target-date", "2025-12-24T00:00:00Z", "Forecast target date (RFC3339)")
	forecastCmd.Flags().Float64("markup", 0.12, "Fractional seasonal markup applied to same-month means")
	forecastCmd.Flags().Bool("store", false, "Also upsert predictions into the warehouse")
}
