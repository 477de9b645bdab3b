package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/cleaner"
	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/models"
	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/output"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Repair a raw OCR price extract into the canonical price table",
	Long: `clean reads an extracted market price CSV (day, category, item_name,
specification, price), repairs OCR damage in every field, drops rows that
cannot be recovered, and writes the cleaned price table together with an
audit log of every correction made.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		logger := newLogger()
		defer logger.Sync()

		rows, err := models.ReadRawRecords(cfg.RawFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading raw extract: %v\n", err)
			os.Exit(1)
		}

		c := cleaner.New(cfg.Year, cfg.ItemAliases, cfg.SpecAliases, logger)
		cleaned, auditLog := c.Clean(rows)

		dest, err := output.ForConfig(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output destination: %v\n", err)
			os.Exit(1)
		}
		defer dest.Close()

		bar := progressbar.Default(int64(len(cleaned)), "writing cleaned prices")
		for _, rec := range cleaned {
			if err := writeEvent(dest, models.TopicCleanedPrices, rec.Event()); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing cleaned price: %v\n", err)
				os.Exit(1)
			}
			bar.Add(1)
		}
		for _, entry := range auditLog {
			if err := writeEvent(dest, models.TopicCleaningLog, entry.Event()); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing cleaning log: %v\n", err)
				os.Exit(1)
			}
		}

		logger.Info("clean complete",
			zap.Int("rows_in", len(rows)),
			zap.Int("rows_out", len(cleaned)),
			zap.Int("corrections", len(auditLog)))
	},
}

func writeEvent(dest output.Destination, topic string, event map[string]interface{}) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return dest.WriteMessage(topic, msg)
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().String("raw-file", "data/raw/raw_prices.csv", "Path to the raw extract CSV")
}
