package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/models"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "nochebuena",
	Short: "Cleans Manila market price extracts and plans a Noche Buena menu on a budget",
	Long: `nochebuena is a CLI pipeline for holiday meal planning: it repairs noisy
OCR extracts of DTI market price bulletins into a canonical price table,
forecasts Christmas Eve prices with a seasonal markup, loads both into a
star-schema warehouse, and ranks Noche Buena dishes against a shopping cart.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		bindFlags(cmd.Flags())
		bindFlags(cmd.InheritedFlags())
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./nochebuena.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.PersistentFlags().Int("year", 2025, "Processing year used to resolve extracted day labels")
	rootCmd.PersistentFlags().String("output-path", "data", "Base path for file sinks")
	rootCmd.PersistentFlags().String("output-folder", "processed", "Folder under the base path for pipeline artifacts")
	rootCmd.PersistentFlags().String("output-format", "csv", "Artifact format: csv, json or parquet")
	rootCmd.PersistentFlags().String("output-destination", "local", "Artifact destination: local or s3")
	rootCmd.PersistentFlags().Bool("kafka-enabled", false, "Publish artifacts to Kafka instead of files")
	rootCmd.PersistentFlags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.PersistentFlags().String("database-url", "", "Postgres DSN for the price warehouse")

	// Every config key needs a default even when the running subcommand does
	// not expose its flag.
	viper.SetDefault("markup", 0.12)
	viper.SetDefault("target_date", "2025-12-24T00:00:00Z")
	viper.SetDefault("min_match", 2)
	viper.SetDefault("max_results", 10)
	viper.SetDefault("budget", 500.0)
	viper.SetDefault("raw_file", "data/raw/raw_prices.csv")
	viper.SetDefault("cleaned_file", "data/processed/cleaned_prices.csv")
	viper.SetDefault("predicted_file", "data/processed/predicted_prices.csv")
	viper.SetDefault("seed_rows", 150)
	viper.SetDefault("seed_seed", 42)
}

// bindFlags maps dashed flag names onto the underscored config keys the
// Config struct decodes from. Binding happens at run time so commands that
// share a flag name never shadow each other.
func bindFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := viper.BindPFlag(key, f); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding flag %s: %v\n", f.Name, err)
			os.Exit(1)
		}
	})
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("nochebuena")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func loadConfig() *models.Config {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func newLogger() *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
