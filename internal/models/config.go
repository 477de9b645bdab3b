package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// CloudStorageConfig selects where file sinks upload their objects.
type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

// Config holds every externally tunable parameter. Alias tables, scoring
// weights and price-correction thresholds are fixed policy and deliberately
// absent; only the alias table overrides below may extend (not replace) the
// built-in correction tables.
type Config struct {
	// Pipeline tunables
	Year       int       `mapstructure:"year"`
	TargetDate time.Time `mapstructure:"target_date"`
	Markup     float64   `mapstructure:"markup"`
	MinMatch   int       `mapstructure:"min_match"`
	MaxResults int       `mapstructure:"max_results"`
	Budget     float64   `mapstructure:"budget"`

	// Input artifacts
	RawFile       string `mapstructure:"raw_file"`
	CleanedFile   string `mapstructure:"cleaned_file"`
	PredictedFile string `mapstructure:"predicted_file"`
	MenuFile      string `mapstructure:"menu_file"`

	// Output sinks
	OutputPath        string `mapstructure:"output_path"`
	OutputFolder      string `mapstructure:"output_folder"`
	OutputFormat      string `mapstructure:"output_format"`
	OutputDestination string `mapstructure:"output_destination"`

	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`

	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`

	// Warehouse
	DatabaseURL string `mapstructure:"database_url"`

	// Optional additions to the built-in OCR correction tables, keyed by the
	// normalized garbled text.
	ItemAliases map[string]string `mapstructure:"item_aliases"`
	SpecAliases map[string]string `mapstructure:"spec_aliases"`

	// Synthetic extract generation (seed command)
	SeedRows int   `mapstructure:"seed_rows"`
	SeedSeed int64 `mapstructure:"seed_seed"`
}

// LoadConfig initializes and reads the configuration using Viper.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("nochebuena")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional; flags and env cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects configurations the pipeline cannot run with.
func (cfg *Config) Validate() error {
	if cfg.Year <= 0 {
		return fmt.Errorf("processing year must be positive, got %d", cfg.Year)
	}
	if cfg.Markup < 0 {
		return fmt.Errorf("markup cannot be negative, got %f", cfg.Markup)
	}
	if cfg.MinMatch < 1 {
		return fmt.Errorf("min_match must be at least 1, got %d", cfg.MinMatch)
	}
	if cfg.MaxResults < 1 {
		return fmt.Errorf("max_results must be at least 1, got %d", cfg.MaxResults)
	}
	return nil
}
