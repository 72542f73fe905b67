package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	Limits  LimitsConfig  `mapstructure:"limits"`
	Receipt ReceiptConfig `mapstructure:"receipt"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DataConfig locates the flat data files.
type DataConfig struct {
	Dir         string `mapstructure:"dir"`
	TripsFile   string `mapstructure:"trips_file"`
	TicketsFile string `mapstructure:"tickets_file"`
}

// LimitsConfig carries the record ceilings. The original system baked
// these in as array sizes; here they are plain configuration.
type LimitsConfig struct {
	MaxTrips   int `mapstructure:"max_trips"`
	MaxTickets int `mapstructure:"max_tickets"`
	MaxSeats   int `mapstructure:"max_seats"`
}

type ReceiptConfig struct {
	TaxRate float64 `mapstructure:"tax_rate"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("data.dir", ".")
	v.SetDefault("data.trips_file", "trips.txt")
	v.SetDefault("data.tickets_file", "tickets.txt")
	v.SetDefault("limits.max_trips", 100)
	v.SetDefault("limits.max_tickets", 500)
	v.SetDefault("limits.max_seats", 50)
	v.SetDefault("receipt.tax_rate", 0.18)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	// Environment variables: BUSDESK_DATA_DIR → data.dir
	v.SetEnvPrefix("BUSDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Data.Dir == "" {
		errs = append(errs, "data.dir is required")
	}
	if c.Data.TripsFile == "" {
		errs = append(errs, "data.trips_file is required")
	}
	if c.Data.TicketsFile == "" {
		errs = append(errs, "data.tickets_file is required")
	}
	if c.Data.TripsFile == c.Data.TicketsFile {
		errs = append(errs, "data.trips_file and data.tickets_file must differ")
	}
	if c.Limits.MaxSeats < 1 {
		errs = append(errs, fmt.Sprintf("limits.max_seats must be at least 1, got %d", c.Limits.MaxSeats))
	}
	if c.Receipt.TaxRate < 0 {
		errs = append(errs, fmt.Sprintf("receipt.tax_rate must not be negative, got %g", c.Receipt.TaxRate))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
