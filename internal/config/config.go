package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Port        int
	DatabaseURL string

	// UnitPrice is the single price applied to every sale until per-item
	// pricing lands.
	UnitPrice float64

	RecentSalesLimit     int
	MonthlySalesWindow   int
	LowStockScanInterval time.Duration
}

// Load loads configuration using Viper: an optional config.yaml overlaid
// by environment variables (PORT, DATABASE_URL, UNIT_PRICE, ...).
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:                 viper.GetInt("port"),
		DatabaseURL:          viper.GetString("database_url"),
		UnitPrice:            viper.GetFloat64("unit_price"),
		RecentSalesLimit:     viper.GetInt("recent_sales_limit"),
		MonthlySalesWindow:   viper.GetInt("monthly_sales_window"),
		LowStockScanInterval: viper.GetDuration("low_stock_scan_interval"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("port", 8080)
	viper.SetDefault("database_url", "")
	viper.SetDefault("unit_price", 19.99)
	viper.SetDefault("recent_sales_limit", 5)
	viper.SetDefault("monthly_sales_window", 6)
	viper.SetDefault("low_stock_scan_interval", 30*time.Minute)
}
