package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type ScraperConfig struct {
	CacheTTL                  time.Duration `mapstructure:"cache_ttl"`
	BoardMaxRequestsPerSecond float32       `mapstructure:"board_max_requests_per_second"`
	FetchLogRetentionInDays   int           `mapstructure:"fetch_log_retention_days"`
}

func (config ScraperConfig) validate() error {
	var errs []error

	if config.CacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("cache_ttl must be positive"))
	}
	if config.FetchLogRetentionInDays <= 0 {
		errs = append(errs, fmt.Errorf("fetch_log_retention_days must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config ScraperConfig) bindEnvironmentVariables() error {

	err := viper.BindEnv("scraper.cache_ttl", "SCRAPER_CACHE_TTL")
	if err != nil {
		return err
	}

	return viper.BindEnv("scraper.fetch_log_retention_days", "FETCH_LOG_RETENTION_DAYS")
}
