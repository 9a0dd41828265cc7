// Package myconfig loads the application configuration from the environment.
// A .env file in the working directory is read first when present.
package myconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port                  string        `envconfig:"PORT" default:"8080"`
	GoogleCloudProject    string        `envconfig:"GOOGLE_CLOUD_PROJECT"`
	DebounceDelay         time.Duration `envconfig:"DEBOUNCE_DELAY" default:"300ms"`
	BaseCurrency          string        `envconfig:"BASE_CURRENCY" default:"USD"`
	BaseLocale            string        `envconfig:"BASE_LOCALE" default:"en-US"`
	RejectNonPositiveRate bool          `envconfig:"REJECT_NON_POSITIVE_RATE" default:"false"`
	CatalogURL            string        `envconfig:"CATALOG_URL"`
	RateURL               string        `envconfig:"RATE_URL"`
	OrderURL              string        `envconfig:"ORDER_URL"`
	RedisURL              string        `envconfig:"REDIS_URL"`
	RateCacheTTL          time.Duration `envconfig:"RATE_CACHE_TTL" default:"10m"`
	NotificationLimit     int           `envconfig:"NOTIFICATION_LIMIT" default:"50"`
}

// Load reads the optional env files and processes the environment into a Config.
// Without arguments ".env" is tried.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("error loading env file %s: %w", f, err)
		}
	}

	cfg := Config{}
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("error processing environment: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.DebounceDelay <= 0 {
		return fmt.Errorf("DEBOUNCE_DELAY must be positive, got %s", c.DebounceDelay)
	}
	if c.NotificationLimit <= 0 {
		return fmt.Errorf("NOTIFICATION_LIMIT must be positive, got %d", c.NotificationLimit)
	}
	return nil
}
