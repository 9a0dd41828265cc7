package salessim

import (
	"time"

	"github.com/MarcGrol/salessimulator/lib/myconfig"
	"github.com/MarcGrol/salessimulator/lib/mymoney"
)

type Config struct {
	DebounceDelay         time.Duration
	BaseFormat            mymoney.Format
	Locales               mymoney.LocaleTable
	RejectNonPositiveRate bool
	NotificationLimit     int
}

func DefaultConfig() Config {
	return Config{
		DebounceDelay: 300 * time.Millisecond,
		BaseFormat: mymoney.Format{
			Currency:          "USD",
			Locale:            "en-US",
			MinFractionDigits: 2,
			MaxFractionDigits: 4,
		},
		Locales:               mymoney.DefaultLocaleTable(),
		RejectNonPositiveRate: false,
		NotificationLimit:     50,
	}
}

func ConfigFrom(cfg myconfig.Config) (Config, error) {
	result := DefaultConfig()
	result.DebounceDelay = cfg.DebounceDelay
	result.BaseFormat.Currency = cfg.BaseCurrency
	result.BaseFormat.Locale = cfg.BaseLocale
	result.RejectNonPositiveRate = cfg.RejectNonPositiveRate
	result.NotificationLimit = cfg.NotificationLimit

	err := result.BaseFormat.Validate()
	if err != nil {
		return Config{}, err
	}
	return result, nil
}
