package currency

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MarcGrol/salessimulator/lib/myerrors"
)

type fixedRates struct {
	rates map[string]decimal.Decimal
}

// NewFixedRates serves rates from a static table keyed by ISO-4217 code.
func NewFixedRates(rates map[string]decimal.Decimal) RateProvider {
	normalized := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		normalized[strings.ToUpper(code)] = rate
	}
	return &fixedRates{
		rates: normalized,
	}
}

// DefaultRates is relative to USD.
func DefaultRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("0.92"),
		"GBP": decimal.RequireFromString("0.79"),
		"BRL": decimal.RequireFromString("5.00"),
		"JPY": decimal.RequireFromString("149.50"),
		"CHF": decimal.RequireFromString("0.88"),
	}
}

func (r *fixedRates) GetRate(c context.Context, target string) (decimal.Decimal, error) {
	rate, found := r.rates[strings.ToUpper(target)]
	if !found {
		return decimal.Zero, myerrors.NewNotFoundError(fmt.Errorf("no rate for currency %s", target))
	}
	return rate, nil
}
