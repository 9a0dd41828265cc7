package currency

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=api.go -package currency -destination currency_mock.go RateProvider RateCache
type RateProvider interface {
	// GetRate returns how many units of target one unit of the base currency buys.
	GetRate(c context.Context, target string) (decimal.Decimal, error)
}

type RateCache interface {
	Get(c context.Context, key string) (string, bool, error)
	Set(c context.Context, key string, value string, ttl time.Duration) error
}

// RateResponse is the wire format of the rate endpoint.
type RateResponse struct {
	Base   string
	Target string
	Rate   decimal.Decimal
}
