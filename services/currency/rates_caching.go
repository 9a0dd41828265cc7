package currency

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/MarcGrol/salessimulator/lib/mylog"
)

type cachingRateProvider struct {
	next   RateProvider
	cache  RateCache
	ttl    time.Duration
	logger mylog.Logger
}

// NewCachingRateProvider remembers rates of next for ttl. Cache failures degrade to a direct lookup.
func NewCachingRateProvider(next RateProvider, cache RateCache, ttl time.Duration) RateProvider {
	return &cachingRateProvider{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: mylog.New("ratecache"),
	}
}

func cacheKey(target string) string {
	return "rate:" + strings.ToUpper(target)
}

func (p *cachingRateProvider) GetRate(c context.Context, target string) (decimal.Decimal, error) {
	key := cacheKey(target)

	cached, found, err := p.cache.Get(c, key)
	if err != nil {
		p.logger.Log(c, key, mylog.SeverityWarn, "Error reading rate from cache: %s", err)
	}
	if found {
		rate, err := decimal.NewFromString(cached)
		if err == nil {
			return rate, nil
		}
		p.logger.Log(c, key, mylog.SeverityWarn, "Ignoring corrupt cached rate '%s': %s", cached, err)
	}

	rate, err := p.next.GetRate(c, target)
	if err != nil {
		return decimal.Zero, err
	}

	err = p.cache.Set(c, key, rate.String(), p.ttl)
	if err != nil {
		p.logger.Log(c, key, mylog.SeverityWarn, "Error writing rate to cache: %s", err)
	}

	return rate, nil
}

type redisRateCache struct {
	rdb redis.Cmdable
}

func NewRedisRateCache(rdb redis.Cmdable) RateCache {
	return &redisRateCache{
		rdb: rdb,
	}
}

func (r *redisRateCache) Get(c context.Context, key string) (string, bool, error) {
	value, err := r.rdb.Get(c, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, fmt.Errorf("error getting %s from redis: %w", key, err)
	}
	return value, true, nil
}

func (r *redisRateCache) Set(c context.Context, key string, value string, ttl time.Duration) error {
	err := r.rdb.Set(c, key, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("error setting %s in redis: %w", key, err)
	}
	return nil
}
