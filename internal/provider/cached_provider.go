package provider

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedRatesProviderDecorator wraps a RatesProvider with a short-lived Redis cache
// so replicas refreshing the same pair share one upstream call.
type CachedRatesProviderDecorator struct {
	provider     RatesProvider
	cache        *redis.Client
	ttl          time.Duration
	providerName string
}

// NewCachedRatesProvider creates a new CachedRatesProviderDecorator.
func NewCachedRatesProvider(provider RatesProvider, cache *redis.Client, ttl time.Duration, providerName string) *CachedRatesProviderDecorator {
	return &CachedRatesProviderDecorator{
		provider:     provider,
		cache:        cache,
		ttl:          ttl,
		providerName: providerName,
	}
}

func (p *CachedRatesProviderDecorator) cacheKey(base, quote string) string {
	return fmt.Sprintf("provider_cache:%s:{%s:%s}", p.providerName, base, quote)
}

// GetRate attempts to fetch the rate from cache before calling the underlying provider.
// Cache failures never fail the fetch.
func (p *CachedRatesProviderDecorator) GetRate(ctx context.Context, base, quote string) (float64, error) {
	if p.cache == nil {
		return p.provider.GetRate(ctx, base, quote)
	}

	key := p.cacheKey(base, quote)

	if cached, err := p.cache.Get(ctx, key).Result(); err == nil {
		if rate, perr := strconv.ParseFloat(cached, 64); perr == nil && ValidRate(rate) {
			return rate, nil
		}
	}

	rate, err := p.provider.GetRate(ctx, base, quote)
	if err != nil {
		return 0, err
	}

	_ = p.cache.Set(ctx, key, strconv.FormatFloat(rate, 'f', -1, 64), p.ttl).Err()

	return rate, nil
}

var _ RatesProvider = (*CachedRatesProviderDecorator)(nil)
