package rates

import (
	"context"
	"fmt"

	"bitcoinswitch/internal/usecase/interfaces"
)

// CachedRateOracle serves rates from a RateCache keyed by "asset_id:amount".
type CachedRateOracle struct {
	upstream interfaces.IRateOracle
	cache    *RateCache
}

var _ interfaces.IRateOracle = (*CachedRateOracle)(nil)

func NewCachedRateOracle(upstream interfaces.IRateOracle, cache *RateCache) *CachedRateOracle {
	if cache == nil {
		cache = NewRateCache(CacheOptions{}, CacheHooks{})
	}
	return &CachedRateOracle{upstream: upstream, cache: cache}
}

func (o *CachedRateOracle) GetRate(ctx context.Context, assetID string, assetAmount int64) (float64, error) {
	return o.cache.Get(ctx, CacheKey(assetID, assetAmount), func(ctx context.Context) (float64, error) {
		return o.upstream.GetRate(ctx, assetID, assetAmount)
	})
}

// Fresh returns an oracle that always asks the asset node and refreshes the cached
// entry with the answer. Settlement-time revalidation must not see a cached rate.
func (o *CachedRateOracle) Fresh() *FreshRateOracle {
	return &FreshRateOracle{parent: o}
}

// Invalidate drops the cached rate so the next lookup hits the asset node.
func (o *CachedRateOracle) Invalidate(assetID string, assetAmount int64) {
	o.cache.Delete(CacheKey(assetID, assetAmount))
}

func CacheKey(assetID string, assetAmount int64) string {
	return fmt.Sprintf("%s:%d", assetID, assetAmount)
}

// FreshRateOracle bypasses the cache on reads but keeps it warm for quoting.
type FreshRateOracle struct {
	parent *CachedRateOracle
}

var _ interfaces.IRateOracle = (*FreshRateOracle)(nil)

func (f *FreshRateOracle) GetRate(ctx context.Context, assetID string, assetAmount int64) (float64, error) {
	rate, err := f.parent.upstream.GetRate(ctx, assetID, assetAmount)
	if err != nil {
		return 0, err
	}
	if rate > 0 {
		f.parent.cache.store(CacheKey(assetID, assetAmount), rate)
	}
	return rate, nil
}
