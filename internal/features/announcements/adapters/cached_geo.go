package adapters

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"announcebar/internal/core/cache"
	"announcebar/internal/core/logger"
	"announcebar/internal/core/metrics"
	"announcebar/internal/features/announcements/ports"
)

const geoKeyPrefix = "geo:"

// CachedGeoLocator memoizes country codes in the cache and collapses
// concurrent lookups for the same IP into one upstream call.
type CachedGeoLocator struct {
	next    ports.GeoLocator
	cache   cache.Cache
	ttl     time.Duration
	timeout time.Duration
	group   singleflight.Group
	logger  *zap.Logger
}

// NewCachedGeoLocator wraps next with a cache. timeout bounds the shared
// upstream lookup, which is detached from any single caller's cancellation.
func NewCachedGeoLocator(next ports.GeoLocator, c cache.Cache, ttl, timeout time.Duration) *CachedGeoLocator {
	return &CachedGeoLocator{
		next:    next,
		cache:   c,
		ttl:     ttl,
		timeout: timeout,
		logger:  logger.Named("geo"),
	}
}

// CountryCode returns the cached code for ip, resolving it upstream on a miss.
// Empty answers and failures are not cached. A caller whose ctx ends stops
// waiting without failing the other callers sharing the lookup.
func (l *CachedGeoLocator) CountryCode(ctx context.Context, ip string) (string, error) {
	key := geoKeyPrefix + ip

	data, err := l.cache.Get(ctx, key)
	switch {
	case err == nil && validCode(data):
		metrics.GeoLookupsTotal.WithLabelValues(metrics.GeoResultHit).Inc()
		return string(data), nil
	case err == nil:
		// Not something this locator wrote; drop it so the next miss repopulates it.
		if err := l.cache.Delete(ctx, key); err != nil {
			l.logger.Warn("Geo cache delete failed", zap.Error(err))
		}
	case !errors.Is(err, cache.ErrCacheMiss):
		l.logger.Warn("Geo cache read failed", zap.Error(err))
	}

	ch := l.group.DoChan(ip, func() (any, error) {
		return l.resolve(context.WithoutCancel(ctx), key, ip)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// resolve runs one upstream lookup and stores a non-empty answer.
func (l *CachedGeoLocator) resolve(ctx context.Context, key, ip string) (string, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	code, err := l.next.CountryCode(ctx, ip)
	if err != nil {
		metrics.GeoLookupsTotal.WithLabelValues(metrics.GeoResultFailed).Inc()
		return "", err
	}
	metrics.GeoLookupsTotal.WithLabelValues(metrics.GeoResultResolved).Inc()

	if code != "" {
		if err := l.cache.Set(ctx, key, []byte(code), l.ttl); err != nil {
			l.logger.Warn("Geo cache write failed", zap.Error(err))
		}
	}
	return code, nil
}

// validCode reports whether data looks like an ISO 3166-1 alpha-2 code.
func validCode(data []byte) bool {
	if len(data) != 2 {
		return false
	}
	for _, b := range data {
		if b < 'A' || b > 'Z' {
			return false
		}
	}
	return true
}
