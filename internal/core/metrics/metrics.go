package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for EmbedRequestsTotal.
const (
	OutcomeRendered   = "rendered"
	OutcomeGeoBlocked = "geo_blocked"
	OutcomeNotFound   = "not_found"
	OutcomeError      = "error"
)

// Result labels for GeoLookupsTotal.
const (
	GeoResultHit      = "cache_hit"
	GeoResultResolved = "resolved"
	GeoResultFailed   = "failed"
	GeoResultSkipped  = "skipped"
)

var (
	// EmbedRequestsTotal counts embed requests by outcome and client class.
	EmbedRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "announcebar_embed_requests_total",
			Help: "Total number of embed script requests by outcome and client class.",
		},
		[]string{"outcome", "client"},
	)

	// EmbedGenerationSeconds observes how long script generation takes.
	EmbedGenerationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "announcebar_embed_generation_seconds",
		Help:    "Time spent producing an embed script, including store and geo lookups.",
		Buckets: prometheus.DefBuckets,
	})

	// GeoLookupsTotal counts geo-IP resolutions by result.
	GeoLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "announcebar_geo_lookups_total",
			Help: "Total number of geo-IP lookups by result.",
		},
		[]string{"result"},
	)
)
