package domain

// RequestContext carries the visitor details the server-side gates need.
type RequestContext struct {
	IP        string
	UserAgent string
}

// Outcome is the result class of an embed request.
type Outcome string

const (
	OutcomeRendered   Outcome = "rendered"
	OutcomeGeoBlocked Outcome = "geo_blocked"
)

// EmbedResult is the script produced for one embed request.
type EmbedResult struct {
	Outcome Outcome
	Script  []byte
	// GeoTargeted is set for every outcome of a record with geo countries,
	// so the response must not be stored by shared caches.
	GeoTargeted bool
}
