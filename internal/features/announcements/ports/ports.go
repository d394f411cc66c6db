package ports

import (
	"context"
	"time"

	"announcebar/internal/features/announcements/domain"
)

// EmbedService defines the primary port for producing embed output.
type EmbedService interface {
	// Generate returns the script for slug. Unknown or invisible slugs return
	// domain.ErrAnnouncementNotFound.
	Generate(ctx context.Context, slug string, rc domain.RequestContext) (*domain.EmbedResult, error)
	// Preview renders the bar as a standalone HTML page at virtual time at,
	// as it would appear on page.
	Preview(ctx context.Context, slug string, at time.Duration, page domain.PageContext) ([]byte, error)
}

// AnnouncementRepository defines the secondary port for the configuration store.
type AnnouncementRepository interface {
	// FindVisibleBySlug returns the record only when it exists and is visible.
	FindVisibleBySlug(ctx context.Context, slug string) (*domain.Announcement, error)
}

// GeoLocator resolves a visitor IP to an ISO 3166-1 alpha-2 country code.
type GeoLocator interface {
	CountryCode(ctx context.Context, ip string) (string, error)
}
