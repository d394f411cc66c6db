package service

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"time"

	"go.uber.org/zap"

	"announcebar/internal/core/logger"
	"announcebar/internal/core/metrics"
	"announcebar/internal/features/announcements/carousel"
	"announcebar/internal/features/announcements/domain"
	"announcebar/internal/features/announcements/icons"
	"announcebar/internal/features/announcements/mount"
	"announcebar/internal/features/announcements/ports"
	"announcebar/internal/features/announcements/render"
	"announcebar/internal/features/announcements/script"
)

// EmbedServiceImpl implements ports.EmbedService.
type EmbedServiceImpl struct {
	repo       ports.AnnouncementRepository
	geo        ports.GeoLocator
	geoTimeout time.Duration
	logger     *zap.Logger
}

// NewEmbedService creates a new EmbedServiceImpl. geo may be nil to disable geo targeting.
func NewEmbedService(repo ports.AnnouncementRepository, geo ports.GeoLocator, geoTimeout time.Duration) *EmbedServiceImpl {
	return &EmbedServiceImpl{
		repo:       repo,
		geo:        geo,
		geoTimeout: geoTimeout,
		logger:     logger.Named("embed"),
	}
}

// Generate runs the server-side gates for slug and builds its embed script.
func (s *EmbedServiceImpl) Generate(ctx context.Context, slug string, rc domain.RequestContext) (*domain.EmbedResult, error) {
	start := time.Now()
	defer func() {
		metrics.EmbedGenerationSeconds.Observe(time.Since(start).Seconds())
	}()

	a, err := s.load(ctx, slug)
	if err != nil {
		return nil, err
	}

	targeted := len(a.GeoCountries) > 0
	if !s.geoAllowed(ctx, a, rc.IP) {
		return &domain.EmbedResult{Outcome: domain.OutcomeGeoBlocked, Script: script.Noop(), GeoTargeted: targeted}, nil
	}

	js, err := script.Build(buildPayload(a))
	if err != nil {
		return nil, fmt.Errorf("service: failed to build script for %q: %w", slug, err)
	}
	return &domain.EmbedResult{Outcome: domain.OutcomeRendered, Script: js, GeoTargeted: targeted}, nil
}

func (s *EmbedServiceImpl) load(ctx context.Context, slug string) (*domain.Announcement, error) {
	a, err := s.repo.FindVisibleBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrAnnouncementNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("service: failed to load announcement: %w", err)
	}
	if a == nil || !a.Visibility {
		return nil, domain.ErrAnnouncementNotFound
	}
	a.Normalize()
	return a, nil
}

// geoAllowed fails open: lookup errors, timeouts and empty answers let the bar render.
func (s *EmbedServiceImpl) geoAllowed(ctx context.Context, a *domain.Announcement, ip string) bool {
	if len(a.GeoCountries) == 0 || s.geo == nil {
		return true
	}
	if !locatable(ip) {
		metrics.GeoLookupsTotal.WithLabelValues(metrics.GeoResultSkipped).Inc()
		return true
	}

	if s.geoTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.geoTimeout)
		defer cancel()
	}

	code, err := s.geo.CountryCode(ctx, ip)
	if err != nil {
		s.logger.Warn("Geo lookup failed, rendering anyway",
			zap.String("slug", a.Slug),
			zap.Error(err),
		)
		return true
	}
	if code == "" {
		return true
	}
	return a.CountryAllowed(code)
}

// locatable reports whether ip is a public address worth sending to the geo service.
func locatable(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	return !(addr.IsLoopback() || addr.IsPrivate() || addr.IsUnspecified() ||
		addr.IsLinkLocalUnicast() || addr.IsMulticast())
}

// buildPayload renders the bar for a normalized announcement.
func buildPayload(a *domain.Announcement) script.Payload {
	set := icons.Subset(a.IconKeys()...)
	placement := mount.NewPlacement(a)

	p := script.Payload{
		Slug:           a.Slug,
		ElementID:      placement.ElementID,
		AllowedDomain:  a.AllowedDomain,
		PagePaths:      a.PagePaths,
		Height:         placement.Height,
		HeightProperty: mount.HeightProperty,
		Sticky:         placement.Sticky,
		Closable:       placement.Closable,
		ContainerStyle: placement.Style.String(),
		HTML:           render.Serialize(render.Body(a, set, nil)),
		Fonts:          render.FontLinks(a.FontFamilies()...),
	}
	if a.RenderType() == domain.TypeCarousel {
		p.Carousel = &script.CarouselConfig{
			Slides:       len(a.Slides),
			IntervalMS:   int(carousel.NormalizeInterval(a.CarouselSpeed).Milliseconds()),
			AnimationMS:  int(carousel.AnimationDuration.Milliseconds()),
			PauseOnHover: a.CarouselPauseOnHover,
		}
	}
	return p
}
