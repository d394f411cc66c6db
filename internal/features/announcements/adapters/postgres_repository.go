package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"announcebar/internal/core/logger"
	"announcebar/internal/features/announcements/domain"
)

const findVisibleBySlugQuery = `
	SELECT slug, visibility, type, content,
	       background, background_gradient, use_gradient, text_color, font_family,
	       bar_height, title_font_size, message_font_size, text_alignment, icon_alignment, icon,
	       is_sticky, is_closable,
	       cta_enabled, cta_text, cta_url, cta_background_color, cta_text_color,
	       allowed_domain, page_paths, geo_countries,
	       carousel_speed, carousel_pause_on_hover
	FROM announcements
	WHERE slug = $1 AND visibility
	LIMIT 1`

// announcementRow mirrors the announcements table. Nullable columns are pointers.
type announcementRow struct {
	Slug                 string   `db:"slug"`
	Visibility           bool     `db:"visibility"`
	Type                 string   `db:"type"`
	Content              []byte   `db:"content"`
	Background           *string  `db:"background"`
	BackgroundGradient   *string  `db:"background_gradient"`
	UseGradient          bool     `db:"use_gradient"`
	TextColor            *string  `db:"text_color"`
	FontFamily           *string  `db:"font_family"`
	BarHeight            *int     `db:"bar_height"`
	TitleFontSize        *int     `db:"title_font_size"`
	MessageFontSize      *int     `db:"message_font_size"`
	TextAlignment        *string  `db:"text_alignment"`
	IconAlignment        *string  `db:"icon_alignment"`
	Icon                 *string  `db:"icon"`
	IsSticky             bool     `db:"is_sticky"`
	IsClosable           bool     `db:"is_closable"`
	CTAEnabled           bool     `db:"cta_enabled"`
	CTAText              *string  `db:"cta_text"`
	CTAURL               *string  `db:"cta_url"`
	CTABackgroundColor   *string  `db:"cta_background_color"`
	CTATextColor         *string  `db:"cta_text_color"`
	AllowedDomain        *string  `db:"allowed_domain"`
	PagePaths            []string `db:"page_paths"`
	GeoCountries         []string `db:"geo_countries"`
	CarouselSpeed        *int     `db:"carousel_speed"`
	CarouselPauseOnHover bool     `db:"carousel_pause_on_hover"`
}

// PostgresRepository implements ports.AnnouncementRepository on the announcements table.
type PostgresRepository struct {
	db     pgxscan.Querier
	logger *zap.Logger
}

// NewPostgresRepository creates a repository over a pgx pool or transaction.
func NewPostgresRepository(db pgxscan.Querier) *PostgresRepository {
	return &PostgresRepository{
		db:     db,
		logger: logger.Named("announcement-repo"),
	}
}

// FindVisibleBySlug loads a visible record and decodes its content column.
func (r *PostgresRepository) FindVisibleBySlug(ctx context.Context, slug string) (*domain.Announcement, error) {
	var row announcementRow
	if err := pgxscan.Get(ctx, r.db, &row, findVisibleBySlugQuery, slug); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("failed to load announcement %q: %w", slug, err)
	}

	a := row.toDomain()
	if err := a.DecodeContent(row.Content); err != nil {
		// Malformed content degrades to an empty bar rather than failing the embed.
		r.logger.Warn("Ignoring undecodable announcement content",
			zap.String("slug", slug),
			zap.Error(err),
		)
	}
	return a, nil
}

func (row *announcementRow) toDomain() *domain.Announcement {
	return &domain.Announcement{
		Slug:               row.Slug,
		Visibility:         row.Visibility,
		Type:               domain.AnnouncementType(row.Type),
		Background:         str(row.Background),
		BackgroundGradient: str(row.BackgroundGradient),
		UseGradient:        row.UseGradient,
		TextColor:          str(row.TextColor),
		FontFamily:         str(row.FontFamily),
		BarHeight:          num(row.BarHeight),
		TitleFontSize:      num(row.TitleFontSize),
		MessageFontSize:    num(row.MessageFontSize),
		TextAlignment:      domain.TextAlignment(str(row.TextAlignment)),
		IconAlignment:      domain.IconAlignment(str(row.IconAlignment)),
		Icon:               str(row.Icon),
		IsSticky:           row.IsSticky,
		IsClosable:         row.IsClosable,
		CTA: domain.CTA{
			Enabled:         row.CTAEnabled,
			Text:            str(row.CTAText),
			URL:             str(row.CTAURL),
			BackgroundColor: str(row.CTABackgroundColor),
			TextColor:       str(row.CTATextColor),
		},
		AllowedDomain:        str(row.AllowedDomain),
		PagePaths:            row.PagePaths,
		GeoCountries:         row.GeoCountries,
		CarouselSpeed:        num(row.CarouselSpeed),
		CarouselPauseOnHover: row.CarouselPauseOnHover,
	}
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func num(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
