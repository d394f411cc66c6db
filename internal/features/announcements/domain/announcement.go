package domain

import (
	"errors"
)

// AnnouncementType is the visual variant of a bar.
type AnnouncementType string

const (
	TypeSingle   AnnouncementType = "single"
	TypeCarousel AnnouncementType = "carousel"
	// TypeMarquee is accepted by storage but has no renderer; it renders as TypeSingle.
	TypeMarquee AnnouncementType = "marquee"
)

// TextAlignment controls the horizontal justification of the bar content.
type TextAlignment string

const (
	TextLeft   TextAlignment = "left"
	TextCenter TextAlignment = "center"
	TextRight  TextAlignment = "right"
)

// Justify returns the flexbox justify-content value for the alignment.
func (t TextAlignment) Justify() string {
	switch t {
	case TextLeft:
		return "flex-start"
	case TextRight:
		return "flex-end"
	default:
		return "center"
	}
}

// IconAlignment controls on which side of the text block the icon sits.
type IconAlignment string

const (
	IconLeft  IconAlignment = "left"
	IconRight IconAlignment = "right"
)

var (
	// ErrAnnouncementNotFound is returned when no visible announcement matches a slug.
	ErrAnnouncementNotFound = errors.New("announcement not found")
	// ErrInvalidContent is returned when the stored content cannot be decoded.
	ErrInvalidContent = errors.New("invalid announcement content")
)

// CTA is the call-to-action button block.
type CTA struct {
	Enabled         bool   `json:"cta_enabled"`
	Text            string `json:"cta_text"`
	URL             string `json:"cta_url"`
	BackgroundColor string `json:"cta_background_color"`
	TextColor       string `json:"cta_text_color"`
}

// Eligible reports whether the CTA should be rendered at all.
func (c CTA) Eligible() bool {
	return c.Enabled && c.Text != "" && c.URL != ""
}

// Announcement is one persisted bar configuration, read-only on the embed path.
type Announcement struct {
	Slug       string           `json:"slug"`
	Visibility bool             `json:"visibility"`
	Type       AnnouncementType `json:"type"`

	// Title and Message hold editor-sanitized rich text for single bars.
	Title   string `json:"title"`
	Message string `json:"message"`
	// Slides holds the carousel items.
	Slides []Slide `json:"slides,omitempty"`

	Background         string        `json:"background"`
	BackgroundGradient string        `json:"background_gradient,omitempty"`
	UseGradient        bool          `json:"use_gradient"`
	TextColor          string        `json:"text_color"`
	FontFamily         string        `json:"font_family"`
	BarHeight          int           `json:"bar_height"`
	TitleFontSize      int           `json:"title_font_size"`
	MessageFontSize    int           `json:"message_font_size"`
	TextAlignment      TextAlignment `json:"text_alignment"`
	IconAlignment      IconAlignment `json:"icon_alignment"`
	Icon               string        `json:"icon"`
	IsSticky           bool          `json:"is_sticky"`
	IsClosable         bool          `json:"is_closable"`

	CTA CTA `json:"cta"`

	AllowedDomain string   `json:"allowed_domain,omitempty"`
	PagePaths     []string `json:"page_paths"`
	GeoCountries  []string `json:"geo_countries"`

	// CarouselSpeed is the rotation interval in milliseconds.
	CarouselSpeed        int  `json:"carousel_speed"`
	CarouselPauseOnHover bool `json:"carousel_pause_on_hover"`
}

// ElementID is the DOM id of the mounted bar, also used as the duplicate-mount guard.
func (a *Announcement) ElementID() string {
	return "announcement-bar-" + a.Slug
}

// RenderType is the variant actually rendered. Marquee and unknown types fall back to single.
func (a *Announcement) RenderType() AnnouncementType {
	if a.Type == TypeCarousel {
		return TypeCarousel
	}
	return TypeSingle
}

// IconKeys lists every icon the bar references, parent first.
func (a *Announcement) IconKeys() []string {
	keys := []string{a.Icon}
	if a.RenderType() != TypeCarousel {
		return keys
	}
	for i := range a.Slides {
		keys = append(keys, a.SlideView(i).Icon)
	}
	return keys
}

// FontFamilies lists every font the bar references, parent first.
func (a *Announcement) FontFamilies() []string {
	fonts := []string{a.FontFamily}
	if a.RenderType() != TypeCarousel {
		return fonts
	}
	for i := range a.Slides {
		fonts = append(fonts, a.SlideView(i).FontFamily)
	}
	return fonts
}
