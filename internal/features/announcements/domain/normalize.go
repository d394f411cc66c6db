package domain

import (
	"net/url"
	"strings"
)

// Defaults applied to missing or malformed fields.
const (
	DefaultBackground      = "#111827"
	DefaultTextColor       = "#ffffff"
	DefaultFontFamily      = "Inter"
	DefaultBarHeight       = 48
	DefaultTitleFontSize   = 16
	DefaultMessageFontSize = 14
	DefaultCTABackground   = "#ffffff"
	DefaultCTATextColor    = "#111827"
	DefaultCarouselSpeed   = 5000

	minBarHeight = 24
	maxBarHeight = 400
)

// Normalize replaces missing or malformed fields with defaults so the bar always renders.
// It is idempotent.
func (a *Announcement) Normalize() {
	switch a.Type {
	case TypeSingle, TypeCarousel, TypeMarquee:
	default:
		a.Type = TypeSingle
	}

	a.Background = orDefault(cssValue(a.Background, ""), DefaultBackground)
	a.BackgroundGradient = cssValue(a.BackgroundGradient, "")
	a.TextColor = orDefault(cssValue(a.TextColor, ""), DefaultTextColor)
	a.FontFamily = fontName(a.FontFamily, DefaultFontFamily)

	if a.BarHeight < minBarHeight || a.BarHeight > maxBarHeight {
		a.BarHeight = DefaultBarHeight
	}
	if a.TitleFontSize <= 0 {
		a.TitleFontSize = DefaultTitleFontSize
	}
	if a.MessageFontSize <= 0 {
		a.MessageFontSize = DefaultMessageFontSize
	}
	if !validTextAlignment(a.TextAlignment) {
		a.TextAlignment = TextCenter
	}
	if !validIconAlignment(a.IconAlignment) {
		a.IconAlignment = IconLeft
	}
	a.Icon = strings.ToLower(strings.TrimSpace(a.Icon))

	a.CTA.Text = strings.TrimSpace(a.CTA.Text)
	a.CTA.URL = safeURL(a.CTA.URL)
	a.CTA.BackgroundColor = orDefault(cssValue(a.CTA.BackgroundColor, ""), DefaultCTABackground)
	a.CTA.TextColor = orDefault(cssValue(a.CTA.TextColor, ""), DefaultCTATextColor)

	a.AllowedDomain = strings.ToLower(strings.TrimSpace(a.AllowedDomain))
	a.PagePaths = compact(a.PagePaths, false)
	a.GeoCountries = compact(a.GeoCountries, true)

	if a.CarouselSpeed <= 0 {
		a.CarouselSpeed = DefaultCarouselSpeed
	}
}

func validTextAlignment(t TextAlignment) bool {
	return t == TextLeft || t == TextCenter || t == TextRight
}

func validIconAlignment(i IconAlignment) bool {
	return i == IconLeft || i == IconRight
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// cssValue keeps v when it is safe inside an inline style declaration, otherwise returns fallback.
func cssValue(v, fallback string) string {
	v = strings.TrimSpace(v)
	if strings.ContainsAny(v, ";{}<>\"\\") || strings.Contains(strings.ToLower(v), "url(") {
		return fallback
	}
	return v
}

// fontName strips anything that could not appear in a font family name.
func fontName(v, fallback string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(v) {
		if r == ' ' || r == '-' || r == '_' || ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return fallback
	}
	return b.String()
}

// safeURL drops CTA targets with schemes that would execute on the host page.
func safeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto", "tel":
		return raw
	default:
		return ""
	}
}

func compact(values []string, upper bool) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if upper {
			v = strings.ToUpper(v)
		}
		out = append(out, v)
	}
	return out
}
