package domain

import "strings"

// Slide is one carousel item. Nil presentation fields inherit the parent value;
// a non-nil empty value is kept as an explicit blank.
type Slide struct {
	Title   string `json:"title"`
	Message string `json:"message"`

	Background         *string        `json:"background,omitempty"`
	BackgroundGradient *string        `json:"backgroundGradient,omitempty"`
	UseGradient        *bool          `json:"useGradient,omitempty"`
	TextColor          *string        `json:"textColor,omitempty"`
	FontFamily         *string        `json:"fontFamily,omitempty"`
	TitleFontSize      *int           `json:"titleFontSize,omitempty"`
	MessageFontSize    *int           `json:"messageFontSize,omitempty"`
	TextAlignment      *TextAlignment `json:"textAlignment,omitempty"`
	Icon               *string        `json:"icon,omitempty"`
	IconAlignment      *IconAlignment `json:"iconAlignment,omitempty"`

	CTAEnabled         *bool   `json:"ctaEnabled,omitempty"`
	CTAText            *string `json:"ctaText,omitempty"`
	CTAURL             *string `json:"ctaUrl,omitempty"`
	CTABackgroundColor *string `json:"ctaBackgroundColor,omitempty"`
	CTATextColor       *string `json:"ctaTextColor,omitempty"`
}

// View is a fully resolved presentation, for the parent bar or for one slide.
type View struct {
	Title              string
	Message            string
	Background         string
	BackgroundGradient string
	UseGradient        bool
	TextColor          string
	FontFamily         string
	TitleFontSize      int
	MessageFontSize    int
	TextAlignment      TextAlignment
	IconAlignment      IconAlignment
	Icon               string
	CTA                CTA
	Closable           bool
}

// View returns the parent presentation.
func (a *Announcement) View() View {
	return View{
		Title:              a.Title,
		Message:            a.Message,
		Background:         a.Background,
		BackgroundGradient: a.BackgroundGradient,
		UseGradient:        a.UseGradient,
		TextColor:          a.TextColor,
		FontFamily:         a.FontFamily,
		TitleFontSize:      a.TitleFontSize,
		MessageFontSize:    a.MessageFontSize,
		TextAlignment:      a.TextAlignment,
		IconAlignment:      a.IconAlignment,
		Icon:               a.Icon,
		CTA:                a.CTA,
		Closable:           a.IsClosable,
	}
}

// SlideView resolves slide i field by field against the parent.
// Close handling belongs to the carousel frame, so Closable is always false.
func (a *Announcement) SlideView(i int) View {
	s := a.Slides[i]
	v := a.View()
	v.Title = s.Title
	v.Message = s.Message
	v.Closable = false

	v.Background = pick(s.Background, v.Background)
	v.BackgroundGradient = pick(s.BackgroundGradient, v.BackgroundGradient)
	v.UseGradient = pick(s.UseGradient, v.UseGradient)
	v.TextColor = pick(s.TextColor, v.TextColor)
	v.FontFamily = pick(s.FontFamily, v.FontFamily)
	v.Icon = strings.ToLower(strings.TrimSpace(pick(s.Icon, v.Icon)))

	if size := pick(s.TitleFontSize, 0); size > 0 {
		v.TitleFontSize = size
	}
	if size := pick(s.MessageFontSize, 0); size > 0 {
		v.MessageFontSize = size
	}
	if align := pick(s.TextAlignment, ""); validTextAlignment(align) {
		v.TextAlignment = align
	}
	if align := pick(s.IconAlignment, ""); validIconAlignment(align) {
		v.IconAlignment = align
	}

	v.CTA = CTA{
		Enabled:         pick(s.CTAEnabled, a.CTA.Enabled),
		Text:            pick(s.CTAText, a.CTA.Text),
		URL:             safeURL(pick(s.CTAURL, a.CTA.URL)),
		BackgroundColor: cssValue(pick(s.CTABackgroundColor, a.CTA.BackgroundColor), a.CTA.BackgroundColor),
		TextColor:       cssValue(pick(s.CTATextColor, a.CTA.TextColor), a.CTA.TextColor),
	}
	v.Background = cssValue(v.Background, a.Background)
	v.BackgroundGradient = cssValue(v.BackgroundGradient, "")
	v.TextColor = cssValue(v.TextColor, a.TextColor)
	v.FontFamily = fontName(v.FontFamily, a.FontFamily)

	return v
}

func pick[T any](override *T, parent T) T {
	if override != nil {
		return *override
	}
	return parent
}
