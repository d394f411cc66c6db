package render

import (
	"strconv"
	"time"

	"announcebar/internal/features/announcements/carousel"
	"announcebar/internal/features/announcements/domain"
)

const (
	// CloseSlotAttr marks the element the client appends the close control into.
	CloseSlotAttr = "data-ab-close-slot"
	// SlideAttr marks a carousel layer and carries its index.
	SlideAttr = "data-ab-slide"
	// TrackAttr marks the element carrying carousel hover listeners.
	TrackAttr = "data-ab-track"
	// CTAAttr marks the call-to-action anchor.
	CTAAttr = "data-ab-cta"
)

// IconLookup resolves icon keys to markup. *icons.Set satisfies it.
type IconLookup interface {
	Lookup(key string) string
}

// Body renders the inner content of the bar for its render type.
// positions is only used by carousels; nil means the initial layout.
func Body(a *domain.Announcement, icons IconLookup, positions []carousel.Position) Node {
	if a.RenderType() == domain.TypeCarousel {
		return Carousel(a, icons, positions)
	}
	return Single(a.View(), icons)
}

// Single composes [icon?][title?][message][CTA?][closeSlot] as one flex row.
func Single(v domain.View, icons IconLookup) *Element {
	row := Div(CSS(
		"display", "flex",
		"align-items", "center",
		"justify-content", v.TextAlignment.Justify(),
		"gap", "12px",
		"width", "100%",
		"height", "100%",
		"padding", "0 16px",
		"box-sizing", "border-box",
	))

	content := contentBlock(v, icons)
	cta := ctaNode(v)

	if cta != nil && v.TextAlignment == domain.TextRight {
		row.Children = append(row.Children, cta, content)
	} else {
		row.Children = append(row.Children, content)
		if cta != nil {
			row.Children = append(row.Children, cta)
		}
	}

	if v.Closable {
		slot := Span(CSS("display", "inline-flex", "align-items", "center"))
		if v.TextAlignment == domain.TextRight && v.IconAlignment == domain.IconRight {
			slot.Style = slot.Style.Set("margin-left", "16px")
		}
		row.Children = append(row.Children, slot.With(CloseSlotAttr, ""))
	}
	return row
}

// Carousel stacks every slide as an absolutely positioned layer in one track.
// Slides missing from positions take their initial placement.
func Carousel(a *domain.Announcement, icons IconLookup, positions []carousel.Position) *Element {
	if len(positions) != len(a.Slides) {
		positions = carousel.InitialPositions(len(a.Slides))
	}
	transition := "transform " + ms(carousel.AnimationDuration) + " ease-in-out, opacity " + ms(carousel.AnimationDuration) + " ease-in-out"

	track := Div(CSS(
		"position", "relative",
		"width", "100%",
		"height", "100%",
		"overflow", "hidden",
	)).With(TrackAttr, "")

	for i := range a.Slides {
		v := a.SlideView(i)
		p := positions[i]
		layer := Div(CSS(
			"position", "absolute",
			"top", "0",
			"left", "0",
			"width", "100%",
			"height", "100%",
			"display", "flex",
			"align-items", "center",
		).
			Set("background", SlideBackground(v)).
			Set("color", v.TextColor).
			Set("font-family", FontStack(v.FontFamily)).
			Set("transform", p.Transform()).
			Set("opacity", strconv.Itoa(p.Opacity)).
			Set("transition", transition),
			Single(v, icons),
		).With(SlideAttr, strconv.Itoa(i))
		track.Children = append(track.Children, layer)
	}

	if a.IsClosable {
		slot := Span(CSS(
			"position", "absolute",
			"top", "50%",
			"right", "12px",
			"transform", "translateY(-50%)",
			"z-index", "2",
			"display", "inline-flex",
		)).With(CloseSlotAttr, "")
		track.Children = append(track.Children, slot)
	}
	return track
}

func contentBlock(v domain.View, icons IconLookup) *Element {
	block := Div(CSS(
		"display", "flex",
		"align-items", "center",
		"gap", "8px",
		"min-width", "0",
	))

	var icon Node
	if svg := lookup(icons, v.Icon); svg != "" {
		icon = Span(CSS("display", "inline-flex", "flex-shrink", "0"), Icon(svg))
	}

	text := Div(CSS("display", "flex", "flex-wrap", "wrap", "align-items", "baseline", "gap", "6px"))
	if v.Title != "" {
		text.Children = append(text.Children,
			Span(CSS("font-weight", "600", "font-size", Px(v.TitleFontSize)), Raw(v.Title)))
	}
	text.Children = append(text.Children,
		Span(CSS("font-size", Px(v.MessageFontSize)), Raw(v.Message)))

	switch {
	case icon == nil:
		block.Children = append(block.Children, text)
	case v.IconAlignment == domain.IconRight:
		block.Children = append(block.Children, text, icon)
	default:
		block.Children = append(block.Children, icon, text)
	}
	return block
}

func ctaNode(v domain.View) Node {
	if !v.CTA.Eligible() {
		return nil
	}
	style := CSS(
		"display", "inline-block",
		"padding", "6px 14px",
		"border-radius", "4px",
		"text-decoration", "none",
		"font-size", Px(v.MessageFontSize),
		"font-weight", "600",
		"white-space", "nowrap",
		"flex-shrink", "0",
	).
		Set("background", v.CTA.BackgroundColor).
		Set("color", v.CTA.TextColor)
	return Link(v.CTA.URL, style, Text(v.CTA.Text)).With(CTAAttr, "")
}

func lookup(icons IconLookup, key string) string {
	if icons == nil || key == "" {
		return ""
	}
	return icons.Lookup(key)
}

func ms(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}
