package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"announcebar/internal/features/announcements/carousel"
	"announcebar/internal/features/announcements/domain"
	"announcebar/internal/features/announcements/icons"
)

func ptr[T any](v T) *T { return &v }

func single() *domain.Announcement {
	a := &domain.Announcement{
		Slug:       "sale",
		Visibility: true,
		Type:       domain.TypeSingle,
		Title:      "Sale",
		Message:    "20% off",
	}
	a.Normalize()
	return a
}

func threeSlides() *domain.Announcement {
	a := &domain.Announcement{
		Slug:        "rotate",
		Visibility:  true,
		Type:        domain.TypeCarousel,
		Background:  "#000000",
		UseGradient: true,
		Icon:        "bell",
		Slides: []domain.Slide{
			{Title: "One", Message: "first"},
			{Title: "Two", Message: "second", Background: ptr("#ff0000"), BackgroundGradient: ptr("#00ff00")},
			{Title: "Three", Message: "third", Icon: ptr("none"), UseGradient: ptr(false)},
		},
	}
	a.Normalize()
	return a
}

// TestSingle_NoCTA verifies the plain scenario renders title and message without an anchor.
func TestSingle_NoCTA(t *testing.T) {
	out := Serialize(Body(single(), icons.Subset(), nil))

	assert.Contains(t, out, ">Sale</span>")
	assert.Contains(t, out, ">20% off</span>")
	assert.NotContains(t, out, "<a ")
	assert.NotContains(t, out, CloseSlotAttr)
}

// TestSingle_CTAEligibility verifies the anchor appears only when enabled with text and url.
func TestSingle_CTAEligibility(t *testing.T) {
	tests := []struct {
		name string
		cta  domain.CTA
		want bool
	}{
		{name: "Eligible", cta: domain.CTA{Enabled: true, Text: "Shop", URL: "https://shop.test"}, want: true},
		{name: "Disabled", cta: domain.CTA{Text: "Shop", URL: "https://shop.test"}},
		{name: "NoText", cta: domain.CTA{Enabled: true, URL: "https://shop.test"}},
		{name: "NoURL", cta: domain.CTA{Enabled: true, Text: "Shop"}},
		{name: "Empty", cta: domain.CTA{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := single()
			a.CTA = tt.cta
			a.Normalize()

			out := Serialize(Body(a, nil, nil))
			assert.Equal(t, tt.want, strings.Contains(out, "<a "))
			if tt.want {
				assert.Contains(t, out, `rel="noopener noreferrer"`)
				assert.Contains(t, out, `target="_blank"`)
				assert.Contains(t, out, "background:#ffffff;color:#111827")
			}
		})
	}
}

// TestSingle_CTAPlacement verifies the CTA precedes the text for right alignment only.
func TestSingle_CTAPlacement(t *testing.T) {
	for _, align := range []domain.TextAlignment{domain.TextLeft, domain.TextCenter, domain.TextRight} {
		t.Run(string(align), func(t *testing.T) {
			a := single()
			a.TextAlignment = align
			a.CTA = domain.CTA{Enabled: true, Text: "Shop", URL: "https://shop.test"}
			a.Normalize()

			out := Serialize(Single(a.View(), nil))
			anchor := strings.Index(out, "<a ")
			message := strings.Index(out, "20% off")
			if align == domain.TextRight {
				assert.Less(t, anchor, message)
			} else {
				assert.Greater(t, anchor, message)
			}
			assert.Contains(t, out, "justify-content:"+align.Justify())
		})
	}
}

// TestSingle_IconSide verifies the icon sits before or after the text block.
func TestSingle_IconSide(t *testing.T) {
	a := single()
	a.Icon = "info"
	set := icons.Subset(a.IconKeys()...)

	out := Serialize(Single(a.View(), set))
	assert.Less(t, strings.Index(out, "<svg"), strings.Index(out, "Sale"))

	a.IconAlignment = domain.IconRight
	out = Serialize(Single(a.View(), set))
	assert.Greater(t, strings.Index(out, "<svg"), strings.Index(out, "20% off"))
}

// TestSingle_IconOutsideSubset verifies icons not in the subset are not rendered.
func TestSingle_IconOutsideSubset(t *testing.T) {
	a := single()
	a.Icon = "flame"

	out := Serialize(Single(a.View(), icons.Subset("bell")))
	assert.NotContains(t, out, "<svg")
}

// TestSingle_CloseSlotMargin verifies the extra margin only for right text with right icon.
func TestSingle_CloseSlotMargin(t *testing.T) {
	a := single()
	a.IsClosable = true

	out := Serialize(Single(a.View(), nil))
	assert.Contains(t, out, CloseSlotAttr)
	assert.NotContains(t, out, "margin-left:16px")

	a.TextAlignment = domain.TextRight
	a.IconAlignment = domain.IconRight
	out = Serialize(Single(a.View(), nil))
	assert.Contains(t, out, "margin-left:16px")
}

// TestSingle_SizesArePixels verifies font sizes are literal px styles.
func TestSingle_SizesArePixels(t *testing.T) {
	a := single()
	a.TitleFontSize = 18
	a.MessageFontSize = 13

	out := Serialize(Single(a.View(), nil))
	assert.Contains(t, out, "font-size:18px")
	assert.Contains(t, out, "font-size:13px")
}

// TestSingle_EmptyTitle verifies a missing title is omitted.
func TestSingle_EmptyTitle(t *testing.T) {
	a := single()
	a.Title = ""

	out := Serialize(Single(a.View(), nil))
	assert.NotContains(t, out, "font-weight:600;font-size:16px")
	assert.Contains(t, out, "20% off")
}

func TestBackground(t *testing.T) {
	v := domain.View{Background: "#111111", BackgroundGradient: "#222222"}
	assert.Equal(t, "#111111", Background(v))
	assert.Equal(t, "#111111", SlideBackground(v))

	v.UseGradient = true
	assert.Equal(t, "linear-gradient(135deg, #111111, #222222)", Background(v))
	assert.Equal(t, "linear-gradient(to right, #111111, #222222)", SlideBackground(v))

	v.BackgroundGradient = ""
	assert.Equal(t, "#111111", Background(v))
}

// TestCarousel_InitialLayout verifies only the first slide is on screen.
func TestCarousel_InitialLayout(t *testing.T) {
	a := threeSlides()
	set := icons.Subset(a.IconKeys()...)

	root := Carousel(a, set, nil)
	if !assert.Len(t, root.Children, 3) {
		return
	}

	active := 0
	for i, child := range root.Children {
		layer := child.(*Element)
		transform, _ := layer.Style.Get("transform")
		opacity, _ := layer.Style.Get("opacity")
		if transform == "translateX(0)" && opacity == "1" {
			active++
			assert.Equal(t, 0, i)
		} else {
			assert.Equal(t, "translateX(100%)", transform)
			assert.Equal(t, "0", opacity)
		}
		position, _ := layer.Style.Get("position")
		assert.Equal(t, "absolute", position)
	}
	assert.Equal(t, 1, active)
}

// TestCarousel_SlideFallback verifies each slide resolves its own presentation.
func TestCarousel_SlideFallback(t *testing.T) {
	a := threeSlides()
	set := icons.Subset(a.IconKeys()...)
	root := Carousel(a, set, nil)

	bg := func(i int) string {
		v, _ := root.Children[i].(*Element).Style.Get("background")
		return v
	}
	assert.Equal(t, "#000000", bg(0))
	assert.Equal(t, "linear-gradient(to right, #ff0000, #00ff00)", bg(1))
	assert.Equal(t, "#000000", bg(2))

	assert.Contains(t, Serialize(root.Children[0]), "<svg")
	assert.NotContains(t, Serialize(root.Children[2]), "<svg")
}

// TestCarousel_Positions verifies explicit positions are applied per layer.
func TestCarousel_Positions(t *testing.T) {
	a := threeSlides()
	a.IsClosable = true
	positions := []carousel.Position{carousel.Exited, carousel.Active, carousel.Staged}

	root := Carousel(a, nil, positions)
	assert.Len(t, root.Children, 4)

	transform, _ := root.Children[0].(*Element).Style.Get("transform")
	assert.Equal(t, "translateX(-100%)", transform)
	transform, _ = root.Children[1].(*Element).Style.Get("transform")
	assert.Equal(t, "translateX(0)", transform)

	out := Serialize(root)
	assert.Contains(t, out, `data-ab-slide="2"`)
	assert.Contains(t, out, "transition:transform 450ms ease-in-out, opacity 450ms ease-in-out")
	assert.Equal(t, 1, strings.Count(out, CloseSlotAttr))
}

// TestCarousel_Empty verifies an empty carousel renders only its frame.
func TestCarousel_Empty(t *testing.T) {
	a := threeSlides()
	a.Slides = nil

	out := Serialize(Body(a, nil, nil))
	assert.NotContains(t, out, SlideAttr)
	assert.Contains(t, out, TrackAttr)
}
