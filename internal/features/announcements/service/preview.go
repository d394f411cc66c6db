package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"announcebar/internal/features/announcements/carousel"
	"announcebar/internal/features/announcements/domain"
	"announcebar/internal/features/announcements/icons"
	"announcebar/internal/features/announcements/mount"
	"announcebar/internal/features/announcements/render"
)

var previewPage = template.Must(template.New("preview").Parse(`<!doctype html>
<html lang="en" style="{{.RootStyle}}">
<head>
<meta charset="utf-8">
<meta name="robots" content="noindex">
<title>Preview: {{.Slug}}</title>
{{range .Fonts}}<link id="{{.ID}}" rel="stylesheet" href="{{.Href}}">
{{end}}</head>
<body style="{{.BodyStyle}}" data-preview-at="{{.AtMS}}" data-active-slide="{{.Active}}"{{if .Gated}} data-gated="{{.Gated}}"{{end}}>
{{.Bar}}
<main style="padding:24px;font-family:system-ui,sans-serif;color:#374151">Page content</main>
</body>
</html>
`))

type previewData struct {
	Slug      string
	RootStyle template.CSS
	BodyStyle template.CSS
	Fonts     []render.FontLink
	Bar       template.HTML
	AtMS      int64
	Active    int
	Gated     string
}

// Preview renders the bar server-side as it would look at virtual time at
// after mount on page. When the domain or path gate would stop the embed
// script, the page is rendered without the bar and names the gate.
// Geo targeting does not apply.
func (s *EmbedServiceImpl) Preview(ctx context.Context, slug string, at time.Duration, page domain.PageContext) ([]byte, error) {
	a, err := s.load(ctx, slug)
	if err != nil {
		return nil, err
	}
	if at < 0 {
		at = 0
	}

	if gate := a.PageGate(page); gate != domain.GateNone {
		return renderPreview(previewData{
			Slug:      a.Slug,
			BodyStyle: template.CSS(mount.NewPageLayout(0).BodyStyle().String()),
			AtMS:      at.Milliseconds(),
			Active:    -1,
			Gated:     string(gate),
		})
	}

	var positions []carousel.Position
	active := -1
	if a.RenderType() == domain.TypeCarousel {
		positions, active = carouselAt(a, at)
	}

	layout := mount.NewPageLayout(0)
	placement := mount.NewPlacement(a)
	if _, err := mount.NewController(layout).Mount(placement); err != nil {
		return nil, fmt.Errorf("service: failed to mount preview: %w", err)
	}

	body := render.Body(a, icons.Subset(a.IconKeys()...), positions)
	data := previewData{
		Slug:      a.Slug,
		RootStyle: template.CSS(layout.RootStyle().String()),
		BodyStyle: template.CSS(layout.BodyStyle().String()),
		Fonts:     render.FontLinks(a.FontFamilies()...),
		// Serialized render tree: text is escaped, rich text is trusted editor output.
		Bar:    template.HTML(render.Serialize(mount.Container(placement, body))),
		AtMS:   at.Milliseconds(),
		Active: active,
	}

	return renderPreview(data)
}

func renderPreview(data previewData) ([]byte, error) {
	var buf bytes.Buffer
	if err := previewPage.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("service: failed to render preview: %w", err)
	}
	return buf.Bytes(), nil
}

// carouselAt runs the rotation machine on a virtual clock up to at.
// Rotation is periodic after the first full cycle, so at is folded into
// [cycle, 2*cycle) to keep the simulation bounded.
func carouselAt(a *domain.Announcement, at time.Duration) ([]carousel.Position, int) {
	interval := carousel.NormalizeInterval(a.CarouselSpeed)
	clock := carousel.NewVirtualClock()
	m := carousel.New(len(a.Slides), clock, carousel.Options{
		Interval:     interval,
		PauseOnHover: a.CarouselPauseOnHover,
	})
	m.Start()

	if cycle := interval * time.Duration(len(a.Slides)); cycle > 0 && at >= cycle {
		at = cycle + (at-cycle)%cycle
	}
	if m.Running() {
		clock.Advance(at)
	}
	return m.Positions(), m.Index()
}
