// Package mount places the bar container on a host page and owns the layout
// adjustments it makes there.
package mount

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"announcebar/internal/features/announcements/render"
)

// HeightProperty is the CSS custom property published on the document root.
const HeightProperty = "--announcement-bar-height"

// HostLayout is the page-global state the bar is allowed to touch.
type HostLayout interface {
	ReserveTopSpace(px int)
	ReleaseTopSpace(px int)
	SetRootProperty(name, value string)
	RemoveRootProperty(name string)
}

// PageLayout is a HostLayout that records the adjustments for a server-rendered page.
type PageLayout struct {
	base  int
	extra int
	props *orderedmap.OrderedMap[string, string]
}

// NewPageLayout starts from an existing body top margin in px.
func NewPageLayout(baseMargin int) *PageLayout {
	return &PageLayout{base: baseMargin, props: orderedmap.New[string, string]()}
}

func (p *PageLayout) ReserveTopSpace(px int) { p.extra += px }

func (p *PageLayout) ReleaseTopSpace(px int) {
	p.extra -= px
	if p.extra < 0 {
		p.extra = 0
	}
}

func (p *PageLayout) SetRootProperty(name, value string) { p.props.Set(name, value) }

func (p *PageLayout) RemoveRootProperty(name string) { p.props.Delete(name) }

// MarginTop is the effective body top margin in px.
func (p *PageLayout) MarginTop() int {
	return p.base + p.extra
}

// RootProperty returns a custom property set on the document root.
func (p *PageLayout) RootProperty(name string) (string, bool) {
	return p.props.Get(name)
}

// BodyStyle is the inline style for the page body.
func (p *PageLayout) BodyStyle() render.Style {
	return render.CSS("margin", "0", "margin-top", render.Px(p.MarginTop()))
}

// RootStyle is the inline style for the document root, in insertion order.
func (p *PageLayout) RootStyle() render.Style {
	var s render.Style
	for pair := p.props.Oldest(); pair != nil; pair = pair.Next() {
		s = s.Set(pair.Key, pair.Value)
	}
	return s
}
