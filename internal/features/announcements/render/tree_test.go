package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerialize_EscapesTextAndAttributes(t *testing.T) {
	n := Div(CSS("color", "red"), Text(`<b>"x" & y</b>`)).With("title", `a"b<c`)

	assert.Equal(t,
		`<div title="a&#34;b&lt;c" style="color:red">&lt;b&gt;&#34;x&#34; &amp; y&lt;/b&gt;</div>`,
		Serialize(n))
}

func TestSerialize_RawAndIconAreVerbatim(t *testing.T) {
	n := Span(nil, Raw("<strong>Sale</strong>"), Icon(`<svg aria-hidden="true"></svg>`))

	assert.Equal(t, `<span><strong>Sale</strong><svg aria-hidden="true"></svg></span>`, Serialize(n))
}

func TestSerialize_NilNodes(t *testing.T) {
	assert.Equal(t, "", Serialize(nil))
	assert.Equal(t, "<div></div>", Serialize(Div(nil, nil)))
}

func TestLink_OpensInNewTab(t *testing.T) {
	got := Serialize(Link("https://shop.test/?a=1&b=2", nil, Text("Go")))

	assert.Equal(t,
		`<a href="https://shop.test/?a=1&amp;b=2" target="_blank" rel="noopener noreferrer">Go</a>`,
		got)
}

func TestStyle(t *testing.T) {
	s := CSS("width", "100%", "height", Px(48)).Set("background", "").Set("color", "#fff")

	assert.Equal(t, "width:100%;height:48px;color:#fff", s.String())

	v, ok := s.Get("height")
	assert.True(t, ok)
	assert.Equal(t, "48px", v)

	_, ok = s.Get("background")
	assert.False(t, ok)
}

func TestFonts(t *testing.T) {
	assert.Equal(t, "announcement-bar-font-open-sans", FontID("Open Sans"))
	assert.Equal(t, "'Inter', "+fontFallback, FontStack("Inter"))
	assert.Equal(t, fontFallback, FontStack(""))

	links := FontLinks("Inter", "Roboto", "Inter", "Comic Sans MS")
	if assert.Len(t, links, 2) {
		assert.Equal(t, "announcement-bar-font-inter", links[0].ID)
		assert.Contains(t, links[0].Href, "family=Inter")
		assert.Equal(t, "announcement-bar-font-roboto", links[1].ID)
	}
}
