// Package render builds the bar markup as a typed node tree and serializes it.
package render

import (
	"html"
	"strings"
)

// Node is one element of the render tree.
type Node interface {
	write(b *strings.Builder)
}

// Attr is a single HTML attribute. Values are escaped on output.
type Attr struct {
	Key   string
	Value string
}

// Element is a container or anchor node.
type Element struct {
	Tag      string
	Attrs    []Attr
	Style    Style
	Children []Node
}

// Text is plain text, escaped on output.
type Text string

// Raw is editor-produced rich text (bold/italic/underline), already sanitized upstream.
// It is written verbatim: this is the trust boundary of the renderer.
type Raw string

// Icon is inline SVG markup taken from the icon table, written verbatim.
type Icon string

// El creates an element with the given inline style and children.
func El(tag string, style Style, children ...Node) *Element {
	return &Element{Tag: tag, Style: style, Children: children}
}

// Div is shorthand for El("div", ...).
func Div(style Style, children ...Node) *Element {
	return El("div", style, children...)
}

// Span is shorthand for El("span", ...).
func Span(style Style, children ...Node) *Element {
	return El("span", style, children...)
}

// Link creates an anchor that opens in a new tab without leaking the opener.
func Link(href string, style Style, children ...Node) *Element {
	return El("a", style, children...).
		With("href", href).
		With("target", "_blank").
		With("rel", "noopener noreferrer")
}

// With appends an attribute and returns the element for chaining.
func (e *Element) With(key, value string) *Element {
	e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
	return e
}

func (e *Element) write(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.Tag)
	for _, a := range e.Attrs {
		writeAttr(b, a.Key, a.Value)
	}
	if len(e.Style) > 0 {
		writeAttr(b, "style", e.Style.String())
	}
	b.WriteByte('>')
	for _, c := range e.Children {
		if c != nil {
			c.write(b)
		}
	}
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteByte('>')
}

func writeAttr(b *strings.Builder, key, value string) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteByte('"')
}

func (t Text) write(b *strings.Builder) {
	b.WriteString(html.EscapeString(string(t)))
}

func (r Raw) write(b *strings.Builder) {
	b.WriteString(string(r))
}

func (i Icon) write(b *strings.Builder) {
	b.WriteString(string(i))
}

// Serialize renders a node tree to markup.
func Serialize(n Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.write(&b)
	return b.String()
}
