// Package script generates the self-executing JavaScript served to host pages.
package script

import (
	"bytes"
	_ "embed"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"announcebar/internal/features/announcements/render"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:embed runtime.js
var runtime []byte

const placeholder = "/*@payload*/"

// CarouselConfig drives client-side rotation.
type CarouselConfig struct {
	Slides       int  `json:"slides"`
	IntervalMS   int  `json:"intervalMs"`
	AnimationMS  int  `json:"animationMs"`
	PauseOnHover bool `json:"pauseOnHover"`
}

// Payload is everything the client runtime needs, inlined as a JSON literal.
type Payload struct {
	Slug           string            `json:"slug"`
	ElementID      string            `json:"elementId"`
	AllowedDomain  string            `json:"allowedDomain"`
	PagePaths      []string          `json:"pagePaths"`
	Height         int               `json:"height"`
	HeightProperty string            `json:"heightProperty"`
	Sticky         bool              `json:"sticky"`
	Closable       bool              `json:"closable"`
	ContainerStyle string            `json:"containerStyle"`
	HTML           string            `json:"html"`
	Fonts          []render.FontLink `json:"fonts"`
	Carousel       *CarouselConfig   `json:"carousel"`
}

// Build returns the embed script for payload.
func Build(p Payload) ([]byte, error) {
	if p.PagePaths == nil {
		p.PagePaths = []string{}
	}
	if p.Fonts == nil {
		p.Fonts = []render.FontLink{}
	}

	encoded, err := literal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode embed payload: %w", err)
	}
	if !bytes.Contains(runtime, []byte(placeholder)) {
		return nil, fmt.Errorf("embed runtime has no payload placeholder")
	}
	return bytes.Replace(runtime, []byte(placeholder), encoded, 1), nil
}

// Noop is served when the visitor is not targeted. It does not say why.
func Noop() []byte {
	return []byte(`(function(){try{if(window.console&&console.debug){console.debug("[announcement-bar] nothing to show");}}catch(e){}})();` + "\n")
}

// Failure is served with HTTP 500. It only logs and never throws.
func Failure(msg string) []byte {
	quoted, err := literal(msg)
	if err != nil {
		quoted = []byte(`"internal error"`)
	}
	return []byte(`(function(){try{if(window.console&&console.error){console.error("[announcement-bar] " + ` + string(quoted) + `);}}catch(e){}})();` + "\n")
}

// literal encodes v as JSON that is safe inside an inline script.
func literal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	b = bytes.ReplaceAll(b, []byte("\u2028"), []byte(`\u2028`))
	b = bytes.ReplaceAll(b, []byte("\u2029"), []byte(`\u2029`))
	return b, nil
}
