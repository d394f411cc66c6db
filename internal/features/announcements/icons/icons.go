// Package icons resolves the closed set of bar icon names to inline SVG markup.
package icons

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// None is the key for "no icon".
const None = "none"

const (
	svgOpen  = `<svg xmlns="http://www.w3.org/2000/svg" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true" focusable="false">`
	svgClose = `</svg>`
)

// catalog keeps the icons in their canonical order.
var catalog = build([][2]string{
	{"warning", `<path d="m21.73 18-8-14a2 2 0 0 0-3.48 0l-8 14A2 2 0 0 0 4 21h16a2 2 0 0 0 1.73-3"/><path d="M12 9v4"/><path d="M12 17h.01"/>`},
	{"alert", `<circle cx="12" cy="12" r="10"/><line x1="12" x2="12" y1="8" y2="12"/><line x1="12" x2="12.01" y1="16" y2="16"/>`},
	{"info", `<circle cx="12" cy="12" r="10"/><path d="M12 16v-4"/><path d="M12 8h.01"/>`},
	{"success", `<circle cx="12" cy="12" r="10"/><path d="m9 12 2 2 4-4"/>`},
	{"schedule", `<circle cx="12" cy="12" r="10"/><polyline points="12 6 12 12 16 14"/>`},
	{"shopping", `<circle cx="8" cy="21" r="1"/><circle cx="19" cy="21" r="1"/><path d="M2.05 2.05h2l2.66 12.42a2 2 0 0 0 2 1.58h9.78a2 2 0 0 0 1.95-1.57l1.65-7.43H5.12"/>`},
	{"lightbulb", `<path d="M15 14c.2-1 .7-1.7 1.5-2.5 1-.9 1.5-2.2 1.5-3.5A6 6 0 0 0 6 8c0 1 .2 2.2 1.5 3.5.7.7 1.3 1.5 1.5 2.5"/><path d="M9 18h6"/><path d="M10 22h4"/>`},
	{"sparkles", `<path d="m12 3-1.9 5.8a2 2 0 0 1-1.3 1.3L3 12l5.8 1.9a2 2 0 0 1 1.3 1.3L12 21l1.9-5.8a2 2 0 0 1 1.3-1.3L21 12l-5.8-1.9a2 2 0 0 1-1.3-1.3Z"/><path d="M5 3v4"/><path d="M19 17v4"/><path d="M3 5h4"/><path d="M17 19h4"/>`},
	{"bell", `<path d="M6 8a6 6 0 0 1 12 0c0 7 3 9 3 9H3s3-2 3-9"/><path d="M10.3 21a1.94 1.94 0 0 0 3.4 0"/>`},
	{"message", `<path d="M7.9 20A9 9 0 1 0 4 16.1L2 22Z"/>`},
	{"megaphone", `<path d="m3 11 18-5v12L3 14v-3z"/><path d="M11.6 16.8a3 3 0 1 1-5.8-1.6"/>`},
	{"flame", `<path d="M8.5 14.5A2.5 2.5 0 0 0 11 12c0-1.38-.5-2-1-3-1.072-2.143-.224-4.054 2-6 .5 2.5 2 4.9 4 6.5 2 1.6 3 3.5 3 5.5a7 7 0 1 1-14 0c0-1.153.433-2.294 1-3a2.5 2.5 0 0 0 2.5 2.5z"/>`},
	{"package", `<path d="m7.5 4.27 9 5.15"/><path d="M21 8a2 2 0 0 0-1-1.73l-7-4a2 2 0 0 0-2 0l-7 4A2 2 0 0 0 3 8v8a2 2 0 0 0 1 1.73l7 4a2 2 0 0 0 2 0l7-4A2 2 0 0 0 21 16Z"/><path d="m3.3 7 8.7 5 8.7-5"/><path d="M12 22V12"/>`},
	{"flask", `<path d="M10 2v7.527a2 2 0 0 1-.211.896L4.72 20.55a1 1 0 0 0 .9 1.45h12.76a1 1 0 0 0 .9-1.45l-5.069-10.127A2 2 0 0 1 14 9.527V2"/><path d="M8.5 2h7"/><path d="M7 16h10"/>`},
})

func build(entries [][2]string) *orderedmap.OrderedMap[string, string] {
	m := orderedmap.New[string, string](len(entries))
	for _, e := range entries {
		m.Set(e[0], svgOpen+e[1]+svgClose)
	}
	return m
}

// Keys returns every resolvable icon name in canonical order, excluding None.
func Keys() []string {
	keys := make([]string, 0, catalog.Len())
	for pair := catalog.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Resolve returns the SVG markup for key, or "" for None and unknown keys.
func Resolve(key string) string {
	svg, _ := catalog.Get(key)
	return svg
}

// Set is the subset of icons referenced by one bar.
type Set struct {
	icons *orderedmap.OrderedMap[string, string]
}

// Subset resolves only the referenced keys, deduplicated in first-reference order.
// None and unknown keys are skipped.
func Subset(keys ...string) *Set {
	s := &Set{icons: orderedmap.New[string, string]()}
	for _, k := range keys {
		if svg := Resolve(k); svg != "" {
			s.icons.Set(k, svg)
		}
	}
	return s
}

// Lookup returns the markup for key if it is part of the subset.
func (s *Set) Lookup(key string) string {
	if s == nil {
		return ""
	}
	svg, _ := s.icons.Get(key)
	return svg
}

// Keys returns the subset keys in first-reference order.
func (s *Set) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, s.icons.Len())
	for pair := s.icons.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of icons in the subset.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.icons.Len()
}
