package render

import (
	"strconv"
	"strings"
)

// Decl is one CSS declaration.
type Decl struct {
	Prop  string
	Value string
}

// Style is an ordered list of inline CSS declarations.
type Style []Decl

// CSS builds a style from alternating property/value pairs.
func CSS(pairs ...string) Style {
	s := make(Style, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		s = append(s, Decl{Prop: pairs[i], Value: pairs[i+1]})
	}
	return s
}

// Set appends a declaration. Empty values are skipped.
func (s Style) Set(prop, value string) Style {
	if value == "" {
		return s
	}
	return append(s, Decl{Prop: prop, Value: value})
}

// Get returns the last value of prop.
func (s Style) Get(prop string) (string, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Prop == prop {
			return s[i].Value, true
		}
	}
	return "", false
}

// String renders "prop:value;prop:value".
func (s Style) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = d.Prop + ":" + d.Value
	}
	return strings.Join(parts, ";")
}

// Px formats a pixel length.
func Px(n int) string {
	return strconv.Itoa(n) + "px"
}
