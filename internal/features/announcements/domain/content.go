package domain

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type singleContent struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type carouselEnvelope struct {
	singleContent
	Items []Slide `json:"items"`
}

// DecodeContent fills the content fields from the stored JSON column.
// Single bars store {title, message}; carousels store an array of slides,
// or an object with an "items" array.
func (a *Announcement) DecodeContent(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if raw[0] == '[' {
		var slides []Slide
		if err := json.Unmarshal(raw, &slides); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidContent, err)
		}
		a.Slides = slides
		return nil
	}

	var env carouselEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	a.Title = env.Title
	a.Message = env.Message
	a.Slides = env.Items
	return nil
}
