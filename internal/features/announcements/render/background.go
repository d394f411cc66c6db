package render

import "announcebar/internal/features/announcements/domain"

// Background returns the CSS background of the single-bar container.
func Background(v domain.View) string {
	return gradient("135deg", v)
}

// SlideBackground returns the CSS background of one carousel slide layer.
func SlideBackground(v domain.View) string {
	return gradient("to right", v)
}

func gradient(direction string, v domain.View) string {
	if v.UseGradient && v.Background != "" && v.BackgroundGradient != "" {
		return "linear-gradient(" + direction + ", " + v.Background + ", " + v.BackgroundGradient + ")"
	}
	return v.Background
}
