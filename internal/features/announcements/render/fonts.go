package render

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

const fontFallback = "system-ui, -apple-system, 'Segoe UI', sans-serif"

// googleFonts maps supported families to their stylesheet.
var googleFonts = map[string]string{
	"Inter":            "https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap",
	"Roboto":           "https://fonts.googleapis.com/css2?family=Roboto:wght@400;500;700&display=swap",
	"Open Sans":        "https://fonts.googleapis.com/css2?family=Open+Sans:wght@400;600;700&display=swap",
	"Lato":             "https://fonts.googleapis.com/css2?family=Lato:wght@400;700&display=swap",
	"Montserrat":       "https://fonts.googleapis.com/css2?family=Montserrat:wght@400;500;600;700&display=swap",
	"Poppins":          "https://fonts.googleapis.com/css2?family=Poppins:wght@400;500;600;700&display=swap",
	"Raleway":          "https://fonts.googleapis.com/css2?family=Raleway:wght@400;600;700&display=swap",
	"Nunito":           "https://fonts.googleapis.com/css2?family=Nunito:wght@400;600;700&display=swap",
	"Oswald":           "https://fonts.googleapis.com/css2?family=Oswald:wght@400;500;600&display=swap",
	"Playfair Display": "https://fonts.googleapis.com/css2?family=Playfair+Display:wght@400;600;700&display=swap",
	"Merriweather":     "https://fonts.googleapis.com/css2?family=Merriweather:wght@400;700&display=swap",
	"Source Sans 3":    "https://fonts.googleapis.com/css2?family=Source+Sans+3:wght@400;600;700&display=swap",
	"DM Sans":          "https://fonts.googleapis.com/css2?family=DM+Sans:wght@400;500;700&display=swap",
	"Work Sans":        "https://fonts.googleapis.com/css2?family=Work+Sans:wght@400;500;600&display=swap",
}

// FontLink is a stylesheet to load once per page, guarded by its DOM id.
type FontLink struct {
	ID   string `json:"id"`
	Href string `json:"href"`
}

// FontStack returns the CSS font-family value for a family name.
func FontStack(name string) string {
	if name == "" {
		return fontFallback
	}
	return "'" + name + "', " + fontFallback
}

// FontID returns the DOM id used to load a family's stylesheet at most once.
func FontID(name string) string {
	return "announcement-bar-font-" + strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// FontLinks returns the stylesheets for the given families, deduplicated in order.
// Families without a known stylesheet rely on locally installed fonts.
func FontLinks(names ...string) []FontLink {
	seen := mapset.NewThreadUnsafeSet[string]()
	links := make([]FontLink, 0, len(names))
	for _, name := range names {
		href, ok := googleFonts[name]
		if !ok || !seen.Add(name) {
			continue
		}
		links = append(links, FontLink{ID: FontID(name), Href: href})
	}
	return links
}
