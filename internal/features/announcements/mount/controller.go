package mount

import (
	"errors"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"announcebar/internal/features/announcements/domain"
	"announcebar/internal/features/announcements/render"
)

// ErrAlreadyMounted is returned when a bar with the same element id is already on the page.
var ErrAlreadyMounted = errors.New("announcement bar already mounted")

// containerZIndex keeps the bar above typical host page chrome.
const containerZIndex = "2147483000"

// Placement describes what a mount touches on the host page.
type Placement struct {
	ElementID string
	Height    int
	Sticky    bool
	Closable  bool
	Style     render.Style
}

// NewPlacement derives the mount placement of a normalized announcement.
func NewPlacement(a *domain.Announcement) Placement {
	return Placement{
		ElementID: a.ElementID(),
		Height:    a.BarHeight,
		Sticky:    a.IsSticky,
		Closable:  a.IsClosable,
		Style:     ContainerStyle(a),
	}
}

// ContainerStyle is the inline style of the outer bar container.
func ContainerStyle(a *domain.Announcement) render.Style {
	v := a.View()
	s := render.CSS(
		"width", "100%",
		"height", render.Px(a.BarHeight),
		"display", "flex",
		"align-items", "center",
		"justify-content", v.TextAlignment.Justify(),
		"box-sizing", "border-box",
		"overflow", "hidden",
	).
		Set("background", render.Background(v)).
		Set("color", v.TextColor).
		Set("font-family", render.FontStack(v.FontFamily)).
		Set("z-index", containerZIndex)

	if a.IsSticky {
		return s.Set("position", "fixed").Set("top", "0").Set("left", "0").Set("right", "0")
	}
	return s.Set("position", "relative")
}

// Container wraps the rendered body in the outer bar element.
func Container(placement Placement, body render.Node) *render.Element {
	return render.Div(placement.Style, body).With("id", placement.ElementID).With("role", "region")
}

// Controller mounts bars onto one page and enforces at most one instance per element id.
type Controller struct {
	layout  HostLayout
	mu      sync.Mutex
	mounted mapset.Set[string]
}

// NewController creates a controller bound to a host layout.
func NewController(layout HostLayout) *Controller {
	return &Controller{layout: layout, mounted: mapset.NewThreadUnsafeSet[string]()}
}

// Mount applies the layout adjustments of placement.
func (c *Controller) Mount(placement Placement) (*Mounted, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.mounted.Add(placement.ElementID) {
		return nil, ErrAlreadyMounted
	}

	m := &Mounted{controller: c, placement: placement}
	if placement.Sticky {
		c.layout.ReserveTopSpace(placement.Height)
		m.reserved = placement.Height
	}
	c.layout.SetRootProperty(HeightProperty, render.Px(placement.Height))
	return m, nil
}

// Mounted is a live bar. Close undoes exactly what Mount applied.
type Mounted struct {
	controller *Controller
	placement  Placement
	reserved   int
	closed     bool
}

// Close removes the bar. Calling it again, or on a non-closable bar, does nothing.
func (m *Mounted) Close() {
	c := m.controller
	c.mu.Lock()
	defer c.mu.Unlock()

	if m.closed || !m.placement.Closable {
		return
	}
	m.closed = true
	if m.reserved > 0 {
		c.layout.ReleaseTopSpace(m.reserved)
		m.reserved = 0
	}
	c.layout.RemoveRootProperty(HeightProperty)
	c.mounted.Remove(m.placement.ElementID)
}

// Closed reports whether the bar was closed.
func (m *Mounted) Closed() bool {
	m.controller.mu.Lock()
	defer m.controller.mu.Unlock()
	return m.closed
}
