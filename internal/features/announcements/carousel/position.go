package carousel

// Position is the transform/opacity pair applied to one slide layer.
type Position struct {
	TranslateX string
	Opacity    int
}

var (
	// Active is the on-screen slide.
	Active = Position{TranslateX: "0", Opacity: 1}
	// Staged waits off-screen to the right for its next entry.
	Staged = Position{TranslateX: "100%", Opacity: 0}
	// Exited is the slide leaving to the left.
	Exited = Position{TranslateX: "-100%", Opacity: 0}
)

// Transform returns the CSS transform value.
func (p Position) Transform() string {
	return "translateX(" + p.TranslateX + ")"
}

// IsActive reports whether the layer is fully visible.
func (p Position) IsActive() bool {
	return p == Active
}

// InitialPositions returns the mount-time layout: first slide active, the rest staged.
func InitialPositions(n int) []Position {
	positions := make([]Position, n)
	for i := range positions {
		positions[i] = Staged
	}
	if n > 0 {
		positions[0] = Active
	}
	return positions
}
