// Package carousel implements the slide rotation state machine of carousel bars.
package carousel

import "time"

const (
	// AnimationDuration is the slide-out/slide-in transition window.
	AnimationDuration = 450 * time.Millisecond
	// DefaultInterval is the rotation interval when none is configured.
	DefaultInterval = 5000 * time.Millisecond
)

// NormalizeInterval converts a configured speed in milliseconds to a rotation interval.
// Intervals not strictly longer than the animation window fall back to the default,
// so a tick never fires while the previous transition is still settling.
func NormalizeInterval(ms int) time.Duration {
	d := time.Duration(ms) * time.Millisecond
	if d <= AnimationDuration {
		return DefaultInterval
	}
	return d
}

// State is the rotation state.
type State int

const (
	Idle State = iota
	Transitioning
)

func (s State) String() string {
	if s == Transitioning {
		return "transitioning"
	}
	return "idle"
}

// Options configures a Machine.
type Options struct {
	Interval     time.Duration
	PauseOnHover bool
}

// Machine rotates n slides: Idle(i) -> Transitioning(i, i+1 mod n) -> Idle(i+1 mod n).
type Machine struct {
	sched     Scheduler
	opts      Options
	positions []Position

	index   int
	from    int
	state   State
	running bool
	paused  bool
	gen     int

	stopTimer  Cancel
	stopSettle Cancel
}

// New returns a machine in Idle(0) with the mount-time layout.
func New(n int, sched Scheduler, opts Options) *Machine {
	if opts.Interval <= AnimationDuration {
		opts.Interval = DefaultInterval
	}
	return &Machine{
		sched:     sched,
		opts:      opts,
		positions: InitialPositions(n),
		from:      -1,
	}
}

// Start begins rotation. Carousels with fewer than two slides never start.
func (m *Machine) Start() {
	if m.running || len(m.positions) <= 1 {
		return
	}
	m.running = true
	if !m.paused {
		m.startTimer()
	}
}

// Stop cancels the rotation timer and any pending settle step.
func (m *Machine) Stop() {
	m.running = false
	m.cancelTimer()
	if m.stopSettle != nil {
		m.stopSettle()
		m.stopSettle = nil
	}
}

// Tick advances to the next slide. It is the rotation timer callback.
func (m *Machine) Tick() {
	n := len(m.positions)
	if n <= 1 {
		return
	}
	if m.state == Transitioning {
		m.settle()
	}

	from := m.index
	to := (from + 1) % n

	m.positions[from] = Exited
	// The client forces a reflow between staging and entering.
	m.positions[to] = Staged
	m.positions[to] = Active

	m.index = to
	m.from = from
	m.state = Transitioning
	m.gen++

	gen := m.gen
	m.stopSettle = m.sched.After(AnimationDuration, func() {
		if m.gen == gen && m.state == Transitioning {
			m.settle()
		}
	})
}

// settle stages the outgoing slide on the right for its next entry.
func (m *Machine) settle() {
	if m.from >= 0 && m.from < len(m.positions) && m.from != m.index {
		m.positions[m.from] = Staged
	}
	m.from = -1
	m.state = Idle
	m.stopSettle = nil
}

// MouseEnter pauses rotation when pause-on-hover is enabled.
// The current index and any in-flight transition are left untouched.
func (m *Machine) MouseEnter() {
	if !m.opts.PauseOnHover {
		return
	}
	m.paused = true
	m.cancelTimer()
}

// MouseLeave resumes rotation after a hover pause.
func (m *Machine) MouseLeave() {
	if !m.opts.PauseOnHover || !m.paused {
		return
	}
	m.paused = false
	if m.running {
		m.startTimer()
	}
}

// Resize changes the slide count, clamping the index to the new range.
func (m *Machine) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if m.index >= n {
		m.index = max(n-1, 0)
	}
	m.positions = make([]Position, n)
	for i := range m.positions {
		m.positions[i] = Staged
	}
	if n > 0 {
		m.positions[m.index] = Active
	}
	m.from = -1
	m.state = Idle
	if n <= 1 {
		m.Stop()
	}
}

func (m *Machine) startTimer() {
	m.cancelTimer()
	m.stopTimer = m.sched.Every(m.opts.Interval, m.Tick)
}

func (m *Machine) cancelTimer() {
	if m.stopTimer != nil {
		m.stopTimer()
		m.stopTimer = nil
	}
}

// Index returns the active slide.
func (m *Machine) Index() int { return m.index }

// State returns the rotation state.
func (m *Machine) State() State { return m.state }

// Paused reports whether rotation is paused by hover.
func (m *Machine) Paused() bool { return m.paused }

// Running reports whether the machine has been started and not stopped.
func (m *Machine) Running() bool { return m.running }

// Len returns the slide count.
func (m *Machine) Len() int { return len(m.positions) }

// Positions returns a copy of the current slide layout.
func (m *Machine) Positions() []Position {
	out := make([]Position, len(m.positions))
	copy(out, m.positions)
	return out
}
