package carousel

import (
	"sort"
	"time"
)

// Cancel stops a scheduled callback. Calling it more than once is safe.
type Cancel func()

// Scheduler abstracts setInterval/setTimeout.
type Scheduler interface {
	// Every runs fn every d until canceled.
	Every(d time.Duration, fn func()) Cancel
	// After runs fn once after d unless canceled.
	After(d time.Duration, fn func()) Cancel
}

type virtualTimer struct {
	at       time.Duration
	every    time.Duration
	seq      int
	fn       func()
	canceled bool
}

// VirtualClock is a Scheduler driven by explicit Advance calls.
// It is not safe for concurrent use.
type VirtualClock struct {
	now    time.Duration
	seq    int
	timers []*virtualTimer
}

// NewVirtualClock returns a clock at time zero.
func NewVirtualClock() *VirtualClock {
	return &VirtualClock{}
}

// Now returns the elapsed virtual time.
func (c *VirtualClock) Now() time.Duration {
	return c.now
}

// Every implements Scheduler.
func (c *VirtualClock) Every(d time.Duration, fn func()) Cancel {
	return c.schedule(d, d, fn)
}

// After implements Scheduler.
func (c *VirtualClock) After(d time.Duration, fn func()) Cancel {
	return c.schedule(d, 0, fn)
}

func (c *VirtualClock) schedule(d, every time.Duration, fn func()) Cancel {
	if d <= 0 {
		d = time.Millisecond
	}
	if every < 0 {
		every = 0
	}
	c.seq++
	t := &virtualTimer{at: c.now + d, every: every, seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return func() { t.canceled = true }
}

// Pending returns the number of live timers.
func (c *VirtualClock) Pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.canceled {
			n++
		}
	}
	return n
}

// Advance moves time forward by d, firing due callbacks in deadline order.
// Timers scheduled by a callback fire in the same Advance if they fall due.
func (c *VirtualClock) Advance(d time.Duration) {
	target := c.now + d
	for {
		next := c.next(target)
		if next == nil {
			break
		}
		c.now = next.at
		if next.every > 0 {
			c.seq++
			next.at += next.every
			next.seq = c.seq
		} else {
			next.canceled = true
		}
		next.fn()
	}
	c.now = target
	c.compact()
}

func (c *VirtualClock) next(limit time.Duration) *virtualTimer {
	var best *virtualTimer
	for _, t := range c.timers {
		if t.canceled || t.at > limit {
			continue
		}
		if best == nil || t.at < best.at || (t.at == best.at && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (c *VirtualClock) compact() {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.canceled {
			live = append(live, t)
		}
	}
	sort.SliceStable(live, func(i, j int) bool { return live[i].at < live[j].at })
	c.timers = live
}
