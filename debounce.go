package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// debounceFiredMsg is delivered when a scheduled firing comes due. It
// carries the generation it was scheduled under; stale generations
// are recognised and dropped on arrival.
type debounceFiredMsg struct {
	seq int
}

// Debouncer collapses a burst of triggering events into one firing.
// Each Trigger supersedes whatever firing is still pending, so at
// most one firing is ever acted on per quiet period of at least the
// configured delay.
type Debouncer struct {
	delay time.Duration
	seq   int
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = defaultDebounceMs * time.Millisecond
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules a firing after the delay and invalidates any
// pending one. The superseded tick still arrives but fails the
// Current check.
func (d *Debouncer) Trigger() tea.Cmd {
	d.seq++
	seq := d.seq
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return debounceFiredMsg{seq: seq}
	})
}

// CancelPending invalidates any scheduled firing without replacing it.
func (d *Debouncer) CancelPending() {
	d.seq++
}

// Current reports whether a received firing is still the latest one
// scheduled.
func (d *Debouncer) Current(msg debounceFiredMsg) bool {
	return msg.seq == d.seq
}
