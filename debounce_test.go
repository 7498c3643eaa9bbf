package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func fireTick(t *testing.T, cmd tea.Cmd) debounceFiredMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a scheduled command, got nil")
	}
	raw := cmd()
	msg, ok := raw.(debounceFiredMsg)
	if !ok {
		t.Fatalf("expected debounceFiredMsg, got %T", raw)
	}
	return msg
}

func TestDebouncer_BurstCollapsesToLastTrigger(t *testing.T) {
	d := NewDebouncer(time.Millisecond)

	cmd1 := d.Trigger()
	cmd2 := d.Trigger()
	cmd3 := d.Trigger()

	// All three ticks eventually arrive; only the last scheduled one
	// passes the currency check.
	msg1 := fireTick(t, cmd1)
	msg2 := fireTick(t, cmd2)
	msg3 := fireTick(t, cmd3)

	if d.Current(msg1) {
		t.Error("first trigger of a burst should be stale")
	}
	if d.Current(msg2) {
		t.Error("second trigger of a burst should be stale")
	}
	if !d.Current(msg3) {
		t.Error("last trigger of a burst should be current")
	}
}

func TestDebouncer_SpacedTriggersFireIndependently(t *testing.T) {
	d := NewDebouncer(time.Millisecond)

	for i := 0; i < 3; i++ {
		msg := fireTick(t, d.Trigger())
		if !d.Current(msg) {
			t.Errorf("spaced trigger %d should be current", i)
		}
	}
}

func TestDebouncer_CancelPending(t *testing.T) {
	d := NewDebouncer(time.Millisecond)

	cmd := d.Trigger()
	d.CancelPending()

	if d.Current(fireTick(t, cmd)) {
		t.Error("cancelled trigger should be stale")
	}
}

func TestDebouncer_DefaultDelay(t *testing.T) {
	d := NewDebouncer(0)
	if d.delay != defaultDebounceMs*time.Millisecond {
		t.Errorf("expected default delay %dms, got %v", defaultDebounceMs, d.delay)
	}
}
