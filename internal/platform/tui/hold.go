package tui

import (
	"time"

	"github.com/vovakirdan/circle-arcade/internal/core"
)

// Terminals deliver a key once on press and then as auto-repeats while it
// is held, but never report the release. A key counts as held until no
// press arrives within the timeout; the first repeat comes after the OS
// repeat delay, later ones at the repeat rate.
const (
	DefaultHoldDelay  = 550 * time.Millisecond
	DefaultHoldRepeat = 120 * time.Millisecond
)

type heldKey struct {
	action   core.Action
	last     time.Time
	repeated bool
}

// holdTracker synthesises key-up events for held actions.
type holdTracker struct {
	delay  time.Duration
	repeat time.Duration
	held   []heldKey // in press order, so releases come out deterministic
}

func newHoldTracker(delay, repeat time.Duration) *holdTracker {
	return &holdTracker{delay: delay, repeat: repeat}
}

// tracked reports whether a is an action with a meaningful release.
func tracked(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionJump, core.ActionShoot:
		return true
	}
	return false
}

// opposite returns the action that cannot be held at the same time as a.
// Terminals only repeat the most recent key, so pressing one direction
// ends the other.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// Press records a key message for a. The first press emits a key-down,
// presses while held emit auto-repeats.
func (h *holdTracker) Press(a core.Action, now time.Time, f *core.InputFrame) {
	if !tracked(a) {
		f.Set(a)
		return
	}

	if o := opposite(a); o != core.ActionNone && h.release(o) {
		f.Release(o)
	}

	for i := range h.held {
		if h.held[i].action == a {
			h.held[i].last = now
			h.held[i].repeated = true
			f.Repeat(a)
			return
		}
	}

	h.held = append(h.held, heldKey{action: a, last: now})
	f.Set(a)
}

// Expire emits key-ups for every action whose repeats stopped arriving.
func (h *holdTracker) Expire(now time.Time, f *core.InputFrame) {
	kept := h.held[:0]
	for _, k := range h.held {
		timeout := h.delay
		if k.repeated {
			timeout = h.repeat
		}
		if now.Sub(k.last) > timeout {
			f.Release(k.action)
			continue
		}
		kept = append(kept, k)
	}
	h.held = kept
}

// ReleaseAll emits key-ups for everything still held.
func (h *holdTracker) ReleaseAll(f *core.InputFrame) {
	for _, k := range h.held {
		f.Release(k.action)
	}
	h.held = h.held[:0]
}

// Held reports whether a is currently considered held.
func (h *holdTracker) Held(a core.Action) bool {
	for _, k := range h.held {
		if k.action == a {
			return true
		}
	}
	return false
}

func (h *holdTracker) release(a core.Action) bool {
	for i, k := range h.held {
		if k.action == a {
			h.held = append(h.held[:i], h.held[i+1:]...)
			return true
		}
	}
	return false
}
