package client

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"TermPong/core"

	"github.com/gdamore/tcell"
)

type keySpec struct {
	key tcell.Key
	r   rune
}

// parseKey accepts a single character, "space", or a tcell key name such as
// "Up", "Down" or "Esc". Names are case-insensitive.
func parseKey(spec string) (keySpec, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if s == "space" {
		return keySpec{key: tcell.KeyRune, r: ' '}, nil
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return keySpec{key: tcell.KeyRune, r: r}, nil
	}
	for k, name := range tcell.KeyNames {
		if strings.ToLower(name) == s {
			return keySpec{key: k}, nil
		}
	}
	return keySpec{}, fmt.Errorf("unknown key %q", spec)
}

func (k keySpec) matches(ev *tcell.EventKey) bool {
	if k.key == tcell.KeyRune {
		return ev.Key() == tcell.KeyRune && unicode.ToLower(ev.Rune()) == k.r
	}
	return ev.Key() == k.key
}

// KeyTracker turns terminal key events into per-tick key state.
//
// Terminals only report presses and auto-repeats, never releases, so a
// control counts as pressed until hold has passed without a new event.
type KeyTracker struct {
	bindings map[core.Control]keySpec
	hold     time.Duration

	lastSeen map[core.Control]time.Time
	pending  map[core.Control]bool
	down     map[core.Control]bool
	just     map[core.Control]bool
}

func NewKeyTracker(keys map[core.Control]string, hold time.Duration) (*KeyTracker, error) {
	bindings := make(map[core.Control]keySpec, len(keys))
	for control, spec := range keys {
		k, err := parseKey(spec)
		if err != nil {
			return nil, fmt.Errorf("bind %s: %w", control, err)
		}
		bindings[control] = k
	}

	return &KeyTracker{
		bindings: bindings,
		hold:     hold,
		lastSeen: make(map[core.Control]time.Time),
		pending:  make(map[core.Control]bool),
		down:     make(map[core.Control]bool),
		just:     make(map[core.Control]bool),
	}, nil
}

// Feed records a key event. It returns false if no control is bound to the key.
func (t *KeyTracker) Feed(ev *tcell.EventKey, at time.Time) bool {
	matched := false
	for control, k := range t.bindings {
		if k.matches(ev) {
			t.lastSeen[control] = at
			t.pending[control] = true
			matched = true
		}
	}
	return matched
}

// Update computes the key state for the tick starting at now.
func (t *KeyTracker) Update(now time.Time) {
	for control := range t.bindings {
		wasDown := t.down[control]

		last, seen := t.lastSeen[control]
		t.down[control] = t.pending[control] || (seen && now.Sub(last) <= t.hold)
		t.just[control] = t.pending[control] && !wasDown
		t.pending[control] = false
	}
}

func (t *KeyTracker) Pressed(c core.Control) bool {
	return t.down[c]
}

func (t *KeyTracker) JustPressed(c core.Control) bool {
	return t.just[c]
}
