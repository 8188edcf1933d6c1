// Package navigator implements the quick panel's selection state machine.
//
// The machine has two modes selected by the search flag: numeric entry
// (digits address the raw history 1-based) and search entry (typed
// characters narrow the history through the fuzzy filter). Both modes share
// a focused position over the currently visible sequence — the filtered
// matches while searching, the raw history otherwise. A navigator is
// created fresh each time the panel opens and discarded when it closes;
// nothing here is persisted.
package navigator

import (
	"strconv"

	"github.com/sdaveas/clipstash/internal/filter"
	"github.com/sdaveas/clipstash/internal/history"
)

// CancelResult tells the caller what a Cancel event did.
type CancelResult int

const (
	// LeftSearch means search mode was closed; the panel stays open.
	LeftSearch CancelResult = iota
	// ClosePanel means the navigator was already in numeric entry and the
	// panel should close.
	ClosePanel
)

// State is a read-only snapshot for rendering.
type State struct {
	Query         string
	SearchActive  bool
	Focused       int
	PendingDigits string
}

// Navigator drives keyboard selection over the history store. It is not
// safe for concurrent use; the host event loop must serialize events.
type Navigator struct {
	store *history.Store

	query         string
	searchActive  bool
	focused       int
	pendingDigits string
}

// New returns a navigator in its initial state: numeric entry, focus on the
// newest item, no query, no pending digits.
func New(store *history.Store) *Navigator {
	return &Navigator{store: store}
}

// State returns a snapshot of the navigator's fields.
func (n *Navigator) State() State {
	return State{
		Query:         n.query,
		SearchActive:  n.searchActive,
		Focused:       n.focused,
		PendingDigits: n.pendingDigits,
	}
}

// Visible returns the sequence navigation currently operates on: the
// filtered matches while search is active, the raw history otherwise.
// It is recomputed from the store on every call so it never goes stale.
func (n *Navigator) Visible() []filter.Match {
	if n.searchActive {
		return filter.Apply(n.store.Items(), n.query)
	}
	return filter.Apply(n.store.Items(), "")
}

// Sync re-clamps the focused position after the store changed underneath
// the navigator (a new capture arrived, or the history was cleared).
func (n *Navigator) Sync() {
	n.clamp(len(n.Visible()))
}

// ToggleSearch flips between numeric entry and search entry. Entering
// search resets focus to the top and discards pending digits; leaving it
// clears the query.
func (n *Navigator) ToggleSearch() {
	if n.searchActive {
		n.searchActive = false
		n.query = ""
		n.clamp(len(n.Visible()))
		return
	}
	n.searchActive = true
	n.focused = 0
	n.pendingDigits = ""
}

// Digit processes a numeric-entry keystroke and reports whether it
// committed a selection. Digits are ignored while search is active.
//
// The accumulated digits commit as soon as they parse to a valid 1-based
// position in the raw history, even if a longer number could also be valid:
// typing "1" with 12 items selects item 1 immediately and "12" can never be
// entered. Picking by number stays single-keystroke for small histories; a
// commit-on-pause policy would make two-digit picks reachable.
func (n *Navigator) Digit(d byte) bool {
	if n.searchActive || d < '0' || d > '9' {
		return false
	}
	n.pendingDigits += string(d)

	pos, err := strconv.Atoi(n.pendingDigits)
	if err != nil || pos < 1 || pos > n.store.Len() {
		return false
	}
	n.pendingDigits = ""
	// Numeric entry always addresses the unfiltered history.
	_, err = n.store.CopyOut(pos - 1)
	return err == nil
}

// TypeChar appends a character to the search query and re-runs the filter,
// re-clamping focus into the narrowed sequence. Ignored outside search.
func (n *Navigator) TypeChar(r rune) {
	if !n.searchActive {
		return
	}
	n.query += string(r)
	n.clamp(len(n.Visible()))
}

// Backspace removes the last query rune while searching, or the last
// pending digit in numeric entry.
func (n *Navigator) Backspace() {
	if n.searchActive {
		if n.query != "" {
			runes := []rune(n.query)
			n.query = string(runes[:len(runes)-1])
			n.clamp(len(n.Visible()))
		}
		return
	}
	if n.pendingDigits != "" {
		n.pendingDigits = n.pendingDigits[:len(n.pendingDigits)-1]
	}
}

// MoveDown moves focus one row towards the oldest visible item.
func (n *Navigator) MoveDown() {
	vis := len(n.Visible())
	if vis == 0 {
		return
	}
	if n.focused < vis-1 {
		n.focused++
	}
}

// MoveUp moves focus one row towards the newest visible item.
func (n *Navigator) MoveUp() {
	if len(n.Visible()) == 0 {
		return
	}
	if n.focused > 0 {
		n.focused--
	}
}

// Commit copies the focused item back to the clipboard and reports whether
// a copy happened. The focused position is re-validated against the current
// visible length first: if the history shrank between event dispatch and
// commit, doing nothing beats selecting the wrong item. Arrow-key focus
// takes precedence over partially typed digits, which are discarded.
func (n *Navigator) Commit() bool {
	n.pendingDigits = ""
	vis := n.Visible()
	if len(vis) == 0 || n.focused >= len(vis) {
		return false
	}
	_, err := n.store.CopyOut(vis[n.focused].Index)
	return err == nil
}

// Cancel leaves search mode if it is active, otherwise requests that the
// panel be closed.
func (n *Navigator) Cancel() CancelResult {
	if n.searchActive {
		n.searchActive = false
		n.query = ""
		n.clamp(len(n.Visible()))
		return LeftSearch
	}
	return ClosePanel
}

// clamp forces focused into [0, visible-1], or 0 for an empty sequence.
func (n *Navigator) clamp(visible int) {
	if visible == 0 {
		n.focused = 0
		return
	}
	if n.focused >= visible {
		n.focused = visible - 1
	}
	if n.focused < 0 {
		n.focused = 0
	}
}
