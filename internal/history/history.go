// Package history implements the bounded, ordered clipboard history store.
// The store is the single owner of the captured sequence: the poller writes
// through Capture, everything else reads snapshots. Newest items come first.
package history

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCapacity is the history bound used when none is configured.
const DefaultCapacity = 10

var (
	// ErrInvalidCapacity is returned when a non-positive capacity is requested.
	// The previous capacity is retained.
	ErrInvalidCapacity = errors.New("history: capacity must be positive")

	// ErrIndexOutOfRange is returned by CopyOut for indices outside [0, len).
	ErrIndexOutOfRange = errors.New("history: index out of range")
)

// Item is a single captured clipboard snippet. Text is immutable once
// captured; CapturedAt is display-only ("5m ago"). ID is unique for the
// item's lifetime and never reused — UI layers use it for row identity,
// never for ordering.
type Item struct {
	ID         string
	Text       string
	CapturedAt time.Time
}

// Writer places text back onto the system clipboard. The store depends on
// this narrow interface rather than a concrete clipboard device so that
// CopyOut can be exercised without a display server.
type Writer interface {
	WriteText(text string) error
}

// Store is a bounded, newest-first sequence of captured items with
// adjacent deduplication. All methods are safe for concurrent use; the
// mutex serializes the poller goroutine against the UI event loop.
type Store struct {
	mu       sync.RWMutex
	capacity int
	items    []Item

	writer   Writer
	onChange func()
}

// New returns an empty store bounded to capacity.
func New(capacity int) (*Store, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Store{capacity: capacity}, nil
}

// SetWriter installs the clipboard writer used by CopyOut.
// A nil writer makes CopyOut return text without touching the clipboard.
func (s *Store) SetWriter(w Writer) {
	s.mu.Lock()
	s.writer = w
	s.mu.Unlock()
}

// SetOnChange installs a callback invoked after every successful mutation
// (capture, truncating capacity change, clear). The callback runs outside
// the store lock and must not call back into mutating methods.
func (s *Store) SetOnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Capture admits text as the newest item. It reports false without mutating
// the store when text is empty or identical to the current newest item
// (adjacent dedup — older duplicates further down are left alone). On
// insertion the tail is truncated so the sequence never exceeds capacity.
func (s *Store) Capture(text string) bool {
	if text == "" {
		return false
	}

	s.mu.Lock()
	if len(s.items) > 0 && s.items[0].Text == text {
		s.mu.Unlock()
		return false
	}
	item := Item{
		ID:         uuid.New().String(),
		Text:       text,
		CapturedAt: time.Now(),
	}
	s.items = append([]Item{item}, s.items...)
	if len(s.items) > s.capacity {
		s.items = s.items[:s.capacity]
	}
	n := len(s.items)
	s.mu.Unlock()

	slog.Debug("history: captured", "id", item.ID, "len", n)
	s.notify()
	return true
}

// SetCapacity updates the bound, truncating the tail immediately if the
// store currently holds more items than the new capacity allows. Values
// outside the preferred 5–50 range are accepted; only non-positive values
// are rejected. Range clamping belongs to the config layer.
func (s *Store) SetCapacity(n int) error {
	if n <= 0 {
		return ErrInvalidCapacity
	}

	s.mu.Lock()
	s.capacity = n
	truncated := false
	if len(s.items) > n {
		s.items = s.items[:n]
		truncated = true
	}
	s.mu.Unlock()

	if truncated {
		s.notify()
	}
	return nil
}

// Capacity returns the current bound.
func (s *Store) Capacity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.capacity
}

// Clear empties the history unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	cleared := len(s.items) > 0
	s.items = nil
	s.mu.Unlock()

	if cleared {
		slog.Debug("history: cleared")
		s.notify()
	}
}

// Items returns a newest-first snapshot. Mutating the returned slice does
// not affect the store.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// CopyOut returns the text at index and writes it back to the system
// clipboard through the installed writer. The store is not mutated:
// re-copying an item neither moves it to the front nor duplicates it.
func (s *Store) CopyOut(index int) (string, error) {
	s.mu.RLock()
	if index < 0 || index >= len(s.items) {
		s.mu.RUnlock()
		return "", ErrIndexOutOfRange
	}
	text := s.items[index].Text
	w := s.writer
	s.mu.RUnlock()

	if w != nil {
		if err := w.WriteText(text); err != nil {
			slog.Warn("history: clipboard write failed", "err", err)
		}
	}
	return text, nil
}

// notify invokes the change callback, if any, outside the lock.
func (s *Store) notify() {
	s.mu.RLock()
	fn := s.onChange
	s.mu.RUnlock()
	if fn != nil {
		fn()
	}
}
