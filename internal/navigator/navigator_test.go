package navigator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdaveas/clipstash/internal/history"
)

type recordingWriter struct {
	wrote []string
}

func (w *recordingWriter) WriteText(text string) error {
	w.wrote = append(w.wrote, text)
	return nil
}

// newFixture returns a store holding texts captured in order (so the last
// element ends up newest, at index 0), a navigator over it, and the
// clipboard writer recording copy-outs.
func newFixture(t *testing.T, capacity int, texts ...string) (*history.Store, *Navigator, *recordingWriter) {
	t.Helper()
	store, err := history.New(capacity)
	require.NoError(t, err)
	w := &recordingWriter{}
	store.SetWriter(w)
	for _, text := range texts {
		require.True(t, store.Capture(text))
	}
	return store, New(store), w
}

func TestInitialState(t *testing.T) {
	_, nav, _ := newFixture(t, 10, "alpha", "beta")

	st := nav.State()
	assert.False(t, st.SearchActive)
	assert.Zero(t, st.Focused)
	assert.Empty(t, st.Query)
	assert.Empty(t, st.PendingDigits)
}

func TestMoveClamping(t *testing.T) {
	t.Run("down never exceeds visible length", func(t *testing.T) {
		_, nav, _ := newFixture(t, 10, "one", "two", "three")

		for i := 0; i < 10; i++ {
			nav.MoveDown()
		}
		assert.Equal(t, 2, nav.State().Focused)
	})

	t.Run("up never goes below zero", func(t *testing.T) {
		_, nav, _ := newFixture(t, 10, "one", "two", "three")

		nav.MoveDown()
		for i := 0; i < 10; i++ {
			nav.MoveUp()
		}
		assert.Zero(t, nav.State().Focused)
	})

	t.Run("no effect on empty history", func(t *testing.T) {
		_, nav, _ := newFixture(t, 10)

		nav.MoveDown()
		nav.MoveUp()
		assert.Zero(t, nav.State().Focused)
	})
}

func TestToggleSearch(t *testing.T) {
	_, nav, _ := newFixture(t, 10, "one", "two", "three")

	nav.MoveDown()
	nav.Digit('9') // out of range, stays pending

	nav.ToggleSearch()
	st := nav.State()
	assert.True(t, st.SearchActive)
	assert.Zero(t, st.Focused, "entering search resets focus")
	assert.Empty(t, st.PendingDigits, "entering search discards pending digits")

	nav.TypeChar('t')
	nav.ToggleSearch()
	st = nav.State()
	assert.False(t, st.SearchActive)
	assert.Empty(t, st.Query, "leaving search clears the query")
}

func TestDigitSelection(t *testing.T) {
	t.Run("commits immediately on first valid parse", func(t *testing.T) {
		// Twelve items: typing "1" selects item 1 right away, so "12" can
		// never be entered.
		texts := make([]string, 12)
		for i := range texts {
			texts[i] = fmt.Sprintf("snippet %d", i)
		}
		_, nav, w := newFixture(t, 20, texts...)

		require.True(t, nav.Digit('1'))
		require.Len(t, w.wrote, 1)
		assert.Equal(t, "snippet 11", w.wrote[0], "1-based position 1 is the newest item")
		assert.Empty(t, nav.State().PendingDigits)
	})

	t.Run("accumulates while out of range", func(t *testing.T) {
		_, nav, w := newFixture(t, 10, "one", "two", "three")

		assert.False(t, nav.Digit('9'))
		assert.Equal(t, "9", nav.State().PendingDigits)
		assert.Empty(t, w.wrote)
	})

	t.Run("zero is not a position", func(t *testing.T) {
		_, nav, w := newFixture(t, 10, "one", "two")

		assert.False(t, nav.Digit('0'))
		assert.Empty(t, w.wrote)
		// "0" then "2" parses as 2 and commits.
		assert.True(t, nav.Digit('2'))
		assert.Equal(t, []string{"one"}, w.wrote)
	})

	t.Run("addresses the raw history", func(t *testing.T) {
		_, nav, w := newFixture(t, 10, "alpha", "beta", "gamma")

		require.True(t, nav.Digit('3'))
		assert.Equal(t, []string{"alpha"}, w.wrote)
	})

	t.Run("ignored while searching", func(t *testing.T) {
		_, nav, w := newFixture(t, 10, "one", "two")

		nav.ToggleSearch()
		assert.False(t, nav.Digit('1'))
		assert.Empty(t, w.wrote)
	})

	t.Run("backspace edits pending digits", func(t *testing.T) {
		_, nav, _ := newFixture(t, 10, "one")

		nav.Digit('7')
		require.Equal(t, "7", nav.State().PendingDigits)
		nav.Backspace()
		assert.Empty(t, nav.State().PendingDigits)
	})
}

func TestTypeCharRefiltersAndReclamps(t *testing.T) {
	_, nav, _ := newFixture(t, 10, "alpha", "beta", "gamma")

	nav.ToggleSearch()
	nav.MoveDown()
	nav.MoveDown()
	require.Equal(t, 2, nav.State().Focused)

	// "al" matches only "alpha"; focus must be pulled back into range.
	nav.TypeChar('a')
	nav.TypeChar('l')

	vis := nav.Visible()
	require.Len(t, vis, 1)
	assert.Zero(t, nav.State().Focused)

	// A query with no matches leaves focus at 0 and Commit a no-op.
	nav.TypeChar('z')
	assert.Empty(t, nav.Visible())
	assert.Zero(t, nav.State().Focused)
	assert.False(t, nav.Commit())
}

func TestSearchBackspace(t *testing.T) {
	_, nav, _ := newFixture(t, 10, "alpha", "beta")

	nav.ToggleSearch()
	nav.TypeChar('a')
	nav.TypeChar('l')
	require.Len(t, nav.Visible(), 1)

	nav.Backspace()
	assert.Equal(t, "a", nav.State().Query)
	assert.Len(t, nav.Visible(), 2)

	nav.Backspace()
	nav.Backspace() // already empty, no-op
	assert.Empty(t, nav.State().Query)
}

func TestCommit(t *testing.T) {
	t.Run("resolves filtered focus to the original index", func(t *testing.T) {
		_, nav, w := newFixture(t, 10, "alpha", "beta", "gamma")

		nav.ToggleSearch()
		nav.TypeChar('b')
		require.Len(t, nav.Visible(), 1)

		require.True(t, nav.Commit())
		assert.Equal(t, []string{"beta"}, w.wrote)
	})

	t.Run("no-op on empty history", func(t *testing.T) {
		_, nav, w := newFixture(t, 10)

		assert.False(t, nav.Commit())
		assert.Empty(t, w.wrote)
	})

	t.Run("no-op when state went stale", func(t *testing.T) {
		store, nav, w := newFixture(t, 10, "one", "two", "three")

		nav.MoveDown()
		nav.MoveDown()
		store.Clear()

		assert.False(t, nav.Commit())
		assert.Empty(t, w.wrote)
	})

	t.Run("arrow focus wins over pending digits", func(t *testing.T) {
		_, nav, w := newFixture(t, 10, "one", "two", "three")

		nav.MoveDown()
		nav.Digit('9') // pending, out of range
		require.True(t, nav.Commit())

		assert.Equal(t, []string{"two"}, w.wrote)
		assert.Empty(t, nav.State().PendingDigits)
	})
}

func TestCancel(t *testing.T) {
	_, nav, _ := newFixture(t, 10, "one")

	nav.ToggleSearch()
	nav.TypeChar('o')

	assert.Equal(t, LeftSearch, nav.Cancel())
	st := nav.State()
	assert.False(t, st.SearchActive)
	assert.Empty(t, st.Query)

	assert.Equal(t, ClosePanel, nav.Cancel())
}

func TestSyncAfterClear(t *testing.T) {
	store, nav, _ := newFixture(t, 10, "one", "two", "three")

	nav.MoveDown()
	nav.MoveDown()
	store.Clear()
	nav.Sync()

	assert.Zero(t, nav.State().Focused)
	nav.MoveDown() // no-op on empty history
	assert.Zero(t, nav.State().Focused)
	assert.False(t, nav.Commit())
}

// TestPanelScenario walks the full capture → search → commit flow.
func TestPanelScenario(t *testing.T) {
	store, err := history.New(10)
	require.NoError(t, err)
	w := &recordingWriter{}
	store.SetWriter(w)

	require.True(t, store.Capture("alpha"))
	require.True(t, store.Capture("beta"))
	assert.False(t, store.Capture("beta"), "adjacent duplicate is a no-op")
	require.True(t, store.Capture("gamma"))
	require.Equal(t, 3, store.Len())

	nav := New(store)
	st := nav.State()
	assert.Zero(t, st.Focused)
	assert.False(t, st.SearchActive)

	nav.ToggleSearch()
	nav.TypeChar('a')
	vis := nav.Visible()
	require.Len(t, vis, 3, `"a" is a subsequence of all three`)
	assert.Equal(t, "gamma", vis[0].Item.Text)
	assert.Equal(t, "beta", vis[1].Item.Text)
	assert.Equal(t, "alpha", vis[2].Item.Text)

	nav.TypeChar('l')
	vis = nav.Visible()
	require.Len(t, vis, 1)
	assert.Equal(t, 2, vis[0].Index)
	assert.Equal(t, "alpha", vis[0].Item.Text)

	require.True(t, nav.Commit())
	assert.Equal(t, []string{"alpha"}, w.wrote)

	// Copy-out does not reorder or duplicate.
	items := store.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "gamma", items[0].Text)
	assert.Equal(t, "beta", items[1].Text)
	assert.Equal(t, "alpha", items[2].Text)
}
