// Package ui renders the clipboard history panel and translates terminal
// key events into the navigator's abstract event vocabulary. All state
// mutation funnels through the bubbletea update loop, which serializes UI
// events against poller-driven refreshes.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sdaveas/clipstash/internal/history"
	"github.com/sdaveas/clipstash/internal/navigator"
)

// StoreChangedMsg wakes the program after the history store mutated outside
// the update loop (a poller capture). Senders use Program.Send.
type StoreChangedMsg struct{}

// clearStatusMsg clears the transient status line.
type clearStatusMsg struct{}

const statusTimeout = 2 * time.Second

// Model is the bubbletea model for the history panel.
type Model struct {
	store *history.Store
	nav   *navigator.Navigator
	keys  keyMap

	width  int
	height int
	status string
}

// New returns a panel over store with a freshly initialized navigator.
func New(store *history.Store) Model {
	return Model{
		store: store,
		nav:   navigator.New(store),
		keys:  defaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case StoreChangedMsg:
		m.nav.Sync()
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.nav.State().SearchActive {
		return m.handleSearchKey(msg)
	}
	return m.handleNumericKey(msg)
}

// handleSearchKey maps keys while the search prompt is active. Printable
// runes extend the query, so named bindings like q and / are deliberately
// not matched here.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.nav.Cancel()
		return m, nil
	case tea.KeyEnter:
		return m.commit()
	case tea.KeyBackspace:
		m.nav.Backspace()
		return m, nil
	case tea.KeyUp, tea.KeyCtrlK:
		m.nav.MoveUp()
		return m, nil
	case tea.KeyDown, tea.KeyCtrlJ:
		m.nav.MoveDown()
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		runes := msg.Runes
		if msg.Type == tea.KeySpace {
			runes = []rune{' '}
		}
		for _, r := range runes {
			m.nav.TypeChar(r)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleNumericKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		m.nav.ToggleSearch()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.store.Clear()
		m.nav.Sync()
		return m.flash("history cleared")

	case key.Matches(msg, m.keys.Up):
		m.nav.MoveUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.nav.MoveDown()
		return m, nil

	case key.Matches(msg, m.keys.Commit):
		return m.commit()
	}

	switch msg.Type {
	case tea.KeyEsc:
		if m.nav.Cancel() == navigator.ClosePanel {
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyBackspace:
		m.nav.Backspace()
		return m, nil
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			switch {
			case r >= '0' && r <= '9':
				if m.nav.Digit(byte(r)) {
					return m.flash("copied to clipboard")
				}
			case r == 'k':
				m.nav.MoveUp()
			case r == 'j':
				m.nav.MoveDown()
			}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) commit() (tea.Model, tea.Cmd) {
	if m.nav.Commit() {
		return m.flash("copied to clipboard")
	}
	return m, nil
}

// flash shows a transient status message that clears itself.
func (m Model) flash(text string) (tea.Model, tea.Cmd) {
	m.status = text
	return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
