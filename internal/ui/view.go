package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	focusedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	numberStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	ageStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

func (m Model) View() string {
	var b strings.Builder

	st := m.nav.State()
	matches := m.nav.Visible()

	b.WriteString(titleStyle.Render(fmt.Sprintf("clipstash · %d/%d", m.store.Len(), m.store.Capacity())))
	b.WriteString("\n")

	switch {
	case st.SearchActive:
		b.WriteString(promptStyle.Render("/" + st.Query + "▌"))
		b.WriteString("\n\n")
	case st.PendingDigits != "":
		b.WriteString(promptStyle.Render("#" + st.PendingDigits))
		b.WriteString("\n\n")
	default:
		b.WriteString("\n")
	}

	if len(matches) == 0 {
		if st.SearchActive {
			b.WriteString(emptyStyle.Render("no matches"))
		} else {
			b.WriteString(emptyStyle.Render("history is empty — copy something"))
		}
		b.WriteString("\n")
	}

	for i, match := range matches {
		// Row numbers are the item's 1-based position in the raw history,
		// matching what numeric entry addresses.
		line := fmt.Sprintf("%s %s",
			numberStyle.Render(fmt.Sprintf("%2d", match.Index+1)),
			snippet(match.Item.Text, m.contentWidth()),
		)
		if i == st.Focused {
			line = focusedStyle.Render("› " + line)
		} else {
			line = "  " + line
		}
		line += " " + ageStyle.Render(humanize.Time(match.Item.CapturedAt))
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if st.SearchActive {
		b.WriteString(helpStyle.Render("type to filter · ↑/↓ move · enter copy · esc close search"))
	} else {
		b.WriteString(helpStyle.Render("1-9 pick · ↑/↓ move · enter copy · / search · C clear · q quit"))
	}
	return b.String()
}

// contentWidth is the space left for snippet text after the row decoration
// and the trailing age column.
func (m Model) contentWidth() int {
	w := m.width - 24
	if w < 20 {
		w = 20
	}
	return w
}

// snippet flattens text to a single displayable line.
func snippet(text string, width int) string {
	text = strings.ReplaceAll(text, "\n", "⏎")
	text = strings.ReplaceAll(text, "\t", " ")
	runes := []rune(text)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return text
}
