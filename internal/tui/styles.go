package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phrazzld/vocab-drill/internal/markup"
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleMissed   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true) // Red
	styleEnabled  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))           // Blue
	styleDisabled = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	styleWord     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	styleMeaning  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	styleSentence = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Italic(true)
	stylePosition = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	styleCleared  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true) // Green
	styleSubtle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleKnown    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleUnknown  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleCard     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(1, 3)
)

// renderMarkup renders inline markup with base as the default style,
// layering the bold, italic and underline runs on top.
func renderMarkup(s string, base lipgloss.Style) string {
	var b strings.Builder
	for _, seg := range markup.Segments(s) {
		if seg.Text == "\n" && seg.Style == 0 {
			b.WriteString("\n")
			continue
		}
		st := base
		if seg.Style&markup.Bold != 0 {
			st = st.Bold(true)
		}
		if seg.Style&markup.Italic != 0 {
			st = st.Italic(true)
		}
		if seg.Style&markup.Underline != 0 {
			st = st.Underline(true)
		}
		b.WriteString(st.Render(seg.Text))
	}
	return b.String()
}

// control renders a key hint, dimmed and struck through when disabled.
func control(key, label string, enabled bool) string {
	text := "[" + key + "] " + label
	if !enabled {
		return styleDisabled.Render(text)
	}
	return styleEnabled.Render(text)
}
