package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/domain/session"
)

// Model is the bubbletea model of a terminal drill session.
type Model struct {
	controller *session.Controller
	state      session.State
	logger     *slog.Logger
	width      int
}

// New creates a Model over a freshly started session.
func New(controller *session.Controller, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	state := controller.Start()
	logger.Info("drill started", "deck_size", len(state.Deck))

	return Model{
		controller: controller,
		state:      state,
		logger:     logger.With("component", "tui"),
	}
}

// State returns the current session snapshot.
func (m Model) State() session.State {
	return m.state
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.logger.Info("drill finished",
				"mode", m.state.Mode,
				"mistake_count", m.state.MistakeCount())
			return m, tea.Quit
		case " ":
			m.state = m.controller.Reveal(m.state)
		case "k":
			m.respond(domain.ResponseKnown)
		case "d":
			m.respond(domain.ResponseUnknown)
		case "r":
			m.switchMode(domain.ModeRevision)
		case "m":
			m.switchMode(domain.ModeMistakes)
		}
	}

	return m, nil
}

func (m *Model) respond(r domain.Response) {
	card, ok := m.state.Current()
	next, err := m.controller.Respond(m.state, r)
	if err != nil {
		m.logger.Error("response rejected", "error", err, "response", r)
		return
	}
	m.state = next
	if ok {
		m.logger.Debug("response recorded",
			"card_id", card.ID,
			"response", r,
			"mistake_count", next.MistakeCount())
	}
}

// switchMode ignores disabled transitions, like a greyed-out button.
func (m *Model) switchMode(mode domain.Mode) {
	next, err := m.controller.SwitchMode(m.state, mode)
	if err != nil {
		m.logger.Debug("mode switch ignored", "error", err, "mode", mode)
		return
	}
	m.state = next
	m.logger.Debug("mode switched", "mode", mode, "deck_size", len(next.Deck))
}

// View implements tea.Model.
func (m Model) View() string {
	s := m.state

	var b strings.Builder
	b.WriteString(styleTitle.Render("Vocab Practice!"))
	b.WriteString("\n\n")
	b.WriteString("Vocabs Missed: " + styleMissed.Render(fmt.Sprint(s.MistakeCount())))
	b.WriteString("\n\n")
	b.WriteString(control("r", "Revise Randomly", s.CanSwitchTo(domain.ModeRevision)))
	b.WriteString("   ")
	b.WriteString(control("m", "Revise Mistakes", s.CanSwitchTo(domain.ModeMistakes)))
	b.WriteString("\n\n")

	card, ok := s.Current()
	switch {
	case s.AllCleared():
		b.WriteString(styleCleared.Render(
			"You have successfully revised all mistakes! Press r to revise words randomly"))
		b.WriteString("\n")
	case !ok:
		b.WriteString(styleSubtle.Render("No cards to revise."))
		b.WriteString("\n")
	default:
		b.WriteString(m.viewCard(card))
		b.WriteString("\n")
		b.WriteString(styleKnown.Render("[k] I know this meaning!"))
		b.WriteString("   ")
		b.WriteString(styleUnknown.Render("[d] I don't know this meaning!"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleSubtle.Render("space: show meaning • q: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewCard(card domain.Card) string {
	s := m.state
	position, total := s.Position()

	lines := []string{renderMarkup(card.Word, styleWord)}
	if s.Revealed {
		lines = append(lines,
			"",
			renderMarkup(card.Meaning, styleMeaning),
			"",
			renderMarkup(card.Sentence, styleSentence))
	} else {
		lines = append(lines, "", styleSubtle.Render("[space] Show Meaning"))
	}
	lines = append(lines, "", stylePosition.Render(fmt.Sprintf("%d / %d", position, total)))

	box := styleCard
	if m.width > 8 {
		box = box.MaxWidth(m.width)
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
