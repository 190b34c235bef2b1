package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/markup"
	"github.com/phrazzld/vocab-drill/internal/platform/logger"
	"github.com/phrazzld/vocab-drill/internal/testutils"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	ds := testutils.NewTestDataset(
		[]domain.Entry{
			testutils.NewTestEntry(1, "abate", testutils.WithMeaning("meaning of <b>abate</b>")),
			testutils.NewTestEntry(2, "bolster", testutils.WithMeaning("meaning of <b>bolster</b>")),
		},
		[]domain.Entry{testutils.NewTestEntry(3, "cajole", testutils.WithMeaning("meaning of <b>cajole</b>"))},
	)
	controller := testutils.MustNewController(t, ds, 5)
	return New(controller, logger.Discard())
}

func press(t *testing.T, m Model, key string) Model {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModel_KeyFlow(t *testing.T) {
	m := newTestModel(t)
	require.Len(t, m.State().Deck, 3)
	assert.Contains(t, m.View(), "Vocabs Missed: ")
	assert.Contains(t, m.View(), "1 / 3")

	// Mistakes mode is disabled until a miss; the key is ignored
	m = press(t, m, "m")
	assert.Equal(t, domain.ModeRevision, m.State().Mode)

	m = press(t, m, " ")
	assert.True(t, m.State().Revealed)
	assert.Contains(t, m.View(), "meaning of ")

	missed, _ := m.State().Current()
	m = press(t, m, "d")
	assert.False(t, m.State().Revealed)
	assert.True(t, m.State().HasMistake(missed.ID))
	assert.Contains(t, m.View(), "2 / 3")

	m = press(t, m, "m")
	assert.Equal(t, domain.ModeMistakes, m.State().Mode)
	assert.Len(t, m.State().Deck, 1)

	m = press(t, m, "k")
	assert.True(t, m.State().AllCleared())
	assert.Contains(t, m.View(), "You have successfully revised all mistakes!")

	m = press(t, m, "r")
	assert.Equal(t, domain.ModeRevision, m.State().Mode)
	assert.Len(t, m.State().Deck, 3)
}

func TestModel_Quit(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m := newTestModel(t)
			var msg tea.KeyMsg
			if key == "q" {
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
			} else {
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			}
			_, cmd := m.Update(msg)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Nil(t, cmd)
	assert.Equal(t, 60, next.(Model).width)
}

func TestRenderMarkup_PlainText(t *testing.T) {
	out := renderMarkup("to <b>lessen</b><br>or reduce", styleMeaning)
	assert.Contains(t, out, "\n")
	assert.Equal(t, "to lessen\nor reduce", markup.Plain("to <b>lessen</b><br>or reduce"))
}
