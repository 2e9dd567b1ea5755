package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/bitdrill/internal/drill"
	"github.com/tinytelemetry/bitdrill/internal/game"
)

// fixedProblems always serves 2 + 3, shown as "10 + 11".
type fixedProblems struct{}

func (fixedProblems) Next() drill.Problem { return drill.NewProblem(2, 3, drill.OpAdd) }

func newTestController(t *testing.T) (*game.Controller, *game.FakeScheduler) {
	t.Helper()
	sched := game.NewFakeScheduler()
	c := game.NewController(fixedProblems{},
		game.WithScheduler(sched),
		game.WithRoundIDs(func() string { return "0123456789abcdef" }),
	)
	t.Cleanup(c.Close)
	return c, sched
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

func keyEsc() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEsc} }

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
