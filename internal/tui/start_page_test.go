package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/bitdrill/internal/game"
)

func TestStartPage_PresetNavigation(t *testing.T) {
	t.Parallel()

	c, _ := newTestController(t)
	p := NewStartPage(c, 5)

	p.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := p.Seconds(); got != 10 {
		t.Fatalf("after right = %d, want 10", got)
	}
	p.Update(keyRunes("h"))
	p.Update(keyRunes("h"))
	if got := p.Seconds(); got != 3 {
		t.Fatalf("after two lefts = %d, want 3", got)
	}
	p.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := p.Seconds(); got != 3 {
		t.Fatalf("left past first preset = %d, want 3", got)
	}
}

func TestStartPage_FineAdjustClamps(t *testing.T) {
	t.Parallel()

	c, _ := newTestController(t)
	p := NewStartPage(c, 59)

	p.Update(keyRunes("+"))
	p.Update(keyRunes("+"))
	if got := p.Seconds(); got != 60 {
		t.Fatalf("seconds = %d, want clamped to 60", got)
	}

	p = NewStartPage(c, 0)
	if got := p.Seconds(); got != 1 {
		t.Fatalf("initial seconds = %d, want clamped to 1", got)
	}
	p.Update(keyRunes("-"))
	if got := p.Seconds(); got != 1 {
		t.Fatalf("seconds = %d, want clamped to 1", got)
	}
	p.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := p.Seconds(); got != 2 {
		t.Fatalf("seconds = %d, want 2", got)
	}
}

func TestStartPage_EnterConfiguresAndStarts(t *testing.T) {
	t.Parallel()

	c, _ := newTestController(t)
	p := NewStartPage(c, 15)

	_, nav := p.Update(keyEnter())
	if nav == nil || nav.PageID != gamePageID {
		t.Fatalf("nav = %+v, want game page", nav)
	}

	s := c.State()
	if s.Phase != game.PhaseAwaitingAnswer {
		t.Fatalf("phase = %v, want awaiting answer", s.Phase)
	}
	if s.CountdownDuration != 15 || s.CountdownRemaining != 15 {
		t.Fatalf("countdown = %d/%d, want 15/15", s.CountdownRemaining, s.CountdownDuration)
	}
}

func TestStartPage_QuitKey(t *testing.T) {
	t.Parallel()

	c, _ := newTestController(t)
	p := NewStartPage(c, 5)
	cmd, _ := p.Update(keyRunes("q"))
	if !isQuit(cmd) {
		t.Fatal("q did not quit from the menu")
	}
}

func TestStartPage_ViewShowsSelection(t *testing.T) {
	t.Parallel()

	c, _ := newTestController(t)
	p := NewStartPage(c, 30)
	view := p.View(100, 30)

	if !strings.Contains(view, "30s") {
		t.Fatalf("view missing selected duration:\n%s", view)
	}
	if !strings.Contains(view, "game over") {
		t.Fatalf("view missing rules:\n%s", view)
	}
}

func TestStartPage_HelpToggle(t *testing.T) {
	t.Parallel()

	c, _ := newTestController(t)
	p := NewStartPage(c, 5)

	if strings.Contains(p.View(120, 30), "play again") {
		t.Fatal("short help shows in-game keys")
	}
	p.Update(keyRunes("?"))
	if !strings.Contains(p.View(120, 30), "play again") {
		t.Fatal("full help missing in-game keys")
	}
	p.Update(keyRunes("?"))
	if strings.Contains(p.View(120, 30), "play again") {
		t.Fatal("help did not toggle back")
	}
}
