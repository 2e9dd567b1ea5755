package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/bitdrill/internal/game"
)

const answerCharLimit = 6

// GamePage shows the current problem, countdown and feedback, and forwards
// typed answers to the controller. It renders only from snapshots.
type GamePage struct {
	ctrl  GameController
	state game.State
	input textinput.Model
	keys  KeyMap
	help  help.Model
}

// NewGamePage creates the game screen for ctrl.
func NewGamePage(ctrl GameController) *GamePage {
	ti := textinput.New()
	ti.Placeholder = "answer in decimal"
	ti.CharLimit = answerCharLimit
	ti.Width = 20

	return &GamePage{
		ctrl:  ctrl,
		input: ti,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
}

func (p *GamePage) ID() string { return gamePageID }

func (p *GamePage) Init() tea.Cmd {
	p.sync(p.ctrl.State())
	return textinput.Blink
}

// State returns the snapshot the page last rendered from.
func (p *GamePage) State() game.State { return p.state }

// Input returns the text currently in the answer field.
func (p *GamePage) Input() string { return p.input.Value() }

func (p *GamePage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case StateMsg:
		p.sync(msg.State)
		return nil, nil
	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.state.Phase == game.PhaseAwaitingAnswer {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd, nil
	}
	return nil, nil
}

func (p *GamePage) handleKey(msg tea.KeyMsg) (tea.Cmd, *PageNav) {
	if key.Matches(msg, p.keys.ForceQuit) {
		return tea.Quit, nil
	}
	if key.Matches(msg, p.keys.Back) {
		return p.toMenu()
	}

	switch p.state.Phase {
	case game.PhaseAwaitingAnswer:
		if key.Matches(msg, p.keys.Submit) {
			p.ctrl.SubmitAnswer(p.input.Value())
			p.sync(p.ctrl.State())
			return nil, nil
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		p.ctrl.SetDraft(p.input.Value())
		return cmd, nil

	case game.PhaseAwaitingAdvance:
		switch {
		case key.Matches(msg, p.keys.Next):
			p.ctrl.Advance()
			p.sync(p.ctrl.State())
			return textinput.Blink, nil
		case key.Matches(msg, p.keys.Quit):
			return tea.Quit, nil
		}

	case game.PhaseEnded:
		switch {
		case key.Matches(msg, p.keys.Restart):
			p.ctrl.Restart()
			p.sync(p.ctrl.State())
			return textinput.Blink, nil
		case key.Matches(msg, p.keys.Menu):
			return p.toMenu()
		case key.Matches(msg, p.keys.Quit):
			return tea.Quit, nil
		}

	default:
		if key.Matches(msg, p.keys.Quit) {
			return tea.Quit, nil
		}
		return nil, &PageNav{PageID: startPageID}
	}
	return nil, nil
}

func (p *GamePage) toMenu() (tea.Cmd, *PageNav) {
	p.ctrl.ReturnToMenu()
	p.sync(p.ctrl.State())
	return nil, &PageNav{PageID: startPageID}
}

// sync adopts s unless it is older than what the page already shows. A new
// problem clears and focuses the answer field.
func (p *GamePage) sync(s game.State) {
	if s.Version < p.state.Version {
		return
	}
	prev := p.state
	p.state = s

	if s.Phase != game.PhaseAwaitingAnswer {
		p.input.Blur()
		return
	}
	if prev.Phase != game.PhaseAwaitingAnswer || prev.Problem != s.Problem || prev.RoundID != s.RoundID {
		p.input.Reset()
		p.input.Focus()
	}
}

func (p *GamePage) View(width, height int) string {
	header := renderHeader(p.state, width)

	var body string
	switch p.state.Phase {
	case game.PhaseEnded:
		body = p.renderGameOver(width)
	case game.PhaseIdle:
		body = lipgloss.NewStyle().Foreground(ColorGray).Render("No game running. Press any key for the menu.")
	default:
		body = p.renderRound()
	}

	footer := p.help.View(gameHelp{keys: p.keys, phase: p.state.Phase})
	centered := lipgloss.Place(width, max(height-2, 0), lipgloss.Center, lipgloss.Center, body)
	return lipgloss.JoinVertical(lipgloss.Left, header, centered, footer)
}

func (p *GamePage) renderRound() string {
	problem := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorWhite).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Padding(1, 4).
		Render(p.state.Problem.DisplayText)

	parts := []string{problem, ""}
	if p.state.Phase == game.PhaseAwaitingAnswer {
		parts = append(parts, renderCountdown(p.state.CountdownRemaining), "", p.input.View())
	} else {
		parts = append(parts, renderFeedback(p.state.LastAnswer))
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (p *GamePage) renderGameOver(width int) string {
	var headline string
	if p.state.Outcome == game.OutcomeWin {
		headline = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true).Render("You made it!")
	} else {
		headline = lipgloss.NewStyle().Foreground(ColorRed).Bold(true).
			Render(fmt.Sprintf("Game over! More than %d remaining", game.LossThreshold))
	}

	accuracy := 0
	if p.state.Answered > 0 {
		accuracy = p.state.Correct * 100 / p.state.Answered
	}
	stats := lipgloss.NewStyle().Foreground(ColorGray).Render(
		fmt.Sprintf("Answered %d · Correct %d · Accuracy %d%%", p.state.Answered, p.state.Correct, accuracy))

	parts := []string{headline, "", renderFeedback(p.state.LastAnswer), "", stats}
	if chart := renderHistoryChart(p.state.History, min(max(width-8, 0), 60), 8); chart != "" {
		parts = append(parts, "", chart)
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}
