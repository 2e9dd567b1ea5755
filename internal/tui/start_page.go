package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/bitdrill/internal/game"
	"github.com/tinytelemetry/bitdrill/internal/model"
)

// StartPage is the pre-game menu where the countdown length is chosen.
type StartPage struct {
	ctrl    GameController
	keys    KeyMap
	help    help.Model
	seconds int
	err     string
}

// NewStartPage creates the menu with seconds preselected.
func NewStartPage(ctrl GameController, seconds int) *StartPage {
	return &StartPage{
		ctrl:    ctrl,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		seconds: clampSeconds(seconds),
	}
}

func (p *StartPage) ID() string { return startPageID }

func (p *StartPage) Init() tea.Cmd { return nil }

// Seconds returns the currently selected countdown length.
func (p *StartPage) Seconds() int { return p.seconds }

func (p *StartPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.Quit), key.Matches(keyMsg, p.keys.ForceQuit):
		return tea.Quit, nil
	case key.Matches(keyMsg, p.keys.Help):
		p.help.ShowAll = !p.help.ShowAll
	case key.Matches(keyMsg, p.keys.PrevPreset):
		p.seconds = prevPreset(p.seconds)
	case key.Matches(keyMsg, p.keys.NextPreset):
		p.seconds = nextPreset(p.seconds)
	case key.Matches(keyMsg, p.keys.Longer):
		p.seconds = clampSeconds(p.seconds + 1)
	case key.Matches(keyMsg, p.keys.Shorter):
		p.seconds = clampSeconds(p.seconds - 1)
	case key.Matches(keyMsg, p.keys.Start):
		if err := p.ctrl.Configure(p.seconds); err != nil {
			log.Printf("tui: configure countdown: %v", err)
			p.err = err.Error()
			return nil, nil
		}
		p.err = ""
		p.ctrl.Start()
		return nil, &PageNav{PageID: gamePageID}
	}
	return nil, nil
}

func (p *StartPage) View(width, height int) string {
	title := renderBranding()
	subtitle := lipgloss.NewStyle().Foreground(ColorGray).
		Render("Binary arithmetic drill")

	rules := lipgloss.NewStyle().Foreground(ColorWhite).Render(strings.Join([]string{
		fmt.Sprintf("Start with %d remaining.", game.StartingCounter),
		"A correct answer takes one off, a wrong or late one adds two.",
		fmt.Sprintf("Reach 0 to win. Go above %d and it's game over.", game.LossThreshold),
		"Operands are binary; answer in decimal.",
	}, "\n"))

	var presets []string
	for _, s := range model.CountdownPresets {
		label := fmt.Sprintf(" %ds ", s)
		style := lipgloss.NewStyle().Foreground(ColorGray)
		if s == p.seconds {
			style = lipgloss.NewStyle().Background(ColorBlue).Foreground(ColorNavy).Bold(true)
		}
		presets = append(presets, style.Render(label))
	}
	timer := lipgloss.JoinHorizontal(lipgloss.Center,
		lipgloss.NewStyle().Foreground(ColorWhite).Render("Timer: "),
		lipgloss.NewStyle().Foreground(ColorBlue).Bold(true).Render(fmt.Sprintf("%ds  ", p.seconds)),
		strings.Join(presets, " "),
	)

	parts := []string{title, subtitle, "", rules, "", timer}
	if p.err != "" {
		parts = append(parts, "", lipgloss.NewStyle().Foreground(ColorRed).Render(p.err))
	}
	menu := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Center, parts...))

	footer := p.help.View(startHelp{keys: p.keys})
	body := lipgloss.Place(width, max(height-lipgloss.Height(footer), 0), lipgloss.Center, lipgloss.Center, menu)
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func clampSeconds(s int) int {
	return min(max(s, game.MinCountdown), game.MaxCountdown)
}

// nextPreset returns the smallest preset above s, or s if none is.
func nextPreset(s int) int {
	for _, preset := range model.CountdownPresets {
		if preset > s {
			return preset
		}
	}
	return s
}

// prevPreset returns the largest preset below s, or s if none is.
func prevPreset(s int) int {
	for i := len(model.CountdownPresets) - 1; i >= 0; i-- {
		if model.CountdownPresets[i] < s {
			return model.CountdownPresets[i]
		}
	}
	return s
}
