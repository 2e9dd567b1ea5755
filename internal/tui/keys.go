package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/tinytelemetry/bitdrill/internal/game"
)

// KeyMap defines all key bindings with built-in help text.
type KeyMap struct {
	// Global
	ForceQuit key.Binding
	Quit      key.Binding
	Back      key.Binding
	Help      key.Binding

	// Start menu
	PrevPreset key.Binding
	NextPreset key.Binding
	Longer     key.Binding
	Shorter    key.Binding
	Start      key.Binding

	// Game
	Submit  key.Binding
	Next    key.Binding
	Restart key.Binding
	Menu    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),

		PrevPreset: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev preset"),
		),
		NextPreset: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next preset"),
		),
		Longer: key.NewBinding(
			key.WithKeys("+", "=", "up", "k"),
			key.WithHelp("+/↑", "+1s"),
		),
		Shorter: key.NewBinding(
			key.WithKeys("-", "down", "j"),
			key.WithHelp("-/↓", "-1s"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),

		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "next question"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "main menu"),
		),
	}
}

// startHelp is the help.KeyMap shown under the start menu.
type startHelp struct{ keys KeyMap }

func (h startHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.PrevPreset, h.keys.NextPreset, h.keys.Start, h.keys.Help, h.keys.Quit}
}

// FullHelp lists the menu keys next to the in-game ones so players can see
// them before starting.
func (h startHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.keys.PrevPreset, h.keys.NextPreset, h.keys.Longer, h.keys.Shorter},
		{h.keys.Start, h.keys.Help, h.keys.Quit, h.keys.ForceQuit},
		{h.keys.Submit, h.keys.Next, h.keys.Back},
		{h.keys.Restart, h.keys.Menu},
	}
}

// gameHelp shows only the bindings that do something in the current phase.
type gameHelp struct {
	keys  KeyMap
	phase game.Phase
}

func (h gameHelp) ShortHelp() []key.Binding {
	switch h.phase {
	case game.PhaseAwaitingAnswer:
		return []key.Binding{h.keys.Submit, h.keys.Back, h.keys.ForceQuit}
	case game.PhaseAwaitingAdvance:
		return []key.Binding{h.keys.Next, h.keys.Back, h.keys.Quit}
	case game.PhaseEnded:
		return []key.Binding{h.keys.Restart, h.keys.Menu, h.keys.Quit}
	default:
		return []key.Binding{h.keys.Back, h.keys.Quit}
	}
}

func (h gameHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }
