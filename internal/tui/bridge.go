package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/bitdrill/internal/game"
)

// StateMsg carries a controller snapshot into the Bubble Tea loop.
type StateMsg struct {
	State game.State
}

// Bridge hands controller snapshots to the Bubble Tea program. Publish
// never blocks: the channel holds one snapshot and a newer one replaces
// whatever is still waiting, so publishing from inside Update is safe.
type Bridge struct {
	mu sync.Mutex
	ch chan game.State
}

func NewBridge() *Bridge {
	return &Bridge{ch: make(chan game.State, 1)}
}

// Publish is meant to be passed to Controller.Subscribe.
func (b *Bridge) Publish(s game.State) {
	b.mu.Lock()
	defer b.mu.Unlock()

	select {
	case pending := <-b.ch:
		if pending.Version > s.Version {
			s = pending
		}
	default:
	}
	b.ch <- s
}

// Wait returns a command that blocks until a snapshot is published.
func (b *Bridge) Wait() tea.Cmd {
	return func() tea.Msg {
		return StateMsg{State: <-b.ch}
	}
}
