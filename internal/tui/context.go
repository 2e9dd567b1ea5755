package tui

import "github.com/tinytelemetry/bitdrill/internal/game"

// GameController is the part of *game.Controller the pages drive. Pages
// never touch controller state directly; they call these and render the
// snapshots that come back.
type GameController interface {
	Configure(seconds int) error
	Start()
	Restart()
	SetDraft(raw string)
	SubmitAnswer(raw string)
	Advance()
	ReturnToMenu()
	State() game.State
}

var _ GameController = (*game.Controller)(nil)
