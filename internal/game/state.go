package game

import "github.com/tinytelemetry/bitdrill/internal/drill"

// Phase is the controller's position in the game loop.
type Phase int

const (
	PhaseIdle            Phase = iota // pre-game menu, nothing running
	PhaseAwaitingAnswer               // problem shown, countdown running
	PhaseAwaitingAdvance              // answer scored, waiting for "next"
	PhaseEnded                        // win or loss reached
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingAnswer:
		return "awaiting-answer"
	case PhaseAwaitingAdvance:
		return "awaiting-advance"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome records how a finished game ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "none"
	}
}

// Answer is the scored result of one submission.
type Answer struct {
	Raw      string
	Value    int
	Valid    bool // false when Raw was empty or not a number
	TimedOut bool
	Correct  bool
	Problem  drill.Problem
}

// State is an immutable snapshot of the controller. Snapshots share no
// memory with the controller or with each other.
type State struct {
	Phase              Phase
	RemainingCounter   int
	IsActive           bool
	IsAwaitingAdvance  bool
	Problem            drill.Problem
	HasProblem         bool
	CountdownRemaining int
	CountdownDuration  int
	Outcome            Outcome
	LastAnswer         *Answer

	RoundID  string
	Answered int
	Correct  int
	History  []int // counter value after each answer, oldest first

	// Version increases with every transition so readers can drop stale
	// snapshots delivered out of order.
	Version uint64
}
