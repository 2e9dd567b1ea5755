package game

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tinytelemetry/bitdrill/internal/drill"
	"github.com/tinytelemetry/bitdrill/internal/model"
)

// Scoring rules.
const (
	StartingCounter = 10
	LossThreshold   = 20 // the game is lost once the counter goes above this

	correctDelta = -1
	wrongDelta   = 2

	MinCountdown = 1
	MaxCountdown = 60

	tickInterval = time.Second
	maxHistory   = 64
)

// ErrInvalidDuration is returned by Configure for durations outside
// MinCountdown..MaxCountdown.
var ErrInvalidDuration = errors.New("countdown duration out of range")

// ProblemSource hands out the next problem to show.
type ProblemSource interface {
	Next() drill.Problem
}

type observer struct {
	id int
	fn func(State)
}

// Controller runs the drill: it owns the current problem, the per-question
// countdown and the remaining counter, and publishes a State snapshot to
// its observers after every transition.
//
// Calls that arrive in the wrong phase are ignored.
type Controller struct {
	mu       sync.Mutex
	problems ProblemSource
	sched    Scheduler
	newID    func() string

	phase      Phase
	counter    int
	problem    drill.Problem
	hasProblem bool
	countdown  int
	duration   int
	outcome    Outcome
	last       *Answer
	draft      string

	roundID  string
	answered int
	correct  int
	history  []int
	version  uint64

	timer    Timer
	timerGen uint64

	observers []observer
	nextObsID int
}

// Option customizes a Controller.
type Option func(*Controller)

// WithScheduler replaces the wall-clock scheduler, mainly for tests.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.sched = s }
}

// WithRoundIDs replaces the uuid generator used for round IDs.
func WithRoundIDs(fn func() string) Option {
	return func(c *Controller) { c.newID = fn }
}

// NewController creates an idle controller with the default countdown.
func NewController(problems ProblemSource, opts ...Option) *Controller {
	c := &Controller{
		problems: problems,
		sched:    RealScheduler{},
		newID:    uuid.NewString,
		phase:    PhaseIdle,
		counter:  StartingCounter,
		duration: model.DefaultCountdown,
	}
	c.countdown = c.duration
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configure sets the per-question countdown in seconds. It takes effect
// from the next question.
func (c *Controller) Configure(seconds int) error {
	if seconds < MinCountdown || seconds > MaxCountdown {
		return fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidDuration, seconds, MinCountdown, MaxCountdown)
	}
	c.apply(func() bool {
		c.duration = seconds
		if c.phase == PhaseIdle {
			c.countdown = seconds
		}
		return true
	})
	return nil
}

// Start begins a new play-through.
func (c *Controller) Start() {
	c.apply(func() bool {
		c.startLocked()
		return true
	})
}

// Restart is Start under another name; it resets everything regardless of
// the current phase.
func (c *Controller) Restart() {
	c.Start()
}

// SetDraft records the text currently typed, which is what a timeout
// submits.
func (c *Controller) SetDraft(raw string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseAwaitingAnswer {
		c.draft = raw
	}
}

// SubmitAnswer scores raw against the current problem.
func (c *Controller) SubmitAnswer(raw string) {
	c.apply(func() bool {
		return c.submitLocked(raw, false)
	})
}

// Advance moves on to the next problem after an answer was scored.
func (c *Controller) Advance() {
	c.apply(func() bool {
		if c.phase != PhaseAwaitingAdvance {
			return false
		}
		c.nextProblemLocked()
		return true
	})
}

// ReturnToMenu abandons the current game and goes back to Idle. The
// configured countdown is kept.
func (c *Controller) ReturnToMenu() {
	c.apply(func() bool {
		if c.phase == PhaseIdle {
			return false
		}
		c.stopTimerLocked()
		c.phase = PhaseIdle
		c.hasProblem = false
		c.problem = drill.Problem{}
		c.countdown = c.duration
		c.draft = ""
		log.Printf("game: round %s abandoned, back to menu", c.roundID)
		return true
	})
}

// Close cancels any running countdown. Observers are not notified.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimerLocked()
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Subscribe registers fn to receive a snapshot after every transition.
// fn runs outside the controller lock but must not block for long: ticks
// are delivered from the scheduler goroutine. The returned func removes
// the subscription.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextObsID++
	id := c.nextObsID
	c.observers = append(c.observers, observer{id: id, fn: fn})
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.observers = slices.DeleteFunc(c.observers, func(o observer) bool { return o.id == id })
	}
}

// apply runs fn under the lock and, if it reports a change, bumps the
// version and notifies observers.
func (c *Controller) apply(fn func() bool) {
	c.mu.Lock()
	if !fn() {
		c.mu.Unlock()
		return
	}
	c.version++
	snap := c.snapshotLocked()
	observers := slices.Clone(c.observers)
	c.mu.Unlock()

	for _, o := range observers {
		o.fn(snap)
	}
}

func (c *Controller) tick(gen uint64) {
	c.apply(func() bool {
		if gen != c.timerGen || c.timer == nil || c.phase != PhaseAwaitingAnswer {
			return false
		}
		c.countdown--
		if c.countdown <= 0 {
			c.countdown = 0
			c.submitLocked(c.draft, true)
		}
		return true
	})
}

func (c *Controller) startLocked() {
	c.counter = StartingCounter
	c.outcome = OutcomeNone
	c.last = nil
	c.answered = 0
	c.correct = 0
	c.history = nil
	c.roundID = c.newID()
	c.nextProblemLocked()
	log.Printf("game: round %s started, countdown %ds", c.roundID, c.duration)
}

func (c *Controller) nextProblemLocked() {
	c.problem = c.problems.Next()
	c.hasProblem = true
	c.draft = ""
	c.phase = PhaseAwaitingAnswer
	c.startCountdownLocked()
}

func (c *Controller) startCountdownLocked() {
	c.stopTimerLocked()
	c.countdown = c.duration
	c.timerGen++
	gen := c.timerGen
	c.timer = c.sched.Every(tickInterval, func() { c.tick(gen) })
}

func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) submitLocked(raw string, timedOut bool) bool {
	if c.phase != PhaseAwaitingAnswer {
		return false
	}
	c.stopTimerLocked()

	value, valid := drill.ParseAnswer(raw)
	correct := valid && value == c.problem.Answer
	c.last = &Answer{
		Raw:      raw,
		Value:    value,
		Valid:    valid,
		TimedOut: timedOut,
		Correct:  correct,
		Problem:  c.problem,
	}
	c.answered++
	if correct {
		c.correct++
		c.counter += correctDelta
	} else {
		c.counter += wrongDelta
	}
	c.counter = max(c.counter, 0)

	c.history = append(c.history, c.counter)
	if len(c.history) > maxHistory {
		c.history = slices.Clone(c.history[len(c.history)-maxHistory:])
	}

	switch {
	case c.counter <= 0:
		c.endLocked(OutcomeWin)
	case c.counter > LossThreshold:
		c.endLocked(OutcomeLoss)
	default:
		c.phase = PhaseAwaitingAdvance
	}
	return true
}

func (c *Controller) endLocked(outcome Outcome) {
	c.stopTimerLocked()
	c.phase = PhaseEnded
	c.outcome = outcome
	c.draft = ""
	log.Printf("game: round %s ended in %s after %d answers (%d correct)", c.roundID, outcome, c.answered, c.correct)
}

func (c *Controller) snapshotLocked() State {
	s := State{
		Phase:              c.phase,
		RemainingCounter:   c.counter,
		IsActive:           c.phase == PhaseAwaitingAnswer || c.phase == PhaseAwaitingAdvance,
		IsAwaitingAdvance:  c.phase == PhaseAwaitingAdvance,
		Problem:            c.problem,
		HasProblem:         c.hasProblem,
		CountdownRemaining: c.countdown,
		CountdownDuration:  c.duration,
		Outcome:            c.outcome,
		RoundID:            c.roundID,
		Answered:           c.answered,
		Correct:            c.correct,
		History:            slices.Clone(c.history),
		Version:            c.version,
	}
	if c.last != nil {
		a := *c.last
		s.LastAnswer = &a
	}
	return s
}
