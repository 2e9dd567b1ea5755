package game

import (
	"sync"
	"time"
)

// Timer is a scheduled repeating callback. Stop may be called any number
// of times; only the first call has an effect.
type Timer interface {
	Stop()
}

// Scheduler starts repeating timers for the controller's countdown.
type Scheduler interface {
	Every(d time.Duration, fn func()) Timer
}

// RealScheduler runs callbacks from a time.Ticker goroutine.
type RealScheduler struct{}

func (RealScheduler) Every(d time.Duration, fn func()) Timer {
	t := &realTimer{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	go t.run(fn)
	return t
}

type realTimer struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *realTimer) run(fn func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			fn()
		}
	}
}

func (t *realTimer) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}

// FakeScheduler is deterministic and test-friendly: nothing fires until
// Fire is called.
type FakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

type fakeTimer struct {
	s       *FakeScheduler
	fn      func()
	stopped bool
}

func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{}
}

func (s *FakeScheduler) Every(_ time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{s: s, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Fire delivers one tick to every live timer.
func (s *FakeScheduler) Fire() {
	for _, fn := range s.callbacks(false) {
		fn()
	}
}

// FireAll delivers one tick to every timer ever scheduled, stopped ones
// included. It stands in for ticks already in flight when Stop ran.
func (s *FakeScheduler) FireAll() {
	for _, fn := range s.callbacks(true) {
		fn()
	}
}

// Active reports how many timers have not been stopped.
func (s *FakeScheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (s *FakeScheduler) callbacks(includeStopped bool) []func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fns := make([]func(), 0, len(s.timers))
	for _, t := range s.timers {
		if includeStopped || !t.stopped {
			fns = append(fns, t.fn)
		}
	}
	return fns
}

func (t *fakeTimer) Stop() {
	t.s.mu.Lock()
	t.stopped = true
	t.s.mu.Unlock()
}
