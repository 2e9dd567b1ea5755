package tui

import (
	"testing"
	"time"

	"github.com/tinytelemetry/bitdrill/internal/game"
)

func TestBridge_CoalescesToNewest(t *testing.T) {
	t.Parallel()

	b := NewBridge()
	b.Publish(game.State{Version: 1})
	b.Publish(game.State{Version: 2})
	b.Publish(game.State{Version: 3})

	msg, ok := b.Wait()().(StateMsg)
	if !ok {
		t.Fatal("Wait did not produce a StateMsg")
	}
	if msg.State.Version != 3 {
		t.Fatalf("version = %d, want 3", msg.State.Version)
	}
}

func TestBridge_KeepsNewerPendingSnapshot(t *testing.T) {
	t.Parallel()

	b := NewBridge()
	b.Publish(game.State{Version: 5})
	b.Publish(game.State{Version: 4}) // delivered out of order

	msg := b.Wait()().(StateMsg)
	if msg.State.Version != 5 {
		t.Fatalf("version = %d, want 5", msg.State.Version)
	}
}

func TestBridge_PublishNeverBlocks(t *testing.T) {
	t.Parallel()

	b := NewBridge()
	done := make(chan struct{})
	go func() {
		for i := 1; i <= 100; i++ {
			b.Publish(game.State{Version: uint64(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked without a reader")
	}
}

func TestBridge_FedByController(t *testing.T) {
	t.Parallel()

	c, sched := newTestController(t)
	b := NewBridge()
	unsubscribe := c.Subscribe(b.Publish)
	defer unsubscribe()

	c.Start()
	sched.Fire()

	msg := b.Wait()().(StateMsg)
	if msg.State.Phase != game.PhaseAwaitingAnswer || msg.State.CountdownRemaining != msg.State.CountdownDuration-1 {
		t.Fatalf("bridged state = %+v, want ticked countdown", msg.State)
	}
}
