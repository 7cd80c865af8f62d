package grid

import (
	"math/rand"
	"sync"
	"testing"
	"time"
)

func TestScheduler_DeliversPicks(t *testing.T) {
	s := NewSession(testItems(5), 12, rand.New(rand.NewSource(11)))

	var mu sync.Mutex
	var ticks [][]Pick
	done := make(chan struct{})

	sched := NewScheduler(s, 10*time.Millisecond, 1, func(picks []Pick) {
		mu.Lock()
		ticks = append(ticks, picks)
		n := len(ticks)
		mu.Unlock()
		if n == 3 {
			close(done)
		}
	})
	sched.Start()
	defer sched.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Scheduler did not deliver 3 ticks in time")
	}

	mu.Lock()
	defer mu.Unlock()
	for i, picks := range ticks[:3] {
		if len(picks) != 1 {
			t.Errorf("Tick %d carried %d picks, expected 1", i, len(picks))
		}
	}
}

func TestScheduler_StopEndsTicks(t *testing.T) {
	s := NewSession(testItems(3), 6, rand.New(rand.NewSource(5)))

	var mu sync.Mutex
	count := 0
	sched := NewScheduler(s, 5*time.Millisecond, 1, func([]Pick) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	sched.Start()
	time.Sleep(30 * time.Millisecond)
	sched.Stop()

	mu.Lock()
	after := count
	mu.Unlock()

	time.Sleep(30 * time.Millisecond)

	mu.Lock()
	final := count
	mu.Unlock()

	if final != after {
		t.Errorf("Ticks continued after Stop: %d -> %d", after, final)
	}
}

func TestScheduler_StartIsIdempotent(t *testing.T) {
	s := NewSession(testItems(2), 4, rand.New(rand.NewSource(8)))
	sched := NewScheduler(s, time.Hour, 1, nil)

	sched.Start()
	sched.Start() // second Start must not spawn a second loop
	sched.Stop()
	sched.Stop() // second Stop must not panic
}

func TestScheduler_SingleItemKeepsTicking(t *testing.T) {
	// With one item every tick is a no-op; the callback must not fire but
	// the loop must not die either.
	s := NewSession(testItems(1), 4, rand.New(rand.NewSource(4)))

	fired := make(chan struct{}, 1)
	sched := NewScheduler(s, 5*time.Millisecond, 1, func([]Pick) {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	sched.Start()
	defer sched.Stop()

	select {
	case <-fired:
		t.Error("Callback fired for a single-item dataset")
	case <-time.After(50 * time.Millisecond):
	}
}
