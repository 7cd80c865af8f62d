package grid

import (
	"log"
	"time"
)

// Scheduler fires periodic refresh ticks against a session. One scheduler
// runs per window; it is never started when the catalog load failed, and
// once started it keeps ticking until the window closes (Stop exists for
// tests). Each tick replaces the configured number of cells, never the
// whole wall.
type Scheduler struct {
	session  *Session
	interval time.Duration
	count    int
	onTick   func([]Pick)
	done     chan struct{}
}

// NewScheduler creates a scheduler that delivers count picks to onTick
// every interval. The session is only mutated from the scheduler's
// goroutine after Start; onTick is responsible for hopping to the UI
// thread before touching widgets.
func NewScheduler(session *Session, interval time.Duration, count int, onTick func([]Pick)) *Scheduler {
	return &Scheduler{
		session:  session,
		interval: interval,
		count:    count,
		onTick:   onTick,
	}
}

// Start launches the tick loop on a background goroutine.
func (s *Scheduler) Start() {
	if s.done != nil {
		return
	}
	s.done = make(chan struct{})
	go s.run(s.done)

	log.Printf("Refresh scheduler started: interval=%s replace=%d cells=%d",
		s.interval, s.count, s.session.Len())
}

// Stop ends the tick loop.
func (s *Scheduler) Stop() {
	if s.done == nil {
		return
	}
	close(s.done)
	s.done = nil
}

func (s *Scheduler) run(done chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			picks := s.session.RefreshPicks(s.count)
			if len(picks) == 0 {
				// Single-item dataset: nothing can change, keep ticking anyway.
				continue
			}
			if s.onTick != nil {
				s.onTick(picks)
			}
		case <-done:
			return
		}
	}
}
