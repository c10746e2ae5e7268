package game

import (
	"sync"
	"time"
)

// Scheduler owns every live timer of one room: the draw-expiry timer, the
// hint reveals and the between-rounds grace delay. All of them are cancelled
// as a unit by advancing a generation counter, so a callback scheduled for a
// round that has since ended is a guaranteed no-op even if its timer already
// fired and is waiting on the room lock.
type Scheduler struct {
	mu     sync.Mutex
	gen    uint64
	timers []*time.Timer
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule runs fn after d unless CancelAll is called first. fn receives the
// generation it was scheduled under; callbacks that go on to mutate room
// state must re-check Live(gen) while holding the room lock, because a timer
// can fire concurrently with the cancellation that obsoletes it.
func (s *Scheduler) Schedule(d time.Duration, fn func(gen uint64)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gen := s.gen
	t := time.AfterFunc(d, func() {
		if s.Live(gen) {
			fn(gen)
		}
	})
	s.timers = append(s.timers, t)
}

// CancelAll invalidates every scheduled callback, fired or not.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}

// Live reports whether callbacks scheduled under gen are still current.
func (s *Scheduler) Live(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen == gen
}

// Generation returns the current generation token.
func (s *Scheduler) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}
