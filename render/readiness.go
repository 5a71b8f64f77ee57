package render

import (
	"sync"
	"time"
)

// readiness is a single-fire warm-up gate. The flag starts false, flips true
// exactly once after the configured delay, and the timer is cancelled on Stop
// so a closed renderer never flips late.
type readiness struct {
	mu    sync.Mutex
	ready bool
	timer *time.Timer
}

func newReadiness(delay time.Duration) *readiness {
	r := &readiness{}
	if delay <= 0 {
		r.ready = true
		return r
	}
	r.timer = time.AfterFunc(delay, func() {
		r.mu.Lock()
		r.ready = true
		r.mu.Unlock()
	})
	return r
}

func (r *readiness) Ready() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ready
}

// Stop cancels a pending flip. A gate that already fired stays ready.
func (r *readiness) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}
