package service

import (
	"sync"
	"time"
)

// ResendTimer counts down the seconds until a new code may be requested.
// With a zero interval it never ticks by itself and Tick drives it.
type ResendTimer struct {
	mu        sync.Mutex
	duration  int
	remaining int
	interval  time.Duration
	done      chan struct{}
}

func NewResendTimer(seconds int, interval time.Duration) *ResendTimer {
	return &ResendTimer{
		duration:  seconds,
		remaining: seconds,
		interval:  interval,
	}
}

// Start resets the countdown to its full duration, replacing any countdown
// already running.
func (t *ResendTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.remaining = t.duration
	if t.interval <= 0 {
		return
	}

	done := make(chan struct{})
	t.done = done
	go t.run(done)
}

func (t *ResendTimer) run(done chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			remaining, current := t.tick(done)
			if !current || remaining == 0 {
				return
			}
		}
	}
}

func (t *ResendTimer) tick(done chan struct{}) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done != done {
		return t.remaining, false
	}
	if t.remaining > 0 {
		t.remaining--
	}
	return t.remaining, true
}

// Tick advances the countdown by one second and returns what is left.
func (t *ResendTimer) Tick() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.remaining > 0 {
		t.remaining--
	}
	return t.remaining
}

func (t *ResendTimer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

func (t *ResendTimer) Ready() bool {
	return t.Remaining() == 0
}

// Stop halts ticking and keeps the current count.
func (t *ResendTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *ResendTimer) stopLocked() {
	if t.done != nil {
		close(t.done)
		t.done = nil
	}
}
