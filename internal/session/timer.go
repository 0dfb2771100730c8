package session

import (
	"sync"
	"time"
)

// TimerState tracks where the inactivity countdown is in its lifecycle.
type TimerState int

const (
	TimerIdle TimerState = iota
	TimerRunning
	TimerExpired
)

// DefaultTimerTicks is the reference session length: 120 one-second ticks.
const DefaultTimerTicks = 120

// Timer is the session inactivity countdown. Start always cancels any
// previous run first, so at most one countdown is live and an expiry
// can never fire twice for one session. Restart is cancel-and-recreate,
// never pause/resume.
type Timer struct {
	ticks    int
	interval time.Duration
	onTick   func(remaining int)
	onExpire func()

	mu        sync.Mutex
	remaining int
	state     TimerState
	stop      chan struct{}
}

// NewTimer builds a timer of the given tick count and tick interval.
// onTick fires with the remaining count after every tick; onExpire
// fires once when the count reaches zero. Either callback may be nil.
func NewTimer(ticks int, interval time.Duration, onTick func(remaining int), onExpire func()) *Timer {
	if ticks <= 0 {
		ticks = DefaultTimerTicks
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &Timer{
		ticks:    ticks,
		interval: interval,
		onTick:   onTick,
		onExpire: onExpire,
	}
}

// Start begins a fresh countdown from the full duration, cancelling
// any countdown already running.
func (t *Timer) Start() {
	t.mu.Lock()
	if t.stop != nil {
		close(t.stop)
	}
	stop := make(chan struct{})
	t.stop = stop
	t.remaining = t.ticks
	t.state = TimerRunning
	t.mu.Unlock()

	go t.run(stop)
}

// Stop cancels the countdown without expiring it.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
	t.state = TimerIdle
}

// Remaining reports how many ticks are left.
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// State reports the current lifecycle state.
func (t *Timer) State() TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Timer) run(stop chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.mu.Lock()
			// A restart may have replaced us between the tick firing
			// and the lock being acquired; stale runs must not touch
			// the count or signal expiry.
			if t.stop != stop {
				t.mu.Unlock()
				return
			}
			t.remaining--
			remaining := t.remaining
			expired := remaining <= 0
			if expired {
				t.state = TimerExpired
				t.stop = nil
			}
			t.mu.Unlock()

			if t.onTick != nil {
				t.onTick(remaining)
			}
			if expired {
				if t.onExpire != nil {
					t.onExpire()
				}
				return
			}
		}
	}
}
