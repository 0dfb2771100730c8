package session

import (
	"sync/atomic"
	"testing"
	"time"
)

func waitExpired(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not expire in time")
	}
}

func TestTimerExpiresOnce(t *testing.T) {
	var fired int32
	expired := make(chan struct{})
	timer := NewTimer(3, time.Millisecond, nil, func() {
		atomic.AddInt32(&fired, 1)
		close(expired)
	})

	timer.Start()
	waitExpired(t, expired)

	// Give any stray goroutine a chance to double-fire (it must not).
	time.Sleep(20 * time.Millisecond)
	if n := atomic.LoadInt32(&fired); n != 1 {
		t.Fatalf("expiry fired %d times", n)
	}
	if got := timer.State(); got != TimerExpired {
		t.Errorf("state=%v want TimerExpired", got)
	}
}

func TestTimerStopPreventsExpiry(t *testing.T) {
	var fired int32
	timer := NewTimer(2, time.Millisecond, nil, func() {
		atomic.AddInt32(&fired, 1)
	})

	timer.Start()
	timer.Stop()
	time.Sleep(20 * time.Millisecond)

	if n := atomic.LoadInt32(&fired); n != 0 {
		t.Fatalf("expiry fired %d times after Stop", n)
	}
	if got := timer.State(); got != TimerIdle {
		t.Errorf("state=%v want TimerIdle", got)
	}
}

func TestTimerRestartResetsRemaining(t *testing.T) {
	ticked := make(chan int, 64)
	timer := NewTimer(50, time.Millisecond, func(remaining int) {
		select {
		case ticked <- remaining:
		default:
		}
	}, nil)

	timer.Start()
	// Let a few ticks pass, then restart.
	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("no tick observed")
	}
	timer.Start()

	if got := timer.Remaining(); got != 50 {
		// One tick may already have landed after the restart.
		if got < 49 {
			t.Fatalf("remaining=%d after restart, want full duration", got)
		}
	}
	timer.Stop()
}

func TestTimerRestartNeverStacksExpirySignals(t *testing.T) {
	var fired int32
	expired := make(chan struct{}, 8)
	timer := NewTimer(2, time.Millisecond, nil, func() {
		atomic.AddInt32(&fired, 1)
		expired <- struct{}{}
	})

	// Rapid restarts: only the last run may ever expire, and only once.
	for i := 0; i < 5; i++ {
		timer.Start()
	}
	waitExpired(t, expired)
	time.Sleep(20 * time.Millisecond)

	if n := atomic.LoadInt32(&fired); n != 1 {
		t.Fatalf("expiry fired %d times across restarts", n)
	}
}

func TestTimerDefaults(t *testing.T) {
	timer := NewTimer(0, 0, nil, nil)
	if timer.ticks != DefaultTimerTicks {
		t.Errorf("ticks=%d want %d", timer.ticks, DefaultTimerTicks)
	}
	if timer.interval != time.Second {
		t.Errorf("interval=%v want 1s", timer.interval)
	}
	if got := timer.State(); got != TimerIdle {
		t.Errorf("fresh timer state=%v want TimerIdle", got)
	}
}
