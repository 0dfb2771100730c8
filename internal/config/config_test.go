package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.TimerTicks != 120 {
		t.Errorf("TimerTicks=%d want 120", cfg.TimerTicks)
	}
	if cfg.TickInterval != time.Second {
		t.Errorf("TickInterval=%v want 1s", cfg.TickInterval)
	}
	if cfg.LoanDelay != 2500*time.Millisecond {
		t.Errorf("LoanDelay=%v want 2.5s", cfg.LoanDelay)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BANKIST_TIMER_TICKS", "30")
	t.Setenv("BANKIST_TICK_INTERVAL", "250ms")
	t.Setenv("BANKIST_LOAN_DELAY", "1s")
	t.Setenv("BANKIST_LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.TimerTicks != 30 {
		t.Errorf("TimerTicks=%d", cfg.TimerTicks)
	}
	if cfg.TickInterval != 250*time.Millisecond {
		t.Errorf("TickInterval=%v", cfg.TickInterval)
	}
	if cfg.LoanDelay != time.Second {
		t.Errorf("LoanDelay=%v", cfg.LoanDelay)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel=%q", cfg.LogLevel)
	}
}

func TestLoadIgnoresGarbage(t *testing.T) {
	t.Setenv("BANKIST_TIMER_TICKS", "lots")
	t.Setenv("BANKIST_TICK_INTERVAL", "soon")

	cfg := Load()
	if cfg.TimerTicks != 120 || cfg.TickInterval != time.Second {
		t.Errorf("garbage not ignored: %+v", cfg)
	}
}
