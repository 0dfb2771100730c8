package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the tunables of the demo. Everything has a default;
// a .env file or real environment variables override.
type Config struct {
	TimerTicks   int           // session length in ticks
	TickInterval time.Duration // wall time per tick
	LoanDelay    time.Duration // artificial loan approval wait
	LogLevel     string        // zap level name
}

// Load reads .env if present, then the environment.
func Load() Config {
	// Missing .env is fine; env vars still apply.
	_ = godotenv.Load()

	return Config{
		TimerTicks:   getInt("BANKIST_TIMER_TICKS", 120),
		TickInterval: getDuration("BANKIST_TICK_INTERVAL", time.Second),
		LoanDelay:    getDuration("BANKIST_LOAN_DELAY", 2500*time.Millisecond),
		LogLevel:     getEnv("BANKIST_LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}
	return v
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return defaultVal
	}
	return v
}
