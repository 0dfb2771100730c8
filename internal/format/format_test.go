package format

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var now = time.Date(2020, 8, 1, 12, 0, 0, 0, time.UTC)

func TestMovementDateRelativeLabels(t *testing.T) {
	cases := []struct {
		t    time.Time
		want string
	}{
		{now, "Today"},
		{now.Add(-2 * time.Hour), "Today"},
		{now.Add(-24 * time.Hour), "Yesterday"},
		{now.Add(-3 * 24 * time.Hour), "3 days ago"},
		{now.Add(-7 * 24 * time.Hour), "7 days ago"},
	}
	for _, c := range cases {
		if got := MovementDate(c.t, now, "pt-PT"); got != c.want {
			t.Errorf("MovementDate(%v)=%q want=%q", c.t, got, c.want)
		}
	}
}

func TestMovementDateFallsBackToCalendar(t *testing.T) {
	old := time.Date(2020, 7, 11, 23, 36, 0, 0, time.UTC)

	if got := MovementDate(old, now, "pt-PT"); got != "11/07/2020" {
		t.Errorf("pt-PT=%q want 11/07/2020", got)
	}
	if got := MovementDate(old, now, "en-US"); got != "07/11/2020" {
		t.Errorf("en-US=%q want 07/11/2020", got)
	}
}

func TestLoginTime(t *testing.T) {
	at := time.Date(2020, 8, 1, 9, 5, 0, 0, time.UTC)
	if got := LoginTime(at, "pt-PT"); got != "01/08/2020, 09:05" {
		t.Errorf("pt-PT=%q", got)
	}
	if got := LoginTime(at, "en-US"); got != "08/01/2020, 09:05" {
		t.Errorf("en-US=%q", got)
	}
}

func TestCountdown(t *testing.T) {
	cases := []struct {
		remaining int
		want      string
	}{
		{120, "02:00"},
		{119, "01:59"},
		{61, "01:01"},
		{0, "00:00"},
		{-5, "00:00"},
	}
	for _, c := range cases {
		if got := Countdown(c.remaining); got != c.want {
			t.Errorf("Countdown(%d)=%q want=%q", c.remaining, got, c.want)
		}
	}
}

func TestCurrencyCarriesSymbolAndValue(t *testing.T) {
	got := Currency(decimal.RequireFromString("1300"), "en-US", "USD")
	if !strings.Contains(got, "$") {
		t.Errorf("USD format lost its symbol: %q", got)
	}
	if !strings.Contains(got, "1,300") {
		t.Errorf("en-US grouping missing: %q", got)
	}

	got = Currency(decimal.RequireFromString("-306.5"), "pt-PT", "EUR")
	if !strings.Contains(got, "€") {
		t.Errorf("EUR format lost its symbol: %q", got)
	}

	// Unknown locale and code still produce something usable.
	got = Currency(decimal.RequireFromString("10"), "??", "???")
	if got == "" {
		t.Error("fallback produced empty string")
	}
}
