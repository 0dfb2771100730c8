// Package format renders amounts and timestamps for display. It is
// presentation plumbing only; no business logic lives here.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency formats an amount for the given BCP 47 locale and ISO 4217
// code, e.g. (1300, "pt-PT", "EUR") -> "€ 1 300,00" style output.
// Unknown locales fall back to English; unknown codes to EUR.
func Currency(amount decimal.Decimal, locale, code string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.EUR
	}
	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(unit.Amount(amount.InexactFloat64())))
}

// MovementDate labels a movement timestamp relative to now: "Today",
// "Yesterday", "N days ago" up to a week, then a calendar date in the
// locale's day/month order.
func MovementDate(t, now time.Time, locale string) string {
	days := daysBetween(t, now)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days <= 7:
		return fmt.Sprintf("%d days ago", days)
	}
	return t.Format(dateLayout(locale))
}

// LoginTime stamps the session start, "02/01/2006, 15:04" style.
func LoginTime(t time.Time, locale string) string {
	return t.Format(dateLayout(locale) + ", 15:04")
}

// Countdown renders remaining ticks as mm:ss for the timer label.
func Countdown(remaining int) string {
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)
}

func daysBetween(a, b time.Time) int {
	return int(math.Round(math.Abs(b.Sub(a).Hours() / 24)))
}

// golang.org/x/text has no date formatting yet, so the day/month order
// is chosen by locale family: US English puts the month first.
func dateLayout(locale string) string {
	if strings.HasPrefix(strings.ToLower(locale), "en-us") {
		return "01/02/2006"
	}
	return "02/01/2006"
}
