package models

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// Account is a single bank account as shown on the dashboard.
// Movements and MovementDates are parallel slices: index i of one always
// corresponds to index i of the other. They must only ever be appended
// together, through AddMovement.
type Account struct {
	Owner         string            // display name, e.g. "Jonas Schmedtmann"
	Username      string            // derived handle, e.g. "js"; never edited by hand
	PIN           int               // numeric credential, compared by exact equality
	Movements     []decimal.Decimal // signed amounts: positive deposit, negative withdrawal
	MovementDates []time.Time       // one timestamp per movement
	InterestRate  decimal.Decimal   // percent applied to each individual deposit
	Currency      string            // ISO 4217 code, formatting hint only
	Locale        string            // BCP 47 tag, formatting hint only
}

// AddMovement appends an amount and its timestamp as one unit,
// keeping the two slices index-aligned.
func (a *Account) AddMovement(amount decimal.Decimal, at time.Time) {
	a.Movements = append(a.Movements, amount)
	a.MovementDates = append(a.MovementDates, at)
}

// Clone returns a deep copy so callers can read account state
// without being able to reach into the store's internals.
func (a *Account) Clone() *Account {
	cp := *a
	cp.Movements = make([]decimal.Decimal, len(a.Movements))
	copy(cp.Movements, a.Movements)
	cp.MovementDates = make([]time.Time, len(a.MovementDates))
	copy(cp.MovementDates, a.MovementDates)
	return &cp
}

// DeriveUsername builds the login handle from an owner's display name:
// the lowercased first letter of each whitespace-separated word,
// concatenated with no separator. "Jonas Schmedtmann" -> "js".
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, word := range strings.Fields(owner) {
		for _, r := range word {
			b.WriteRune(unicode.ToLower(r))
			break
		}
	}
	return b.String()
}

// FirstName returns the leading word of an owner's display name,
// used for the welcome greeting.
func FirstName(owner string) string {
	fields := strings.Fields(owner)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
