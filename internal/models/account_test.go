package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestDeriveUsername(t *testing.T) {
	cases := []struct {
		owner string
		want  string
	}{
		{"Jonas Schmedtmann", "js"},
		{"Jessica Davis", "jd"},
		{"Steven Thomas Williams", "stw"},
		{"  Sarah   Smith  ", "ss"}, // extra whitespace collapses
		{"cher", "c"},
		{"", ""},
	}
	for _, c := range cases {
		if got := DeriveUsername(c.owner); got != c.want {
			t.Errorf("DeriveUsername(%q)=%q want=%q", c.owner, got, c.want)
		}
	}

	// Deterministic: repeated calls agree.
	for i := 0; i < 3; i++ {
		if got := DeriveUsername("Jonas Schmedtmann"); got != "js" {
			t.Fatalf("derivation not stable: %q", got)
		}
	}
}

func TestFirstName(t *testing.T) {
	if got := FirstName("Jonas Schmedtmann"); got != "Jonas" {
		t.Errorf("FirstName=%q want Jonas", got)
	}
	if got := FirstName(""); got != "" {
		t.Errorf("FirstName(empty)=%q want empty", got)
	}
}

func TestAddMovementKeepsSlicesAligned(t *testing.T) {
	acc := &Account{Owner: "Test User"}
	now := time.Now()
	for i := 0; i < 5; i++ {
		acc.AddMovement(decimal.NewFromInt(int64(i+1)), now.Add(time.Duration(i)*time.Hour))
		if len(acc.Movements) != len(acc.MovementDates) {
			t.Fatalf("slices diverged after %d appends: %d vs %d",
				i+1, len(acc.Movements), len(acc.MovementDates))
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	acc := &Account{Owner: "Test User", Username: "tu", PIN: 1234}
	acc.AddMovement(decimal.NewFromInt(100), time.Now())

	cp := acc.Clone()
	cp.AddMovement(decimal.NewFromInt(-50), time.Now())
	cp.PIN = 9999

	if len(acc.Movements) != 1 {
		t.Errorf("clone append leaked into original: %d movements", len(acc.Movements))
	}
	if acc.PIN != 1234 {
		t.Errorf("clone field write leaked into original: pin=%d", acc.PIN)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"500", 500},
		{"79.97", 79.97},
		{"", 0},
		{"abc", 0},
		{"-20", -20},
	}
	for _, c := range cases {
		if got := ParseAmount(c.raw); got != c.want {
			t.Errorf("ParseAmount(%q)=%v want=%v", c.raw, got, c.want)
		}
	}
}

func TestParsePIN(t *testing.T) {
	if got := ParsePIN("1111"); got != 1111 {
		t.Errorf("ParsePIN(1111)=%d", got)
	}
	// Garbage must never collide with a real PIN.
	if got := ParsePIN("nope"); got != -1 {
		t.Errorf("ParsePIN(nope)=%d want -1", got)
	}
}

func TestRequestValidation(t *testing.T) {
	if err := (TransferRequest{To: "jd", Amount: 50}).Validate(); err != nil {
		t.Errorf("valid transfer rejected: %v", err)
	}
	if err := (TransferRequest{To: "jd", Amount: 0}).Validate(); err == nil {
		t.Error("zero amount accepted")
	}
	if err := (TransferRequest{To: "", Amount: 50}).Validate(); err == nil {
		t.Error("missing receiver accepted")
	}
	if err := (LoanRequest{Amount: -3}).Validate(); err == nil {
		t.Error("negative loan accepted")
	}
	if err := (LoginRequest{Username: "js", PIN: "11x1"}).Validate(); err == nil {
		t.Error("non-numeric pin accepted")
	}
	if err := (CloseRequest{Username: "js", PIN: "1111"}).Validate(); err != nil {
		t.Errorf("valid close rejected: %v", err)
	}
}

func TestSeedAccountsShape(t *testing.T) {
	accs := SeedAccounts()
	if len(accs) != 2 {
		t.Fatalf("seed accounts=%d want 2", len(accs))
	}
	for _, acc := range accs {
		if len(acc.Movements) != len(acc.MovementDates) {
			t.Errorf("%s: movements/dates misaligned: %d vs %d",
				acc.Owner, len(acc.Movements), len(acc.MovementDates))
		}
		if acc.Username != "" {
			t.Errorf("%s: username pre-set to %q, should derive on save", acc.Owner, acc.Username)
		}
	}
}
