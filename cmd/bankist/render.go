package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/okanv/bankist-ledger/internal/interfaces"
	"github.com/okanv/bankist-ledger/internal/models"
)

// termRenderer is the demo's render sink: it prints the dashboard to a
// writer. Per-tick countdown updates are kept aside and folded into
// the next full render instead of rewriting the terminal every second.
type termRenderer struct {
	mu        sync.Mutex
	out       io.Writer
	countdown string
}

func newTermRenderer(out io.Writer) *termRenderer {
	return &termRenderer{out: out}
}

func (r *termRenderer) Render(view models.AccountView) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.out, "\n%s  (%s)\n", view.Welcome, view.Now)
	order := "latest first"
	if view.Sorted {
		order = "by amount"
	}
	fmt.Fprintf(r.out, "Movements (%s):\n", order)
	for _, row := range view.Movements {
		fmt.Fprintf(r.out, "  %2d  %-10s  %-14s  %s\n", row.Index, row.Type, row.Date, row.Amount)
	}
	fmt.Fprintf(r.out, "Balance: %s\n", view.Balance)
	fmt.Fprintf(r.out, "In: %s   Out: %s   Interest: %s\n", view.SumIn, view.SumOut, view.SumInterest)
	fmt.Fprintf(r.out, "Session expires in %s\n", view.Countdown)
}

func (r *termRenderer) Countdown(remaining string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.countdown = remaining
}

func (r *termRenderer) Clear(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "\n%s\n", message)
}

var _ interfaces.RenderSink = (*termRenderer)(nil)
