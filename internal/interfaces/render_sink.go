package interfaces

import "github.com/okanv/bankist-ledger/internal/models"

// RenderSink is the presentation surface. The core re-derives the full
// view after every state change and hands it over; what the sink does
// with it is not the core's concern.
type RenderSink interface {
	Render(view models.AccountView)
	// Countdown updates the remaining-session label, e.g. "01:59".
	Countdown(remaining string)
	// Clear hides the dashboard and shows a parting message.
	Clear(message string)
}
