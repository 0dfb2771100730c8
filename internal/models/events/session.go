package events

import "time"

// Reasons a session can end.
const (
	ReasonLogout  = "logout"
	ReasonExpired = "expired"
	ReasonClosed  = "account_closed"
)

type SessionStarted struct {
	SessionID string    `json:"session_id"`
	Username  string    `json:"username"`
	At        time.Time `json:"at"`
}

type SessionEnded struct {
	SessionID string    `json:"session_id"`
	Username  string    `json:"username"`
	Reason    string    `json:"reason"`
	At        time.Time `json:"at"`
}

type AccountClosed struct {
	Username string    `json:"username"`
	At       time.Time `json:"at"`
}
