package models

import "errors"

// Domain errors. The reference behavior surfaces none of these to the
// user; they exist so callers can still tell failure modes apart.
var (
	// ErrAuthFailed covers every bad username/PIN combination, for login
	// and for the close-account confirmation alike. Deliberately carries
	// no detail about which half was wrong.
	ErrAuthFailed = errors.New("invalid credentials")

	// ErrAccountNotFound means no account with the given username exists.
	ErrAccountNotFound = errors.New("account not found")

	// ErrBadAmount means the amount is missing, unparsable, or not > 0.
	ErrBadAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds means the sender's balance does not cover the transfer.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSameAccount means sender and receiver are the same account.
	ErrSameAccount = errors.New("cannot transfer to the same account")

	// ErrLoanDenied means no existing movement reaches 10% of the requested loan.
	ErrLoanDenied = errors.New("no qualifying deposit for requested loan")

	// ErrNoSession means the operation requires an authenticated session.
	ErrNoSession = errors.New("no active session")

	// ErrUsernameTaken means another account already derived the same handle.
	ErrUsernameTaken = errors.New("username already taken")
)
