package interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/okanv/bankist-ledger/internal/models"
)

// AccountStore is the account collection behind the ledger. Ordered,
// mutable, looked up by username only.
type AccountStore interface {
	// Save adds an account, deriving its username from the owner name
	// when unset. Fails with ErrUsernameTaken on a handle collision.
	Save(acc *models.Account) error
	// FindByUsername returns a deep copy of the matching account.
	FindByUsername(username string) (*models.Account, error)
	// AppendMovement appends an amount/timestamp pair to the named
	// account as one atomic unit.
	AppendMovement(ctx context.Context, username string, amount decimal.Decimal, at time.Time) error
	// Remove deletes the account permanently.
	Remove(username string) error
	// All returns deep copies of every account in insertion order.
	All() ([]*models.Account, error)
}
