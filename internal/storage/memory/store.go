package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/okanv/bankist-ledger/internal/interfaces"
	"github.com/okanv/bankist-ledger/internal/models"
)

// AccountStore is an in-memory implementation of interfaces.AccountStore.
// Accounts live in an ordered slice; lookups are linear scans, which is
// fine at dashboard scale. All reads hand out deep copies so callers
// cannot mutate internal state behind the store's back.
type AccountStore struct {
	mu       sync.Mutex
	accounts []*models.Account
}

// NewAccountStore creates an empty store.
func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make([]*models.Account, 0)}
}

// Save adds an account. When the username is unset it is derived from
// the owner name first; an account without a username could never log
// in. Handle collisions are rejected rather than silently shadowed.
func (s *AccountStore) Save(acc *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if acc.Username == "" {
		acc.Username = models.DeriveUsername(acc.Owner)
	}
	for _, existing := range s.accounts {
		if existing.Username == acc.Username {
			return models.ErrUsernameTaken
		}
	}
	s.accounts = append(s.accounts, acc.Clone())
	return nil
}

// FindByUsername returns a deep copy of the matching account.
func (s *AccountStore) FindByUsername(username string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if acc.Username == username {
			return acc.Clone(), nil
		}
	}
	return nil, models.ErrAccountNotFound
}

// AppendMovement appends an amount and its timestamp to the named
// account. Both slices are appended under the same lock hold, so an
// amount can never land without its date or vice versa.
func (s *AccountStore) AppendMovement(ctx context.Context, username string, amount decimal.Decimal, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if acc.Username == username {
			acc.AddMovement(amount, at)
			return nil
		}
	}
	return models.ErrAccountNotFound
}

// Remove deletes the account with the given username. Removing the
// last account is not special; later lookups simply find nothing.
func (s *AccountStore) Remove(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, acc := range s.accounts {
		if acc.Username == username {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			return nil
		}
	}
	return models.ErrAccountNotFound
}

// All returns deep copies of every account in insertion order.
func (s *AccountStore) All() ([]*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		out = append(out, acc.Clone())
	}
	return out, nil
}

// Compile-time check: AccountStore implements interfaces.AccountStore.
var _ interfaces.AccountStore = (*AccountStore)(nil)
