package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/okanv/bankist-ledger/internal/interfaces"
	"github.com/okanv/bankist-ledger/internal/models"
	"github.com/okanv/bankist-ledger/internal/models/events"
)

const (
	// TopicTransferCompleted and friends name the event streams.
	TopicTransferCompleted = "transfer_completed"
	TopicLoanDisbursed     = "loan_disbursed"
	TopicAccountClosed     = "account_closed"
)

var (
	one     = decimal.New(1, 0)
	hundred = decimal.New(100, 0)
	// A loan is approved only when some past movement reaches this
	// fraction of the requested amount.
	loanApprovalRatio = decimal.RequireFromString("0.1")
)

// Ledger validates and applies every movement-producing operation.
// It holds one mutex per account so a balance check and the append it
// guards happen as a unit, with ordered locking across account pairs.
type Ledger struct {
	store  interfaces.AccountStore
	events interfaces.EventPublisher
	clock  interfaces.Clock
	log    *zap.Logger

	muMap map[string]*sync.Mutex // per-account locks
	mapMu sync.Mutex             // protects muMap itself
}

// New builds a Ledger on top of the given store. events may be nil
// when nobody cares about the event stream.
func New(store interfaces.AccountStore, publisher interfaces.EventPublisher, clock interfaces.Clock, log *zap.Logger) *Ledger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ledger{
		store:  store,
		events: publisher,
		clock:  clock,
		log:    log,
		muMap:  make(map[string]*sync.Mutex),
	}
}

func (l *Ledger) accountLock(username string) *sync.Mutex {
	l.mapMu.Lock()
	defer l.mapMu.Unlock()

	if _, exists := l.muMap[username]; !exists {
		l.muMap[username] = &sync.Mutex{}
	}
	return l.muMap[username]
}

// Balance returns the recomputed balance for the named account.
func (l *Ledger) Balance(username string) (decimal.Decimal, error) {
	acc, err := l.store.FindByUsername(username)
	if err != nil {
		return decimal.Zero, err
	}
	return BalanceOf(acc), nil
}

// Transfer moves amount from sender to receiver. Preconditions: amount
// positive, distinct existing accounts, sender balance covers it. On
// success each side gains exactly one movement/date pair; on any
// failure neither account changes.
func (l *Ledger) Transfer(ctx context.Context, sender, receiver string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return models.ErrBadAmount
	}
	if sender == receiver {
		return models.ErrSameAccount
	}
	if _, err := l.store.FindByUsername(receiver); err != nil {
		return err
	}

	senderMu := l.accountLock(sender)
	receiverMu := l.accountLock(receiver)

	// Lock in username order to avoid deadlocks.
	if sender < receiver {
		senderMu.Lock()
		receiverMu.Lock()
	} else {
		receiverMu.Lock()
		senderMu.Lock()
	}
	defer senderMu.Unlock()
	defer receiverMu.Unlock()

	acc, err := l.store.FindByUsername(sender)
	if err != nil {
		return err
	}
	if BalanceOf(acc).LessThan(amount) {
		return models.ErrInsufficientFunds
	}

	now := l.clock.Now()
	if err := l.store.AppendMovement(ctx, sender, amount.Neg(), now); err != nil {
		return err
	}
	if err := l.store.AppendMovement(ctx, receiver, amount, now); err != nil {
		return err
	}

	l.log.Info("transfer completed",
		zap.String("from", sender),
		zap.String("to", receiver),
		zap.String("amount", amount.String()),
	)
	l.publish(TopicTransferCompleted, events.TransferCompleted{
		FromUsername: sender,
		ToUsername:   receiver,
		Amount:       amount,
		OccurredAt:   now,
	})
	return nil
}

// ApproveLoan checks loan eligibility and returns the amount that
// would be disbursed: the request floored to a whole number. Approval
// requires at least one existing movement of 10% of that amount.
// Nothing is mutated here; disbursal happens separately, after the
// caller's delay.
func (l *Ledger) ApproveLoan(username string, amount decimal.Decimal) (decimal.Decimal, error) {
	floored := amount.Floor()
	if !floored.IsPositive() {
		return decimal.Zero, models.ErrBadAmount
	}

	acc, err := l.store.FindByUsername(username)
	if err != nil {
		return decimal.Zero, err
	}

	threshold := floored.Mul(loanApprovalRatio)
	for _, mov := range acc.Movements {
		if mov.GreaterThanOrEqual(threshold) {
			return floored, nil
		}
	}
	return decimal.Zero, models.ErrLoanDenied
}

// DisburseLoan credits an approved loan to the account. requestedAt is
// when the loan was asked for; the movement itself is stamped with the
// current time.
func (l *Ledger) DisburseLoan(ctx context.Context, username string, amount decimal.Decimal, requestedAt time.Time) error {
	mu := l.accountLock(username)
	mu.Lock()
	defer mu.Unlock()

	now := l.clock.Now()
	if err := l.store.AppendMovement(ctx, username, amount, now); err != nil {
		return err
	}

	l.log.Info("loan disbursed",
		zap.String("username", username),
		zap.String("amount", amount.String()),
	)
	l.publish(TopicLoanDisbursed, events.LoanDisbursed{
		LoanID:      uuid.New().String(),
		Username:    username,
		Amount:      amount,
		RequestedAt: requestedAt,
		DisbursedAt: now,
	})
	return nil
}

// CloseAccount removes the account permanently once the confirmation
// username and PIN both match exactly. A mismatch leaves the store
// untouched.
func (l *Ledger) CloseAccount(username, confirmUsername string, confirmPIN int) error {
	acc, err := l.store.FindByUsername(username)
	if err != nil {
		return err
	}
	if confirmUsername != acc.Username || confirmPIN != acc.PIN {
		return models.ErrAuthFailed
	}
	if err := l.store.Remove(username); err != nil {
		return err
	}

	l.log.Info("account closed", zap.String("username", username))
	l.publish(TopicAccountClosed, events.AccountClosed{
		Username: username,
		At:       l.clock.Now(),
	})
	return nil
}

func (l *Ledger) publish(topic string, event any) {
	if l.events == nil {
		return
	}
	if err := l.events.Publish(topic, event); err != nil {
		l.log.Warn("event publish failed", zap.String("topic", topic), zap.Error(err))
	}
}
