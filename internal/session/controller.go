// Package session owns the authenticated-session lifecycle: login,
// logout, the inactivity countdown, and the dashboard operations that
// may only run while logged in.
package session

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/okanv/bankist-ledger/internal/format"
	"github.com/okanv/bankist-ledger/internal/interfaces"
	"github.com/okanv/bankist-ledger/internal/ledger"
	"github.com/okanv/bankist-ledger/internal/models"
	"github.com/okanv/bankist-ledger/internal/models/events"
)

const (
	TopicSessionStarted = "session_started"
	TopicSessionEnded   = "session_ended"

	// DefaultLoanDelay is the artificial approval wait before a loan lands.
	DefaultLoanDelay = 2500 * time.Millisecond

	loggedOutMessage = "Log in to get started"
)

// Session is the context of one authenticated account. A fresh ID per
// login lets deferred work tell whether the session it was scheduled
// under is still the live one.
type Session struct {
	ID       string
	Username string
	LoginAt  time.Time
}

// Config wires a Controller. Store, Ledger, Render and Clock are
// required; the rest have working defaults.
type Config struct {
	Store        interfaces.AccountStore
	Ledger       *ledger.Ledger
	Events       interfaces.EventPublisher
	Render       interfaces.RenderSink
	Clock        interfaces.Clock
	Logger       *zap.Logger
	TimerTicks   int
	TickInterval time.Duration
	LoanDelay    time.Duration
}

// Controller holds the one live session (or none) and delegates every
// mutation to the ledger. All session state sits behind its mutex;
// nothing is ambient.
type Controller struct {
	store     interfaces.AccountStore
	ledger    *ledger.Ledger
	events    interfaces.EventPublisher
	render    interfaces.RenderSink
	clock     interfaces.Clock
	log       *zap.Logger
	timer     *Timer
	loanDelay time.Duration

	mu      sync.Mutex
	current *Session
	sorted  bool
}

func NewController(cfg Config) *Controller {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.LoanDelay <= 0 {
		cfg.LoanDelay = DefaultLoanDelay
	}
	c := &Controller{
		store:     cfg.Store,
		ledger:    cfg.Ledger,
		events:    cfg.Events,
		render:    cfg.Render,
		clock:     cfg.Clock,
		log:       cfg.Logger,
		loanDelay: cfg.LoanDelay,
	}
	c.timer = NewTimer(cfg.TimerTicks, cfg.TickInterval, c.onTick, c.onExpire)
	return c
}

// Login authenticates by username and PIN and returns the new session
// context. Any failure, unknown user or wrong PIN alike, comes back as
// ErrAuthFailed with no further detail. Success replaces whatever
// session was active and starts the countdown from the top.
func (c *Controller) Login(req models.LoginRequest) (*Session, error) {
	if err := req.Validate(); err != nil {
		return nil, models.ErrAuthFailed
	}
	acc, err := c.store.FindByUsername(req.Username)
	if err != nil {
		return nil, models.ErrAuthFailed
	}
	if models.ParsePIN(req.PIN) != acc.PIN {
		return nil, models.ErrAuthFailed
	}

	sess := &Session{
		ID:       uuid.New().String(),
		Username: acc.Username,
		LoginAt:  c.clock.Now(),
	}
	c.mu.Lock()
	c.current = sess
	c.sorted = false
	c.mu.Unlock()

	c.timer.Start()
	c.log.Info("session started", zap.String("username", sess.Username))
	c.publish(TopicSessionStarted, events.SessionStarted{
		SessionID: sess.ID,
		Username:  sess.Username,
		At:        sess.LoginAt,
	})
	c.renderCurrent()
	cp := *sess
	return &cp, nil
}

// Logout ends the session explicitly.
func (c *Controller) Logout() {
	c.endSession(events.ReasonLogout)
}

// Current returns a copy of the active session, or nil when logged out.
func (c *Controller) Current() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	cp := *c.current
	return &cp
}

// Transfer sends money from the logged-in account. A successful
// transfer counts as activity and restarts the countdown; a failed one
// changes nothing, timer included.
func (c *Controller) Transfer(ctx context.Context, req models.TransferRequest) error {
	sess, err := c.active()
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return models.ErrBadAmount
	}
	amount := decimal.NewFromFloat(req.Amount)
	if err := c.ledger.Transfer(ctx, sess.Username, req.To, amount); err != nil {
		return err
	}

	c.timer.Start()
	c.renderCurrent()
	return nil
}

// RequestLoan validates eligibility now and schedules the disbursal
// after the approval delay. The request itself counts as activity. If
// the session that asked is gone by the time the delay elapses, the
// disbursal is dropped; a loan must never land on a closed or
// logged-out session.
func (c *Controller) RequestLoan(ctx context.Context, req models.LoanRequest) error {
	sess, err := c.active()
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return models.ErrBadAmount
	}
	approved, err := c.ledger.ApproveLoan(sess.Username, decimal.NewFromFloat(req.Amount))
	if err != nil {
		return err
	}

	c.timer.Start()
	requestedAt := c.clock.Now()
	sessionID := sess.ID
	username := sess.Username

	time.AfterFunc(c.loanDelay, func() {
		c.mu.Lock()
		stale := c.current == nil || c.current.ID != sessionID
		c.mu.Unlock()
		if stale {
			c.log.Info("deferred loan dropped",
				zap.String("username", username),
				zap.String("amount", approved.String()),
			)
			return
		}
		if err := c.ledger.DisburseLoan(ctx, username, approved, requestedAt); err != nil {
			c.log.Warn("loan disbursal failed", zap.String("username", username), zap.Error(err))
			return
		}
		c.renderCurrent()
	})
	return nil
}

// CloseAccount removes the logged-in account after the confirmation
// username and PIN match, then ends the session.
func (c *Controller) CloseAccount(req models.CloseRequest) error {
	sess, err := c.active()
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return models.ErrAuthFailed
	}
	if err := c.ledger.CloseAccount(sess.Username, req.Username, models.ParsePIN(req.PIN)); err != nil {
		return err
	}

	c.endSession(events.ReasonClosed)
	return nil
}

// ToggleSort flips between chronological and amount-ordered movement
// display and re-renders. Cosmetic, so it does not reset the timer.
func (c *Controller) ToggleSort() error {
	if _, err := c.active(); err != nil {
		return err
	}
	c.mu.Lock()
	c.sorted = !c.sorted
	c.mu.Unlock()
	c.renderCurrent()
	return nil
}

func (c *Controller) active() (*Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil, models.ErrNoSession
	}
	cp := *c.current
	return &cp, nil
}

func (c *Controller) endSession(reason string) {
	c.mu.Lock()
	sess := c.current
	c.current = nil
	c.sorted = false
	c.mu.Unlock()

	c.timer.Stop()
	if sess == nil {
		return
	}
	c.log.Info("session ended",
		zap.String("username", sess.Username),
		zap.String("reason", reason),
	)
	c.publish(TopicSessionEnded, events.SessionEnded{
		SessionID: sess.ID,
		Username:  sess.Username,
		Reason:    reason,
		At:        c.clock.Now(),
	})
	c.render.Clear(loggedOutMessage)
}

func (c *Controller) onTick(remaining int) {
	c.render.Countdown(format.Countdown(remaining))
}

func (c *Controller) onExpire() {
	c.endSession(events.ReasonExpired)
}

// renderCurrent re-derives the whole dashboard from current account
// state and pushes it to the sink; called after every state change.
func (c *Controller) renderCurrent() {
	c.mu.Lock()
	sess := c.current
	sorted := c.sorted
	c.mu.Unlock()
	if sess == nil {
		return
	}

	acc, err := c.store.FindByUsername(sess.Username)
	if err != nil {
		c.log.Warn("render skipped", zap.String("username", sess.Username), zap.Error(err))
		return
	}
	c.render.Render(c.buildView(acc, sorted))
}

func (c *Controller) buildView(acc *models.Account, sorted bool) models.AccountView {
	now := c.clock.Now()
	summary := ledger.Summarize(acc)

	type pair struct {
		amount decimal.Decimal
		at     time.Time
	}
	pairs := make([]pair, len(acc.Movements))
	for i := range acc.Movements {
		pairs[i] = pair{acc.Movements[i], acc.MovementDates[i]}
	}
	if sorted {
		sort.SliceStable(pairs, func(i, j int) bool {
			return pairs[i].amount.LessThan(pairs[j].amount)
		})
	}

	// Rows render newest (or largest, when sorted) at the top.
	rows := make([]models.MovementRow, 0, len(pairs))
	for i := len(pairs) - 1; i >= 0; i-- {
		p := pairs[i]
		typ := "deposit"
		if !p.amount.IsPositive() {
			typ = "withdrawal"
		}
		rows = append(rows, models.MovementRow{
			Index:  i + 1,
			Type:   typ,
			Date:   format.MovementDate(p.at, now, acc.Locale),
			Amount: format.Currency(p.amount, acc.Locale, acc.Currency),
		})
	}

	return models.AccountView{
		Welcome:     "Welcome back, " + models.FirstName(acc.Owner),
		Now:         format.LoginTime(now, acc.Locale),
		Movements:   rows,
		Balance:     format.Currency(summary.Balance, acc.Locale, acc.Currency),
		SumIn:       format.Currency(summary.Income, acc.Locale, acc.Currency),
		SumOut:      format.Currency(summary.Expense, acc.Locale, acc.Currency),
		SumInterest: format.Currency(summary.Interest, acc.Locale, acc.Currency),
		Sorted:      sorted,
		Countdown:   format.Countdown(c.timer.Remaining()),
	}
}

func (c *Controller) publish(topic string, event any) {
	if c.events == nil {
		return
	}
	if err := c.events.Publish(topic, event); err != nil {
		c.log.Warn("event publish failed", zap.String("topic", topic), zap.Error(err))
	}
}
