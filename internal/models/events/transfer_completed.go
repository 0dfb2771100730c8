package events

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransferCompleted struct {
	FromUsername string          `json:"from_username"`
	ToUsername   string          `json:"to_username"`
	Amount       decimal.Decimal `json:"amount"`
	OccurredAt   time.Time       `json:"occurred_at"`
}
