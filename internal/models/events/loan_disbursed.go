package events

import (
	"time"

	"github.com/shopspring/decimal"
)

type LoanDisbursed struct {
	LoanID      string          `json:"loan_id"`
	Username    string          `json:"username"`
	Amount      decimal.Decimal `json:"amount"`
	RequestedAt time.Time       `json:"requested_at"`
	DisbursedAt time.Time       `json:"disbursed_at"`
}
