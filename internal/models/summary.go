package models

import "github.com/shopspring/decimal"

// LedgerSummary is the derived financial snapshot for one account,
// recomputed from the movement list on every refresh.
type LedgerSummary struct {
	Balance  decimal.Decimal
	Income   decimal.Decimal // sum of positive movements
	Expense  decimal.Decimal // absolute sum of negative movements
	Interest decimal.Decimal // per-deposit interest, small contributions dropped
}
