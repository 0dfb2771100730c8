package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/okanv/bankist-ledger/internal/models"
)

// BalanceOf sums every movement. Always recomputed from the current
// movement list; never cached on the account.
func BalanceOf(acc *models.Account) decimal.Decimal {
	total := decimal.Zero
	for _, mov := range acc.Movements {
		total = total.Add(mov)
	}
	return total
}

// TotalIncome sums the positive movements.
func TotalIncome(acc *models.Account) decimal.Decimal {
	total := decimal.Zero
	for _, mov := range acc.Movements {
		if mov.IsPositive() {
			total = total.Add(mov)
		}
	}
	return total
}

// TotalExpense sums the negative movements and returns the absolute value.
func TotalExpense(acc *models.Account) decimal.Decimal {
	total := decimal.Zero
	for _, mov := range acc.Movements {
		if mov.IsNegative() {
			total = total.Add(mov)
		}
	}
	return total.Abs()
}

// TotalInterest sums per-deposit interest at the account's rate.
// Each deposit contributes deposit*rate/100, but only contributions of
// at least 1 count; the cutoff applies per deposit, not to the total.
func TotalInterest(acc *models.Account) decimal.Decimal {
	total := decimal.Zero
	for _, mov := range acc.Movements {
		if !mov.IsPositive() {
			continue
		}
		contribution := mov.Mul(acc.InterestRate).Div(hundred)
		if contribution.GreaterThanOrEqual(one) {
			total = total.Add(contribution)
		}
	}
	return total
}

// Summarize derives the full ledger snapshot for one account.
func Summarize(acc *models.Account) models.LedgerSummary {
	return models.LedgerSummary{
		Balance:  BalanceOf(acc),
		Income:   TotalIncome(acc),
		Expense:  TotalExpense(acc),
		Interest: TotalInterest(acc),
	}
}
