package accounting

import (
	"sort"

	"github.com/emersonvf/centavo/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Summary aggregates the transaction set into the figures the dashboard shows.
type Summary struct {
	Income         decimal.Decimal
	Expense        decimal.Decimal // settled (PAID) expenses only
	PendingExpense decimal.Decimal // open obligations, shown separately
	Balance        decimal.Decimal
}

// ComputeBalance returns the settled balance: all income minus PAID expenses.
// PENDING expenses are categorically excluded; they belong to the
// upcoming-bills view, and including them here is what makes the two views
// disagree. This function is the single place the formula lives; every view
// must call it rather than recompute.
func ComputeBalance(transactions []domain.Transaction) decimal.Decimal {
	return Summarize(transactions).Balance
}

// Summarize computes income, settled expense, pending expense and balance in
// one pass over the transaction set.
func Summarize(transactions []domain.Transaction) Summary {
	s := Summary{
		Income:         decimal.Zero,
		Expense:        decimal.Zero,
		PendingExpense: decimal.Zero,
	}
	for _, txn := range transactions {
		switch txn.Type {
		case domain.Income:
			s.Income = s.Income.Add(txn.Amount)
		case domain.Expense:
			if txn.IsSettled() {
				s.Expense = s.Expense.Add(txn.Amount)
			} else {
				s.PendingExpense = s.PendingExpense.Add(txn.Amount)
			}
		}
	}
	s.Balance = s.Income.Sub(s.Expense)
	return s
}

// UpcomingBills returns the open bill obligations: PENDING expenses flagged
// as bills, ordered by due date ascending (falling back to the transaction
// date), truncated to limit. A limit <= 0 means no truncation.
//
// manualOrder, when non-empty, overrides the date sort for the IDs it lists:
// listed bills come first in list order, unlisted bills keep their date order
// and are appended after. The merge is display-only and never feeds balance
// calculation.
func UpcomingBills(transactions []domain.Transaction, manualOrder []string, limit int) []domain.Transaction {
	bills := make([]domain.Transaction, 0)
	for _, txn := range transactions {
		if txn.Type == domain.Expense && txn.Status == domain.Pending && txn.IsBill {
			bills = append(bills, txn)
		}
	}

	sort.SliceStable(bills, func(i, j int) bool {
		return bills[i].EffectiveDueDate().Before(bills[j].EffectiveDueDate())
	})

	if len(manualOrder) > 0 {
		bills = mergeManualOrder(bills, manualOrder)
	}

	if limit > 0 && len(bills) > limit {
		bills = bills[:limit]
	}
	return bills
}

// mergeManualOrder places bills named in order first, in the order given,
// then appends the remaining bills preserving their existing (date) order.
// Order entries that match no bill are ignored.
func mergeManualOrder(bills []domain.Transaction, order []string) []domain.Transaction {
	byID := make(map[string]int, len(bills))
	for i, b := range bills {
		byID[b.TransactionID] = i
	}

	merged := make([]domain.Transaction, 0, len(bills))
	placed := make(map[string]bool, len(order))
	for _, id := range order {
		if i, ok := byID[id]; ok && !placed[id] {
			merged = append(merged, bills[i])
			placed[id] = true
		}
	}
	for _, b := range bills {
		if !placed[b.TransactionID] {
			merged = append(merged, b)
		}
	}
	return merged
}
