package domain

import "time"

// TransactionType represents the kind of a points ledger entry
type TransactionType string

const (
	TransactionEarned   TransactionType = "earned"
	TransactionSpent    TransactionType = "spent"
	TransactionRefunded TransactionType = "refunded"
)

// PointsTransaction is a single immutable entry of the points ledger.
// Entries are never updated or deleted; corrections are made by appending
// compensating entries. Amount is always a positive integer.
type PointsTransaction struct {
	ID          int64
	UserID      int64
	Amount      int64
	Type        TransactionType
	Description string
	CreatedAt   time.Time
}

// SignedAmount returns the entry's contribution to the balance:
// negative for spent, positive for earned and refunded
func (t *PointsTransaction) SignedAmount() int64 {
	if t.Type == TransactionSpent {
		return -t.Amount
	}
	return t.Amount
}

// BalanceOf folds a user's transaction history into a balance.
// This fold is the source of truth; any cached balance must agree with it.
// The result does not depend on the order of the entries.
func BalanceOf(transactions []*PointsTransaction) int64 {
	var balance int64
	for _, tx := range transactions {
		balance += tx.SignedAmount()
	}
	return balance
}
