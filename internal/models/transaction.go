package models

import "time"

// TransactionType represents the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// Transaction represents a single financial event. Amount is an unsigned
// magnitude in minor currency units; the sign applied to the linked account
// balance is derived from Type.
type Transaction struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	AccountID   *uint           `gorm:"index" json:"account_id,omitempty"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Description string          `gorm:"not null" json:"description"`
	Category    string          `gorm:"not null" json:"category"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Date        time.Time       `gorm:"not null" json:"date"`
	Notes       string          `json:"notes,omitempty"`
}

// BalanceDelta returns the signed effect of the transaction on its linked
// account. Expenses subtract; income and transfers add, the convention the
// ledger has always used for single-account transfers.
func (t *Transaction) BalanceDelta() int64 {
	if t.Type == TransactionTypeExpense {
		return -t.Amount
	}
	return t.Amount
}
