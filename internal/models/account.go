package models

// AccountType represents the kind of financial account.
type AccountType string

const (
	AccountTypeBank    AccountType = "bank"
	AccountTypeCredit  AccountType = "credit"
	AccountTypeEwallet AccountType = "ewallet"
	AccountTypeGcash   AccountType = "gcash"
	AccountTypeMaya    AccountType = "maya"
)

// Account represents a financial account owned by a user. Balance is stored
// in minor currency units (cents) and reflects the net effect of every
// transaction currently linked to the account.
type Account struct {
	Base
	UserID        uint        `gorm:"not null;index" json:"user_id"`
	Name          string      `gorm:"not null" json:"name"`
	Type          AccountType `gorm:"not null" json:"type"`
	AccountNumber string      `gorm:"not null" json:"account_number"`
	Balance       int64       `gorm:"type:bigint;not null;default:0" json:"balance"`
	Currency      string      `gorm:"not null;default:'USD'" json:"currency"`
	Icon          string      `json:"icon,omitempty"`

	// Transactions reference accounts weakly: deleting an account keeps its
	// transaction history intact.
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"transactions,omitempty"`
}
