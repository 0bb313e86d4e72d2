package services

import (
	"time"

	"gorm.io/gorm"

	"fintrack/internal/models"
	"fintrack/internal/reports"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(username, password, email, fullName string) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	UpdateProfile(userID uint, fullName, email string) (*models.User, error)
	ChangePassword(userID uint, currentPassword, newPassword string) error
}

// AccountUpdateFields holds optional updates for an account. Nil fields are
// left unchanged.
type AccountUpdateFields struct {
	Name          *string
	Type          *models.AccountType
	AccountNumber *string
	Currency      *string
	Icon          *string
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(userID uint, name string, accountType models.AccountType, accountNumber string, balance int64, currency, icon string) (*models.Account, error)
	GetUserAccounts(userID uint) ([]models.Account, error)
	GetAccountByID(userID, accountID uint) (*models.Account, error)
	UpdateAccount(userID, accountID uint, fields AccountUpdateFields) (*models.Account, error)
	DeleteAccount(userID, accountID uint) error
	ApplyBalanceDelta(tx *gorm.DB, accountID uint, delta int64) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	AccountID *uint
	Type      *models.TransactionType
	Category  *string
	FromDate  *time.Time
	ToDate    *time.Time
}

// TransactionUpdateFields holds optional updates for a transaction. Nil
// fields are left unchanged; AccountID uses a double pointer so the link can
// be cleared as well as changed.
type TransactionUpdateFields struct {
	AccountID   **uint
	Amount      *int64
	Description *string
	Category    *string
	Type        *models.TransactionType
	Date        *time.Time
	Notes       *string
}

// TransactionServicer defines the contract for the transaction ledger.
type TransactionServicer interface {
	CreateTransaction(userID uint, accountID *uint, amount int64, description, category string, txType models.TransactionType, date time.Time, notes string) (*models.Transaction, error)
	GetUserTransactions(userID uint, filter TransactionFilter) ([]models.Transaction, error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID uint, fields TransactionUpdateFields) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
}

// TeamServicer defines the contract for team and membership management.
type TeamServicer interface {
	CreateTeam(ownerID uint, name string) (*models.Team, error)
	GetUserTeams(userID uint) ([]models.Team, error)
	GetTeamByID(userID, teamID uint) (*models.Team, error)
	GetTeamMembers(userID, teamID uint) ([]models.TeamMember, error)
	AddMember(actingUserID, teamID uint, username string, role models.TeamRole) (*models.TeamMember, error)
	RemoveMember(actingUserID, teamID, targetUserID uint) error
}

// Summary contains aggregate income/expense figures for a period.
type Summary struct {
	Income      int64   `json:"income"`
	Expenses    int64   `json:"expenses"`
	Savings     int64   `json:"savings"`
	SavingsRate float64 `json:"savings_rate"`
}

// ReportServicer defines the contract for derived reports.
type ReportServicer interface {
	GetSummary(userID uint, from, to *time.Time) (*Summary, error)
	GetCategoryBreakdown(userID uint, txType models.TransactionType, from, to *time.Time) ([]reports.CategoryTotal, error)
	GetMonthlyReport(userID uint, months int) ([]reports.MonthBucket, error)
}
