package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// transactionService maintains the ledger: every mutation keeps the linked
// account's balance equal to its opening balance plus the net effect of all
// transactions currently pointing at it.
type transactionService struct {
	db             *gorm.DB
	accountService AccountServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, accountService AccountServicer) TransactionServicer {
	return &transactionService{
		db:             db,
		accountService: accountService,
	}
}

// CreateTransaction validates the input, verifies account ownership when a
// link is supplied, and inserts the record together with the balance
// adjustment in one database transaction.
func (s *transactionService) CreateTransaction(userID uint, accountID *uint, amount int64, description, category string, txType models.TransactionType, date time.Time, notes string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	if accountID != nil {
		if _, err := s.accountService.GetAccountByID(userID, *accountID); err != nil {
			return nil, err
		}
	}

	if date.IsZero() {
		date = time.Now()
	}

	transaction := &models.Transaction{
		UserID:      userID,
		AccountID:   accountID,
		Amount:      amount,
		Description: description,
		Category:    category,
		Type:        txType,
		Date:        date,
		Notes:       notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if transaction.AccountID != nil {
			return s.accountService.ApplyBalanceDelta(tx, *transaction.AccountID, transaction.BalanceDelta())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// applyDeltaIfAccountExists adjusts a balance but tolerates a missing
// account: history outlives deleted accounts, whose balances no longer
// exist to adjust.
func (s *transactionService) applyDeltaIfAccountExists(tx *gorm.DB, accountID uint, delta int64) error {
	err := s.accountService.ApplyBalanceDelta(tx, accountID, delta)
	if errors.Is(err, apperrors.ErrAccountNotFound) {
		return nil
	}
	return err
}

// GetUserTransactions retrieves the user's transactions, newest first,
// optionally filtered by account, type, category, or date range.
func (s *transactionService) GetUserTransactions(userID uint, filter TransactionFilter) ([]models.Transaction, error) {
	q := s.db.Where("user_id = ?", userID)
	if filter.AccountID != nil {
		q = q.Where("account_id = ?", *filter.AccountID)
	}
	if filter.Type != nil {
		q = q.Where("type = ?", *filter.Type)
	}
	if filter.Category != nil {
		q = q.Where("category = ?", *filter.Category)
	}
	if filter.FromDate != nil {
		q = q.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		q = q.Where("date <= ?", *filter.ToDate)
	}

	transactions := []models.Transaction{}
	if err := q.Order("date DESC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetTransactionByID retrieves a transaction for the acting user with the
// same existence-then-ownership ordering accounts use.
func (s *transactionService) GetTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.First(&transaction, transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if transaction.UserID != userID {
		return nil, apperrors.ErrForbidden
	}

	return &transaction, nil
}

// UpdateTransaction applies field updates and re-derives account balances:
// the old effect is reversed and the new effect applied in the same
// database transaction as the row update, covering amount, type, and
// account-link changes.
func (s *transactionService) UpdateTransaction(userID, transactionID uint, fields TransactionUpdateFields) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	oldAccountID := transaction.AccountID
	oldDelta := transaction.BalanceDelta()

	if fields.AccountID != nil {
		transaction.AccountID = *fields.AccountID
	}
	if fields.Amount != nil {
		if *fields.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		transaction.Amount = *fields.Amount
	}
	if fields.Description != nil {
		transaction.Description = *fields.Description
	}
	if fields.Category != nil {
		transaction.Category = *fields.Category
	}
	if fields.Type != nil {
		transaction.Type = *fields.Type
	}
	if fields.Date != nil {
		transaction.Date = *fields.Date
	}
	if fields.Notes != nil {
		transaction.Notes = *fields.Notes
	}

	// A new account link must belong to the acting user.
	if transaction.AccountID != nil && (oldAccountID == nil || *transaction.AccountID != *oldAccountID) {
		if _, err := s.accountService.GetAccountByID(userID, *transaction.AccountID); err != nil {
			return nil, err
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if oldAccountID != nil {
			if err := s.applyDeltaIfAccountExists(tx, *oldAccountID, -oldDelta); err != nil {
				return err
			}
		}

		if err := tx.Model(&models.Transaction{}).Where("id = ?", transaction.ID).
			Updates(map[string]interface{}{
				"account_id":  transaction.AccountID,
				"amount":      transaction.Amount,
				"description": transaction.Description,
				"category":    transaction.Category,
				"type":        transaction.Type,
				"date":        transaction.Date,
				"notes":       transaction.Notes,
			}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if transaction.AccountID != nil {
			return s.applyDeltaIfAccountExists(tx, *transaction.AccountID, transaction.BalanceDelta())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// DeleteTransaction removes the record and reverses its balance effect on
// the linked account atomically.
func (s *transactionService) DeleteTransaction(userID, transactionID uint) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if transaction.AccountID != nil {
			return s.applyDeltaIfAccountExists(tx, *transaction.AccountID, -transaction.BalanceDelta())
		}
		return nil
	})
}
