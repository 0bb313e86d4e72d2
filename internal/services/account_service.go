package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// accountService handles account-related business logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// CreateAccount creates a new account for a user. The stored balance equals
// the supplied opening balance exactly.
func (s *accountService) CreateAccount(userID uint, name string, accountType models.AccountType, accountNumber string, balance int64, currency, icon string) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}
	if currency == "" {
		currency = "USD"
	}

	account := &models.Account{
		UserID:        userID,
		Name:          name,
		Type:          accountType,
		AccountNumber: accountNumber,
		Balance:       balance,
		Currency:      currency,
		Icon:          icon,
	}

	if err := s.db.Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return account, nil
}

// GetUserAccounts retrieves all accounts belonging to a user.
func (s *accountService) GetUserAccounts(userID uint) ([]models.Account, error) {
	accounts := []models.Account{}
	if err := s.db.Where("user_id = ?", userID).Order("created_at").Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return accounts, nil
}

// GetAccountByID retrieves an account for the acting user. An absent id
// maps to not-found; an account owned by someone else maps to forbidden,
// in that order.
func (s *accountService) GetAccountByID(userID, accountID uint) (*models.Account, error) {
	var account models.Account
	if err := s.db.First(&account, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if account.UserID != userID {
		return nil, apperrors.ErrForbidden
	}

	return &account, nil
}

// UpdateAccount updates an existing account owned by the acting user.
// Balance is deliberately not updatable here; it only moves through the
// transaction ledger.
func (s *accountService) UpdateAccount(userID, accountID uint, fields AccountUpdateFields) (*models.Account, error) {
	account, err := s.GetAccountByID(userID, accountID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Name != nil && *fields.Name != "" {
		updates["name"] = *fields.Name
	}
	if fields.Type != nil {
		updates["type"] = *fields.Type
	}
	if fields.AccountNumber != nil {
		updates["account_number"] = *fields.AccountNumber
	}
	if fields.Currency != nil && *fields.Currency != "" {
		updates["currency"] = *fields.Currency
	}
	if fields.Icon != nil {
		updates["icon"] = *fields.Icon
	}

	if len(updates) > 0 {
		if err := s.db.Model(account).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.First(account, account.ID).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return account, nil
}

// DeleteAccount removes an account owned by the acting user. Linked
// transactions are kept: history survives the account.
func (s *accountService) DeleteAccount(userID, accountID uint) error {
	account, err := s.GetAccountByID(userID, accountID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(account).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ApplyBalanceDelta adjusts an account balance by delta as a single
// store-level increment, so concurrent ledger writes cannot lose updates.
func (s *accountService) ApplyBalanceDelta(tx *gorm.DB, accountID uint, delta int64) error {
	result := tx.Model(&models.Account{}).
		Where("id = ?", accountID).
		UpdateColumn("balance", gorm.Expr("balance + ?", delta))
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}
