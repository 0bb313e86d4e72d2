package services

import (
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func TestCreateAccount(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)

		account, err := svc.CreateAccount(user.ID, "Checking", models.AccountTypeBank, "1234", 150000, "USD", "bank")
		testutil.AssertNoError(t, err)

		if account.ID == 0 {
			t.Fatal("expected non-zero account ID")
		}
		if account.Balance != 150000 {
			t.Errorf("expected balance 150000, got %d", account.Balance)
		}
	})

	t.Run("missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateAccount(user.ID, "", models.AccountTypeBank, "", 0, "USD", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("currency_defaults_to_usd", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)

		account, err := svc.CreateAccount(user.ID, "Wallet", models.AccountTypeEwallet, "", 0, "", "")
		testutil.AssertNoError(t, err)
		if account.Currency != "USD" {
			t.Errorf("expected default currency USD, got %q", account.Currency)
		}
	})
}

func TestGetUserAccounts(t *testing.T) {
	t.Run("only_own_accounts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		testutil.CreateTestAccount(t, db, user1.ID)
		testutil.CreateTestAccount(t, db, user1.ID)
		testutil.CreateTestAccount(t, db, user2.ID)

		accounts, err := svc.GetUserAccounts(user1.ID)
		testutil.AssertNoError(t, err)
		if len(accounts) != 2 {
			t.Errorf("expected 2 accounts, got %d", len(accounts))
		}
	})

	t.Run("empty_result_is_empty_slice", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)

		accounts, err := svc.GetUserAccounts(user.ID)
		testutil.AssertNoError(t, err)
		if accounts == nil {
			t.Error("expected non-nil empty slice")
		}
	})
}

func TestGetAccountByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		found, err := svc.GetAccountByID(user.ID, account.ID)
		testutil.AssertNoError(t, err)
		if found.ID != account.ID {
			t.Errorf("expected account %d, got %d", account.ID, found.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetAccountByID(user.ID, 99999)
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})

	t.Run("other_users_account_is_forbidden", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user1.ID)

		_, err := svc.GetAccountByID(user2.ID, account.ID)
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})
}

func TestUpdateAccount(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccountWithBalance(t, db, user.ID, 4200)

		name := "Renamed"
		updated, err := svc.UpdateAccount(user.ID, account.ID, AccountUpdateFields{Name: &name})
		testutil.AssertNoError(t, err)
		if updated.Name != "Renamed" {
			t.Errorf("expected name updated, got %q", updated.Name)
		}
		if updated.Type != account.Type {
			t.Errorf("expected type unchanged, got %q", updated.Type)
		}
		if updated.Balance != 4200 {
			t.Errorf("expected balance untouched, got %d", updated.Balance)
		}
	})

	t.Run("other_users_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user1.ID)

		name := "Hijacked"
		_, err := svc.UpdateAccount(user2.ID, account.ID, AccountUpdateFields{Name: &name})
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		err := svc.DeleteAccount(user.ID, account.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.GetAccountByID(user.ID, account.ID)
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})

	t.Run("transactions_survive_account_delete", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		txSvc := NewTransactionService(db, svc)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID)

		tx, err := txSvc.CreateTransaction(user.ID, &account.ID, 1000, "Salary", "Income", models.TransactionTypeIncome, time.Now(), "")
		testutil.AssertNoError(t, err)

		err = svc.DeleteAccount(user.ID, account.ID)
		testutil.AssertNoError(t, err)

		kept, err := txSvc.GetTransactionByID(user.ID, tx.ID)
		testutil.AssertNoError(t, err)
		if kept.AccountID == nil || *kept.AccountID != account.ID {
			t.Error("expected transaction to keep its account reference")
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.DeleteAccount(user.ID, 99999)
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})
}

func TestApplyBalanceDelta(t *testing.T) {
	t.Run("increments_atomically", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccountWithBalance(t, db, user.ID, 1000)

		err := svc.ApplyBalanceDelta(db, account.ID, -300)
		testutil.AssertNoError(t, err)

		updated, err := svc.GetAccountByID(user.ID, account.ID)
		testutil.AssertNoError(t, err)
		if updated.Balance != 700 {
			t.Errorf("expected balance 700, got %d", updated.Balance)
		}
	})

	t.Run("unknown_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccountService(db)

		err := svc.ApplyBalanceDelta(db, 99999, 100)
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})
}
