package services

import (
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func TestGetSummary(t *testing.T) {
	t.Run("totals_and_savings", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		svc := NewReportService(txSvc)
		user := testutil.CreateTestUser(t, db)

		_, err := txSvc.CreateTransaction(user.ID, nil, 100000, "Salary", "Income", models.TransactionTypeIncome, time.Now(), "")
		testutil.AssertNoError(t, err)
		_, err = txSvc.CreateTransaction(user.ID, nil, 30000, "Rent", "Housing", models.TransactionTypeExpense, time.Now(), "")
		testutil.AssertNoError(t, err)
		_, err = txSvc.CreateTransaction(user.ID, nil, 10000, "Savings move", "Transfers", models.TransactionTypeTransfer, time.Now(), "")
		testutil.AssertNoError(t, err)

		summary, err := svc.GetSummary(user.ID, nil, nil)
		testutil.AssertNoError(t, err)

		if summary.Income != 100000 {
			t.Errorf("expected income 100000, got %d", summary.Income)
		}
		if summary.Expenses != 30000 {
			t.Errorf("expected expenses 30000, got %d", summary.Expenses)
		}
		if summary.Savings != 70000 {
			t.Errorf("expected savings 70000, got %d", summary.Savings)
		}
		if summary.SavingsRate != 70.0 {
			t.Errorf("expected savings rate 70.0, got %f", summary.SavingsRate)
		}
	})

	t.Run("zero_income_zero_rate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		svc := NewReportService(txSvc)
		user := testutil.CreateTestUser(t, db)

		_, err := txSvc.CreateTransaction(user.ID, nil, 5000, "Lunch", "Food", models.TransactionTypeExpense, time.Now(), "")
		testutil.AssertNoError(t, err)

		summary, err := svc.GetSummary(user.ID, nil, nil)
		testutil.AssertNoError(t, err)
		if summary.SavingsRate != 0 {
			t.Errorf("expected zero savings rate with no income, got %f", summary.SavingsRate)
		}
	})

	t.Run("date_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		svc := NewReportService(txSvc)
		user := testutil.CreateTestUser(t, db)

		old := time.Now().AddDate(0, -3, 0)
		_, err := txSvc.CreateTransaction(user.ID, nil, 100000, "Old salary", "Income", models.TransactionTypeIncome, old, "")
		testutil.AssertNoError(t, err)
		_, err = txSvc.CreateTransaction(user.ID, nil, 50000, "Recent salary", "Income", models.TransactionTypeIncome, time.Now(), "")
		testutil.AssertNoError(t, err)

		from := time.Now().AddDate(0, -1, 0)
		summary, err := svc.GetSummary(user.ID, &from, nil)
		testutil.AssertNoError(t, err)
		if summary.Income != 50000 {
			t.Errorf("expected income 50000 within range, got %d", summary.Income)
		}
	})
}

func TestGetCategoryBreakdown(t *testing.T) {
	t.Run("sorted_descending", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		svc := NewReportService(txSvc)
		user := testutil.CreateTestUser(t, db)

		_, err := txSvc.CreateTransaction(user.ID, nil, 1000, "Bus", "Transport", models.TransactionTypeExpense, time.Now(), "")
		testutil.AssertNoError(t, err)
		_, err = txSvc.CreateTransaction(user.ID, nil, 3000, "Groceries", "Food", models.TransactionTypeExpense, time.Now(), "")
		testutil.AssertNoError(t, err)
		_, err = txSvc.CreateTransaction(user.ID, nil, 2000, "Dinner", "Food", models.TransactionTypeExpense, time.Now(), "")
		testutil.AssertNoError(t, err)

		breakdown, err := svc.GetCategoryBreakdown(user.ID, models.TransactionTypeExpense, nil, nil)
		testutil.AssertNoError(t, err)

		if len(breakdown) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(breakdown))
		}
		if breakdown[0].Category != "Food" || breakdown[0].Total != 5000 {
			t.Errorf("expected Food=5000 first, got %s=%d", breakdown[0].Category, breakdown[0].Total)
		}
		if breakdown[1].Category != "Transport" || breakdown[1].Total != 1000 {
			t.Errorf("expected Transport=1000 second, got %s=%d", breakdown[1].Category, breakdown[1].Total)
		}
	})

	t.Run("only_requested_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		svc := NewReportService(txSvc)
		user := testutil.CreateTestUser(t, db)

		_, err := txSvc.CreateTransaction(user.ID, nil, 1000, "Lunch", "Food", models.TransactionTypeExpense, time.Now(), "")
		testutil.AssertNoError(t, err)
		_, err = txSvc.CreateTransaction(user.ID, nil, 9000, "Salary", "Income", models.TransactionTypeIncome, time.Now(), "")
		testutil.AssertNoError(t, err)

		breakdown, err := svc.GetCategoryBreakdown(user.ID, models.TransactionTypeExpense, nil, nil)
		testutil.AssertNoError(t, err)
		if len(breakdown) != 1 {
			t.Fatalf("expected 1 category, got %d", len(breakdown))
		}
		if breakdown[0].Category != "Food" {
			t.Errorf("expected Food, got %s", breakdown[0].Category)
		}
	})
}

func TestGetMonthlyReport(t *testing.T) {
	t.Run("buckets_by_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		svc := NewReportService(txSvc)
		user := testutil.CreateTestUser(t, db)

		_, err := txSvc.CreateTransaction(user.ID, nil, 100000, "Salary", "Income", models.TransactionTypeIncome, time.Now(), "")
		testutil.AssertNoError(t, err)
		now := time.Now()
		lastMonth := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, now.Location()).AddDate(0, -1, 14)
		_, err = txSvc.CreateTransaction(user.ID, nil, 40000, "Rent", "Housing", models.TransactionTypeExpense, lastMonth, "")
		testutil.AssertNoError(t, err)

		buckets, err := svc.GetMonthlyReport(user.ID, 3)
		testutil.AssertNoError(t, err)

		if len(buckets) != 3 {
			t.Fatalf("expected 3 buckets, got %d", len(buckets))
		}
		last := buckets[len(buckets)-1]
		if last.Income != 100000 {
			t.Errorf("expected current month income 100000, got %d", last.Income)
		}
		prev := buckets[len(buckets)-2]
		if prev.Expenses != 40000 {
			t.Errorf("expected previous month expenses 40000, got %d", prev.Expenses)
		}
	})

	t.Run("non_positive_months_defaults_to_six", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		acctSvc := NewAccountService(db)
		txSvc := NewTransactionService(db, acctSvc)
		svc := NewReportService(txSvc)
		user := testutil.CreateTestUser(t, db)

		buckets, err := svc.GetMonthlyReport(user.ID, 0)
		testutil.AssertNoError(t, err)
		if len(buckets) != 6 {
			t.Errorf("expected 6 buckets, got %d", len(buckets))
		}
	})
}
