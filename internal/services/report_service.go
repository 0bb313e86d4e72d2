package services

import (
	"time"

	"fintrack/internal/models"
	"fintrack/internal/reports"
)

type reportService struct {
	transactionService TransactionServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(transactionService TransactionServicer) ReportServicer {
	return &reportService{
		transactionService: transactionService,
	}
}

// GetSummary computes income, expense, and savings totals for the user's
// transactions, optionally limited to a date range.
func (s *reportService) GetSummary(userID uint, from, to *time.Time) (*Summary, error) {
	transactions, err := s.transactionService.GetUserTransactions(userID, TransactionFilter{
		FromDate: from,
		ToDate:   to,
	})
	if err != nil {
		return nil, err
	}

	income := reports.SumByType(transactions, models.TransactionTypeIncome)
	expenses := reports.SumByType(transactions, models.TransactionTypeExpense)
	return &Summary{
		Income:      income,
		Expenses:    expenses,
		Savings:     income - expenses,
		SavingsRate: reports.SavingsRate(income, expenses),
	}, nil
}

// GetCategoryBreakdown aggregates totals per category for the given
// transaction type, largest first.
func (s *reportService) GetCategoryBreakdown(userID uint, txType models.TransactionType, from, to *time.Time) ([]reports.CategoryTotal, error) {
	transactions, err := s.transactionService.GetUserTransactions(userID, TransactionFilter{
		Type:     &txType,
		FromDate: from,
		ToDate:   to,
	})
	if err != nil {
		return nil, err
	}

	return reports.GroupByCategory(transactions, txType), nil
}

// GetMonthlyReport buckets income and expenses by calendar month over the
// trailing number of months, oldest first.
func (s *reportService) GetMonthlyReport(userID uint, months int) ([]reports.MonthBucket, error) {
	if months <= 0 {
		months = 6
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(months - 1), 0)
	transactions, err := s.transactionService.GetUserTransactions(userID, TransactionFilter{
		FromDate: &from,
	})
	if err != nil {
		return nil, err
	}

	return reports.BucketByMonth(transactions, months, now), nil
}
