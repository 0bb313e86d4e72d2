package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// ReportHandler serves derived reports over the user's transactions.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func parseDateRange(c *gin.Context) (from, to *time.Time, err error) {
	if raw := c.Query("from"); raw != "" {
		parsed, parseErr := parseDate(raw)
		if parseErr != nil {
			return nil, nil, parseErr
		}
		from = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, parseErr := parseDate(raw)
		if parseErr != nil {
			return nil, nil, parseErr
		}
		to = &parsed
	}
	return from, to, nil
}

// GetSummary returns income/expense/savings totals
// @Summary     Get financial summary
// @Description Get income, expense, and savings totals, optionally limited to a date range
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       from query string false "Start date (YYYY-MM-DD)"
// @Param       to query string false "End date (YYYY-MM-DD)"
// @Success     200 {object} services.Summary "Summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.reportService.GetSummary(userID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetCategoryBreakdown returns per-category totals
// @Summary     Get category breakdown
// @Description Get per-category totals for the given transaction type, largest first
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       type query string false "Transaction type (default expense)"
// @Param       from query string false "Start date (YYYY-MM-DD)"
// @Param       to query string false "End date (YYYY-MM-DD)"
// @Success     200 {array} reports.CategoryTotal "Category totals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/categories [get]
func (h *ReportHandler) GetCategoryBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	txType := models.TransactionTypeExpense
	if raw := c.Query("type"); raw != "" {
		parsed := models.TransactionType(raw)
		if parsed != models.TransactionTypeIncome && parsed != models.TransactionTypeExpense && parsed != models.TransactionTypeTransfer {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid type"))
			return
		}
		txType = parsed
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	breakdown, err := h.reportService.GetCategoryBreakdown(userID, txType, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": breakdown})
}

// GetMonthlyReport returns month-by-month income and expenses
// @Summary     Get monthly report
// @Description Get income and expense totals bucketed by calendar month, oldest first
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       months query int false "Number of trailing months (default 6)"
// @Success     200 {array} reports.MonthBucket "Monthly buckets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/monthly [get]
func (h *ReportHandler) GetMonthlyReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	months := 6
	if raw := c.Query("months"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil || parsed <= 0 || parsed > 60 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid months"))
			return
		}
		months = parsed
	}

	buckets, err := h.reportService.GetMonthlyReport(userID, months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"months": buckets})
}
