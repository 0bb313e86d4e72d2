package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fintrack/internal/currency"
	apperrors "fintrack/internal/errors"
)

// CurrencyHandler serves the exchange rate table and conversions.
type CurrencyHandler struct {
	table currency.Table
}

// NewCurrencyHandler creates a new CurrencyHandler.
func NewCurrencyHandler(table currency.Table) *CurrencyHandler {
	return &CurrencyHandler{table: table}
}

// ConvertResponse represents a conversion result
type ConvertResponse struct {
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Converted float64 `json:"converted"`
	Formatted string  `json:"formatted"`
}

// GetRates returns the exchange rate table
// @Summary     Get exchange rates
// @Description Get the exchange rate table, expressed against USD
// @Tags        currency
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]float64 "Rates"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /currency [get]
func (h *CurrencyHandler) GetRates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rates": h.table.Rates()})
}

// Convert converts an amount between currencies
// @Summary     Convert an amount
// @Description Convert an amount from one currency to another via the USD pivot
// @Tags        currency
// @Produce     json
// @Security    BearerAuth
// @Param       amount query number true "Amount to convert"
// @Param       from query string true "Source currency code"
// @Param       to query string true "Target currency code"
// @Success     200 {object} ConvertResponse "Conversion result"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /currency/convert [get]
func (h *CurrencyHandler) Convert(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid amount"))
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "from and to are required"))
		return
	}

	converted := h.table.Convert(amount, from, to)
	c.JSON(http.StatusOK, ConvertResponse{
		Amount:    amount,
		From:      from,
		To:        to,
		Converted: converted,
		Formatted: currency.Format(converted, to),
	})
}
