package handlers

import (
	"math"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"fintrack/internal/currency"
)

func setupCurrencyRouter(handler *CurrencyHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.GET("/currency", handler.GetRates)
	auth.GET("/currency/convert", handler.Convert)
	return r
}

func TestCurrencyHandler_GetRates(t *testing.T) {
	t.Run("returns 200 with the rate table", func(t *testing.T) {
		handler := NewCurrencyHandler(currency.Default())
		r := setupCurrencyRouter(handler)

		rec := doRequest(r, "GET", "/currency", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		rates := result["rates"].(map[string]interface{})
		if rates["USD"] != 1.0 {
			t.Errorf("expected USD rate 1, got %v", rates["USD"])
		}
		if _, ok := rates["EUR"]; !ok {
			t.Error("expected EUR in the rate table")
		}
	})
}

func TestCurrencyHandler_Convert(t *testing.T) {
	t.Run("converts via the USD pivot", func(t *testing.T) {
		handler := NewCurrencyHandler(currency.Default())
		r := setupCurrencyRouter(handler)

		rec := doRequest(r, "GET", "/currency/convert?amount=100&from=USD&to=EUR", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		converted := result["converted"].(float64)
		if math.Abs(converted-93.0) > 1e-9 {
			t.Errorf("expected 93.0, got %v", converted)
		}
	})

	t.Run("identity conversion is exact", func(t *testing.T) {
		handler := NewCurrencyHandler(currency.Default())
		r := setupCurrencyRouter(handler)

		rec := doRequest(r, "GET", "/currency/convert?amount=123.45&from=USD&to=USD", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["converted"].(float64) != 123.45 {
			t.Errorf("expected 123.45, got %v", result["converted"])
		}
	})

	t.Run("unknown currency passes amount through", func(t *testing.T) {
		handler := NewCurrencyHandler(currency.Default())
		r := setupCurrencyRouter(handler)

		rec := doRequest(r, "GET", "/currency/convert?amount=50&from=ZZZ&to=EUR", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["converted"].(float64) != 50.0 {
			t.Errorf("expected 50.0 passthrough, got %v", result["converted"])
		}
	})

	t.Run("returns 400 on bad amount", func(t *testing.T) {
		handler := NewCurrencyHandler(currency.Default())
		r := setupCurrencyRouter(handler)

		rec := doRequest(r, "GET", "/currency/convert?amount=abc&from=USD&to=EUR", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on missing codes", func(t *testing.T) {
		handler := NewCurrencyHandler(currency.Default())
		r := setupCurrencyRouter(handler)

		rec := doRequest(r, "GET", "/currency/convert?amount=100", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
