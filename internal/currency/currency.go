// Package currency provides conversion and formatting over a fixed exchange
// rate table. Every pairwise conversion pivots through the base currency
// (USD), so identity and round-trip conversions are exact up to floating
// point rounding.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Table is an immutable snapshot of exchange rates relative to the base
// currency (USD = 1.0). Replace the whole table to refresh rates; there are
// no incremental updates.
type Table struct {
	rates map[string]float64
}

// NewTable copies the given rates into an immutable snapshot.
func NewTable(rates map[string]float64) Table {
	copied := make(map[string]float64, len(rates))
	for code, rate := range rates {
		copied[strings.ToUpper(code)] = rate
	}
	return Table{rates: copied}
}

// Default returns the reference rate table.
func Default() Table {
	return NewTable(map[string]float64{
		"USD": 1,
		"EUR": 0.93,
		"GBP": 0.81,
		"JPY": 149.32,
		"CAD": 1.37,
		"AUD": 1.55,
		"CNY": 7.21,
		"INR": 83.14,
		"PHP": 57.34,
	})
}

// Rates returns a copy of the underlying code-to-rate mapping.
func (t Table) Rates() map[string]float64 {
	copied := make(map[string]float64, len(t.rates))
	for code, rate := range t.rates {
		copied[code] = rate
	}
	return copied
}

// Codes returns the currency codes present in the table.
func (t Table) Codes() []string {
	codes := make([]string, 0, len(t.rates))
	for code := range t.rates {
		codes = append(codes, code)
	}
	return codes
}

// Has reports whether the table contains the given currency code.
func (t Table) Has(code string) bool {
	_, ok := t.rates[strings.ToUpper(code)]
	return ok
}

// Convert converts an amount between two currencies by pivoting through the
// base currency. If either code is absent from the table the amount is
// returned unchanged (fail-soft, not an error).
func (t Table) Convert(amount float64, from, to string) float64 {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	fromRate, okFrom := t.rates[from]
	toRate, okTo := t.rates[to]
	if !okFrom || !okTo || from == to {
		return amount
	}
	return amount / fromRate * toRate
}

// symbols maps well-known currency codes to display symbols. Codes without
// an entry fall back to "CODE " as a prefix.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "C$",
	"AUD": "A$",
	"CNY": "¥",
	"INR": "₹",
	"PHP": "₱",
}

// zeroMinorUnit lists currencies with no fractional unit.
var zeroMinorUnit = map[string]bool{
	"JPY": true,
	"KRW": true,
	"VND": true,
}

// Format renders an amount with the currency's symbol, thousands grouping,
// and the number of fraction digits the currency uses (zero for currencies
// without a minor unit, two otherwise).
func Format(amount float64, code string) string {
	code = strings.ToUpper(code)

	digits := int32(2)
	if zeroMinorUnit[code] {
		digits = 0
	}

	d := decimal.NewFromFloat(amount).Round(digits)
	negative := d.IsNegative()
	if negative {
		d = d.Neg()
	}

	formatted := groupThousands(d.StringFixed(digits))

	symbol, ok := symbols[code]
	if !ok {
		symbol = code + " "
	}
	if negative {
		return "-" + symbol + formatted
	}
	return symbol + formatted
}

// groupThousands inserts comma separators into the integer part of a
// non-negative decimal string.
func groupThousands(s string) string {
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	n := len(intPart)
	if n <= 3 {
		return intPart + fracPart
	}

	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + fracPart
}
