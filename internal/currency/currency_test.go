package currency

import (
	"math"
	"testing"
)

func TestConvert(t *testing.T) {
	table := Default()

	t.Run("pivot_through_base", func(t *testing.T) {
		got := table.Convert(100, "USD", "EUR")
		if math.Abs(got-93.0) > 1e-9 {
			t.Errorf("expected 93.0, got %f", got)
		}
	})

	t.Run("identity", func(t *testing.T) {
		for _, code := range table.Codes() {
			if got := table.Convert(250.75, code, code); got != 250.75 {
				t.Errorf("convert(x, %s, %s) = %f, want 250.75", code, code, got)
			}
		}
	})

	t.Run("round_trip", func(t *testing.T) {
		for _, from := range table.Codes() {
			for _, to := range table.Codes() {
				back := table.Convert(table.Convert(1234.56, from, to), to, from)
				if math.Abs(back-1234.56) > 1e-6 {
					t.Errorf("round trip %s->%s->%s = %f, want 1234.56", from, to, from, back)
				}
			}
		}
	})

	t.Run("unknown_currency_passthrough", func(t *testing.T) {
		if got := table.Convert(100, "XXX", "EUR"); got != 100 {
			t.Errorf("expected unchanged amount for unknown source, got %f", got)
		}
		if got := table.Convert(100, "USD", "XXX"); got != 100 {
			t.Errorf("expected unchanged amount for unknown target, got %f", got)
		}
	})

	t.Run("case_insensitive_codes", func(t *testing.T) {
		got := table.Convert(100, "usd", "eur")
		if math.Abs(got-93.0) > 1e-9 {
			t.Errorf("expected 93.0, got %f", got)
		}
	})
}

func TestTableSnapshot(t *testing.T) {
	t.Run("contains_base_rate", func(t *testing.T) {
		rates := Default().Rates()
		if rates["USD"] != 1 {
			t.Errorf("expected USD rate 1, got %f", rates["USD"])
		}
	})

	t.Run("rates_returns_a_copy", func(t *testing.T) {
		table := Default()
		rates := table.Rates()
		rates["USD"] = 99

		if table.Rates()["USD"] != 1 {
			t.Error("mutating the returned map must not affect the table")
		}
	})

	t.Run("input_map_is_copied", func(t *testing.T) {
		input := map[string]float64{"USD": 1, "EUR": 0.5}
		table := NewTable(input)
		input["EUR"] = 2

		if got := table.Convert(100, "USD", "EUR"); got != 50 {
			t.Errorf("expected snapshot to keep the original rate, got %f", got)
		}
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		code   string
		want   string
	}{
		{"usd_two_digits", 1234.5, "USD", "$1,234.50"},
		{"jpy_no_minor_unit", 1234.5, "JPY", "¥1,235"},
		{"eur_symbol", 99.99, "EUR", "€99.99"},
		{"negative", -42.5, "USD", "-$42.50"},
		{"large_grouping", 1234567.89, "PHP", "₱1,234,567.89"},
		{"unknown_code_prefix", 10, "ZZZ", "ZZZ 10.00"},
		{"zero", 0, "USD", "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.amount, tt.code); got != tt.want {
				t.Errorf("Format(%f, %s) = %q, want %q", tt.amount, tt.code, got, tt.want)
			}
		})
	}
}
