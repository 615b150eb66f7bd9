package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	if m.Round().String() != "12.35" {
		t.Fatalf("NewMoney display mismatch: got %s", m.Round().String())
	}

	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}

	m3, err := NewMoneyFromString("123.45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m3.String() != "123.45" {
		t.Fatalf("NewMoneyFromString display mismatch: got %s", m3.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestArithmetic(t *testing.T) {
	a := NewMoney(10.10)
	b := NewMoney(5.05)
	if got := a.Add(b).String(); got != "15.15" {
		t.Fatalf("Add got %s", got)
	}
	if got := a.Sub(b).String(); got != "5.05" {
		t.Fatalf("Sub got %s", got)
	}
	if !Zero().IsZero() {
		t.Fatalf("Zero should be zero")
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{-987654.32, "($987,654.32)"},
	}
	for _, c := range cases {
		if got := FormatCurrency(stddec.NewFromFloat(c.in)); got != c.out {
			t.Fatalf("FormatCurrency(%v) got %s want %s", c.in, got, c.out)
		}
	}

	if got := NewMoney(1234.5).Format(); got != "$1,234.50" {
		t.Fatalf("Format got %s", got)
	}
}

func TestFormatPercentAndFactor(t *testing.T) {
	if got := FormatPercent(stddec.NewFromFloat(0.035)); got != "3.50%" {
		t.Fatalf("FormatPercent got %s", got)
	}
	if got := FormatFactor(stddec.NewFromFloat(0.5791)); got != "0.5791" {
		t.Fatalf("FormatFactor got %s", got)
	}
}
