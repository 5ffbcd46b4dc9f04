package payments

import (
	"regexp"
	"testing"
)

func TestToCentsFromCentsRoundTrip(t *testing.T) {
	amounts := []int64{50, 99, 123, 10000, 10050, 999999, 100000000}
	for _, want := range amounts {
		s := FromCents(want).String()
		got, err := ToCents(s)
		if err != nil {
			t.Fatalf("ToCents(%q) returned error: %v", s, err)
		}
		if got != want {
			t.Errorf("round trip of %d: got %d", want, got)
		}
	}
}

func TestToCents(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"100.50", 10050, false},
		{"1.23", 123, false},
		{"0.99", 99, false},
		{"100", 10000, false},
		{"100.505", 10051, false},
		{"abc", 0, true},
		{"", 0, true},
		{"12.3.4", 0, true},
	}
	for _, tt := range tests {
		got, err := ToCents(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ToCents(%q): expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ToCents(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ToCents(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFromCents(t *testing.T) {
	if got := FromCents(10050).String(); got != "100.5" {
		t.Errorf("FromCents(10050) = %s, want 100.5", got)
	}
	if got := FromCents(123).String(); got != "1.23" {
		t.Errorf("FromCents(123) = %s, want 1.23", got)
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		cents         int64
		currency      Currency
		includeSymbol bool
		want          string
	}{
		{10000, CurrencyUSD, true, "$100.00"},
		{10000, CurrencyUSD, false, "100.00"},
		{12345, CurrencyEUR, true, "€123.45"},
		{12345, CurrencyGBP, true, "£123.45"},
		{12345, CurrencyCAD, true, "CA$123.45"},
		{50, CurrencyUSD, true, "$0.50"},
		{100000000, CurrencyUSD, true, "$1,000,000.00"},
		{123456789, CurrencyUSD, false, "1,234,567.89"},
	}
	for _, tt := range tests {
		got := FormatCurrency(tt.cents, tt.currency, tt.includeSymbol)
		if got != tt.want {
			t.Errorf("FormatCurrency(%d, %s, %v) = %q, want %q",
				tt.cents, tt.currency, tt.includeSymbol, got, tt.want)
		}
	}
}

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(49); err == nil {
		t.Error("ValidateAmount(49) should fail")
	}
	if err := ValidateAmount(50); err != nil {
		t.Errorf("ValidateAmount(50) should pass, got %v", err)
	}
	if err := ValidateAmount(100000000); err != nil {
		t.Errorf("ValidateAmount(100000000) should pass, got %v", err)
	}
	if err := ValidateAmount(100000001); err == nil {
		t.Error("ValidateAmount(100000001) should fail")
	}
}

func TestCalculateTax(t *testing.T) {
	tests := []struct {
		cents int64
		rate  float64
		want  int64
	}{
		{10000, 0.08, 800},
		{5000, 0.10, 500},
		{125, 0.10, 13}, // 12.5 rounds half away from zero
		{10000, 0, 0},
	}
	for _, tt := range tests {
		if got := CalculateTax(tt.cents, tt.rate); got != tt.want {
			t.Errorf("CalculateTax(%d, %v) = %d, want %d", tt.cents, tt.rate, got, tt.want)
		}
	}
}

func TestCalculateTotal(t *testing.T) {
	if got := CalculateTotal(10000, 0.08); got != 10800 {
		t.Errorf("CalculateTotal(10000, 0.08) = %d, want 10800", got)
	}
}

var invoicePattern = regexp.MustCompile(`^INV-\d{8}-[A-Z0-9]{5}$`)

func TestGenerateInvoiceNumber(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := GenerateInvoiceNumber()
		if !invoicePattern.MatchString(n) {
			t.Fatalf("invoice number %q does not match pattern", n)
		}
		seen[n] = true
	}
	// Uniqueness is probabilistic, not guaranteed, but 100 draws from a
	// 36^5 space colliding would point at a broken generator.
	if len(seen) < 99 {
		t.Errorf("expected distinct invoice numbers, got %d unique of 100", len(seen))
	}
}

func TestFormatPaymentMethod(t *testing.T) {
	if got := FormatPaymentMethod("visa", "4242"); got != "Visa ****4242" {
		t.Errorf("FormatPaymentMethod(visa, 4242) = %q", got)
	}
	if got := FormatPaymentMethod("mastercard", "5555"); got != "Mastercard ****5555" {
		t.Errorf("FormatPaymentMethod(mastercard, 5555) = %q", got)
	}
	if got := FormatPaymentMethod("somebrand", "0000"); got != "Somebrand ****0000" {
		t.Errorf("FormatPaymentMethod(somebrand, 0000) = %q", got)
	}
}

func TestParseCurrency(t *testing.T) {
	if _, ok := ParseCurrency("USD"); !ok {
		t.Error("USD should be supported")
	}
	if _, ok := ParseCurrency("JPY"); ok {
		t.Error("JPY should not be supported")
	}
	if _, ok := ParseCurrency("usd"); ok {
		t.Error("currency match is case-sensitive at this layer")
	}
}
