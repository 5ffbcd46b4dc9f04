package payments

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Amount bounds in minor units: rejects sub-$0.50 and above-$1,000,000.
const (
	MinAmountCents int64 = 50
	MaxAmountCents int64 = 100_000_000
)

var centsFactor = decimal.NewFromInt(100)

// ToCents converts a decimal major-unit amount ("100.50") to an integer count
// of minor units. Fractions of a cent round half away from zero.
func ToCents(amount string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return 0, fmt.Errorf("invalid amount format: %q", amount)
	}
	return d.Mul(centsFactor).Round(0).IntPart(), nil
}

// FromCents converts minor units to the decimal major-unit amount.
func FromCents(amountCents int64) decimal.Decimal {
	return decimal.NewFromInt(amountCents).Div(centsFactor)
}

// FormatCurrency renders a minor-unit amount as a fixed two-decimal display
// string, e.g. FormatCurrency(10000, CurrencyUSD, true) == "$100.00".
func FormatCurrency(amountCents int64, currency Currency, includeSymbol bool) string {
	s := groupThousands(FromCents(amountCents).StringFixed(2))
	if includeSymbol {
		return currency.Symbol() + s
	}
	return s
}

// groupThousands inserts comma separators into the integer part of a
// fixed-point decimal string.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		return sign + b.String() + "." + fracPart
	}
	return sign + b.String()
}

// ValidateAmount checks a minor-unit amount against the allowed bounds.
func ValidateAmount(amountCents int64) error {
	if amountCents < MinAmountCents {
		return fmt.Errorf("amount too small: minimum is %s", FormatCurrency(MinAmountCents, CurrencyUSD, true))
	}
	if amountCents > MaxAmountCents {
		return fmt.Errorf("amount too large: maximum is %s", FormatCurrency(MaxAmountCents, CurrencyUSD, true))
	}
	return nil
}

// CalculateTax returns the tax on a minor-unit amount, rounded half away
// from zero. CalculateTax(10000, 0.08) == 800.
func CalculateTax(amountCents int64, taxRate float64) int64 {
	return decimal.NewFromInt(amountCents).
		Mul(decimal.NewFromFloat(taxRate)).
		Round(0).
		IntPart()
}

// CalculateTotal returns subtotal plus tax, in minor units.
func CalculateTotal(subtotalCents int64, taxRate float64) int64 {
	return subtotalCents + CalculateTax(subtotalCents, taxRate)
}

const invoiceSuffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateInvoiceNumber returns an invoice number of the form
// INV-YYYYMMDD-XXXXX (UTC date, 5-char uppercase base-36 suffix). Uniqueness
// is probabilistic; the payments table's unique index is the backstop.
func GenerateInvoiceNumber() string {
	date := time.Now().UTC().Format("20060102")
	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = invoiceSuffixAlphabet[rand.Intn(len(invoiceSuffixAlphabet))]
	}
	return fmt.Sprintf("INV-%s-%s", date, suffix)
}

var cardBrandNames = map[string]string{
	"visa":       "Visa",
	"mastercard": "Mastercard",
	"amex":       "American Express",
	"discover":   "Discover",
	"diners":     "Diners Club",
	"jcb":        "JCB",
	"unionpay":   "UnionPay",
}

// FormatCardBrand maps a provider card-brand code to a display name.
func FormatCardBrand(brand string) string {
	if name, ok := cardBrandNames[strings.ToLower(brand)]; ok {
		return name
	}
	if brand == "" {
		return "Card"
	}
	return strings.ToUpper(brand[:1]) + brand[1:]
}

// FormatPaymentMethod renders "Visa ****4242" style display strings.
func FormatPaymentMethod(brand, last4 string) string {
	return fmt.Sprintf("%s ****%s", FormatCardBrand(brand), last4)
}
