package payments

// Status is the local coarse payment status. It mirrors, but is distinct
// from, the provider's own status vocabulary.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusSucceeded  Status = "SUCCEEDED"
	StatusFailed     Status = "FAILED"
	StatusCanceled   Status = "CANCELED"
	StatusRefunded   Status = "REFUNDED"
)

type Provider string

const (
	ProviderStripe Provider = "STRIPE"
	ProviderPaypal Provider = "PAYPAL" // reserved, not implemented
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyCAD Currency = "CAD"
)

var currencySymbols = map[Currency]string{
	CurrencyUSD: "$",
	CurrencyEUR: "€",
	CurrencyGBP: "£",
	CurrencyCAD: "CA$",
}

func (c Currency) Symbol() string {
	return currencySymbols[c]
}

// ParseCurrency returns the matching supported currency, or false.
func ParseCurrency(s string) (Currency, bool) {
	c := Currency(s)
	_, ok := currencySymbols[c]
	return c, ok
}

func SupportedCurrencies() []Currency {
	return []Currency{CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyCAD}
}
