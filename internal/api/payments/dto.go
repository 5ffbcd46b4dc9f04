package payments

import (
	"github.com/shopspring/decimal"

	"portfolio-payments/internal/domain/payments"
)

// CreateIntentResponse is the only thing the browser needs to finish a
// payment: the client secret plus display fields. Amount is in major units.
type CreateIntentResponse struct {
	PaymentID     uint              `json:"paymentId"`
	ClientSecret  string            `json:"clientSecret"`
	InvoiceNumber string            `json:"invoiceNumber"`
	Amount        decimal.Decimal   `json:"amount"`
	Currency      payments.Currency `json:"currency"`
}

// ConfigResponse feeds the provider's browser widget.
type ConfigResponse struct {
	PublishableKey string              `json:"publishableKey"`
	Currencies     []payments.Currency `json:"currencies"`
}
