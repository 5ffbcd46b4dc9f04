package stripe

import (
	"context"
	"strings"

	"portfolio-payments/internal/domain/payments"

	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/client"
)

// Gateway wraps an explicitly constructed Stripe API client. It is built once
// in main and handed to handlers, instead of mutating the SDK's global key.
type Gateway struct {
	api *client.API
}

func NewGateway(secretKey string) *Gateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Gateway{api: api}
}

// IntentParams carries everything needed to open a remote payment intent.
// Metadata must already be sanitized and string-coerced.
type IntentParams struct {
	AmountCents   int64
	Currency      payments.Currency
	CustomerEmail string
	Description   string
	Metadata      map[string]string
}

// ConfirmParams carries the server-side confirmation inputs.
type ConfirmParams struct {
	PaymentMethodID string
	ReturnURL       string
}

func (g *Gateway) CreateIntent(ctx context.Context, p IntentParams) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params:       stripe.Params{Context: ctx},
		Amount:       stripe.Int64(p.AmountCents),
		Currency:     stripe.String(strings.ToLower(string(p.Currency))),
		ReceiptEmail: stripe.String(p.CustomerEmail),
		Description:  stripe.String(p.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}
	return g.api.PaymentIntents.New(params)
}

func (g *Gateway) CancelIntent(ctx context.Context, id string) error {
	params := &stripe.PaymentIntentCancelParams{Params: stripe.Params{Context: ctx}}
	_, err := g.api.PaymentIntents.Cancel(id, params)
	return err
}

func (g *Gateway) ConfirmIntent(ctx context.Context, id string, p ConfirmParams) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentConfirmParams{
		Params:        stripe.Params{Context: ctx},
		PaymentMethod: stripe.String(p.PaymentMethodID),
		ReturnURL:     stripe.String(p.ReturnURL),
	}
	return g.api.PaymentIntents.Confirm(id, params)
}
