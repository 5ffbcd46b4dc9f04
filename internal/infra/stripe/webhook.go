package stripe

import (
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/webhook"
)

// VerifyWebhook checks the Stripe-Signature header against the endpoint
// secret and returns the verified event. An event must never be trusted
// without this check passing.
func VerifyWebhook(payload []byte, sigHeader, endpointSecret string) (stripe.Event, error) {
	return webhook.ConstructEventWithOptions(
		payload,
		sigHeader,
		endpointSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
}
