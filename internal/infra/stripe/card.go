package stripe

import (
	"github.com/stripe/stripe-go/v75"
)

// ExtractCardDetails pulls brand and last-4 from a payment intent for display
// metadata. Webhook payloads only carry these when the payment method or
// latest charge arrives expanded, so absence is normal.
func ExtractCardDetails(pi *stripe.PaymentIntent) (brand, last4 string, ok bool) {
	if pi == nil {
		return "", "", false
	}
	if pm := pi.PaymentMethod; pm != nil && pm.Card != nil {
		return string(pm.Card.Brand), pm.Card.Last4, true
	}
	if ch := pi.LatestCharge; ch != nil && ch.PaymentMethodDetails != nil && ch.PaymentMethodDetails.Card != nil {
		card := ch.PaymentMethodDetails.Card
		return string(card.Brand), card.Last4, true
	}
	return "", "", false
}
