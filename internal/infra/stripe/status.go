package stripe

import (
	"portfolio-payments/internal/domain/payments"

	"github.com/stripe/stripe-go/v75"
)

// MapIntentStatus collapses Stripe's fine-grained intent status vocabulary
// into the local coarse status enum. Anything unrecognized is FAILED.
func MapIntentStatus(s stripe.PaymentIntentStatus) payments.Status {
	switch s {
	case stripe.PaymentIntentStatusRequiresPaymentMethod,
		stripe.PaymentIntentStatusRequiresConfirmation,
		stripe.PaymentIntentStatusRequiresAction:
		return payments.StatusPending
	case stripe.PaymentIntentStatusProcessing,
		stripe.PaymentIntentStatusRequiresCapture:
		return payments.StatusProcessing
	case stripe.PaymentIntentStatusSucceeded:
		return payments.StatusSucceeded
	case stripe.PaymentIntentStatusCanceled:
		return payments.StatusCanceled
	default:
		return payments.StatusFailed
	}
}
