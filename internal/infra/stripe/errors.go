package stripe

import (
	"errors"
	"net/http"

	"portfolio-payments/internal/domain/payments"

	"github.com/stripe/stripe-go/v75"
)

// MapError converts any provider-side failure into the shared PaymentError
// contract. The returned Message is user-safe; the raw detail goes into
// Details for server-side logging only.
func MapError(err error) *payments.PaymentError {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return &payments.PaymentError{
			Code:      payments.ErrUnknownError,
			Message:   "An unexpected error occurred. Please try again.",
			Details:   err.Error(),
			Retryable: true,
		}
	}

	if stripeErr.Code == stripe.ErrorCodeRateLimit || stripeErr.HTTPStatusCode == http.StatusTooManyRequests {
		return &payments.PaymentError{
			Code:      payments.ErrRateLimitExceeded,
			Message:   "Too many requests. Please wait a moment and try again.",
			Details:   stripeErr.Msg,
			Retryable: true,
		}
	}

	switch stripeErr.Type {
	case stripe.ErrorTypeCard:
		return mapCardError(stripeErr)

	case stripe.ErrorTypeInvalidRequest:
		if stripeErr.Param == "currency" {
			return &payments.PaymentError{
				Code:      payments.ErrUnsupportedCurrency,
				Message:   "This currency is not supported.",
				Details:   stripeErr.Msg,
				Retryable: false,
			}
		}
		return &payments.PaymentError{
			Code:      payments.ErrInvalidAmount,
			Message:   "Invalid payment request. Please check the payment details.",
			Details:   stripeErr.Msg,
			Retryable: false,
		}

	case stripe.ErrorTypeAPI:
		return &payments.PaymentError{
			Code:      payments.ErrNetworkError,
			Message:   "Network error. Please check your connection and try again.",
			Details:   stripeErr.Msg,
			Retryable: true,
		}

	default:
		message := stripeErr.Msg
		if message == "" {
			message = "Payment processing error. Please try again."
		}
		return &payments.PaymentError{
			Code:      payments.ErrProcessingError,
			Message:   message,
			Details:   string(stripeErr.Type),
			Retryable: true,
		}
	}
}

func mapCardError(stripeErr *stripe.Error) *payments.PaymentError {
	if stripeErr.DeclineCode == stripe.DeclineCodeInsufficientFunds {
		return &payments.PaymentError{
			Code:      payments.ErrInsufficientFunds,
			Message:   "Insufficient funds. Please try another payment method.",
			Details:   string(stripeErr.DeclineCode),
			Retryable: true,
		}
	}

	switch stripeErr.Code {
	case stripe.ErrorCodeIncorrectNumber,
		stripe.ErrorCodeInvalidNumber,
		stripe.ErrorCodeInvalidExpiryMonth,
		stripe.ErrorCodeInvalidExpiryYear,
		stripe.ErrorCodeIncorrectCVC,
		stripe.ErrorCodeInvalidCVC,
		stripe.ErrorCodeExpiredCard:
		message := stripeErr.Msg
		if message == "" {
			message = "Invalid card details. Please check and try again."
		}
		return &payments.PaymentError{
			Code:      payments.ErrInvalidCard,
			Message:   message,
			Details:   string(stripeErr.Code),
			Retryable: true,
		}
	}

	message := stripeErr.Msg
	if message == "" {
		message = "Your card was declined. Please try another payment method."
	}
	return &payments.PaymentError{
		Code:      payments.ErrCardDeclined,
		Message:   message,
		Details:   string(stripeErr.Code),
		Retryable: true,
	}
}
