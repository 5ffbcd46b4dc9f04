package stripe

import (
	"errors"
	"net/http"
	"testing"

	"portfolio-payments/internal/domain/payments"

	"github.com/stripe/stripe-go/v75"
)

func TestMapErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantCode      payments.ErrorCode
		wantRetryable bool
	}{
		{
			name:          "card declined",
			err:           &stripe.Error{Type: stripe.ErrorTypeCard, Msg: "Your card was declined."},
			wantCode:      payments.ErrCardDeclined,
			wantRetryable: true,
		},
		{
			name:          "insufficient funds",
			err:           &stripe.Error{Type: stripe.ErrorTypeCard, DeclineCode: stripe.DeclineCodeInsufficientFunds},
			wantCode:      payments.ErrInsufficientFunds,
			wantRetryable: true,
		},
		{
			name:          "invalid card number",
			err:           &stripe.Error{Type: stripe.ErrorTypeCard, Code: stripe.ErrorCodeInvalidNumber},
			wantCode:      payments.ErrInvalidCard,
			wantRetryable: true,
		},
		{
			name:          "expired card",
			err:           &stripe.Error{Type: stripe.ErrorTypeCard, Code: stripe.ErrorCodeExpiredCard},
			wantCode:      payments.ErrInvalidCard,
			wantRetryable: true,
		},
		{
			name:          "invalid request",
			err:           &stripe.Error{Type: stripe.ErrorTypeInvalidRequest, Msg: "Amount must be at least 50 cents"},
			wantCode:      payments.ErrInvalidAmount,
			wantRetryable: false,
		},
		{
			name:          "unsupported currency",
			err:           &stripe.Error{Type: stripe.ErrorTypeInvalidRequest, Param: "currency"},
			wantCode:      payments.ErrUnsupportedCurrency,
			wantRetryable: false,
		},
		{
			name:          "api error",
			err:           &stripe.Error{Type: stripe.ErrorTypeAPI},
			wantCode:      payments.ErrNetworkError,
			wantRetryable: true,
		},
		{
			name:          "rate limited",
			err:           &stripe.Error{Type: stripe.ErrorTypeInvalidRequest, Code: stripe.ErrorCodeRateLimit},
			wantCode:      payments.ErrRateLimitExceeded,
			wantRetryable: true,
		},
		{
			name:          "rate limited by status",
			err:           &stripe.Error{Type: stripe.ErrorTypeAPI, HTTPStatusCode: http.StatusTooManyRequests},
			wantCode:      payments.ErrRateLimitExceeded,
			wantRetryable: true,
		},
		{
			name:          "unknown error",
			err:           errors.New("boom"),
			wantCode:      payments.ErrUnknownError,
			wantRetryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", got.Code, tt.wantCode)
			}
			if got.Retryable != tt.wantRetryable {
				t.Errorf("retryable = %v, want %v", got.Retryable, tt.wantRetryable)
			}
			if got.Message == "" {
				t.Error("message must never be empty")
			}
		})
	}
}

func TestMapErrorKeepsUserMessage(t *testing.T) {
	got := MapError(&stripe.Error{Type: stripe.ErrorTypeCard, Msg: "Your card was declined."})
	if got.Message != "Your card was declined." {
		t.Errorf("message = %q", got.Message)
	}
}
