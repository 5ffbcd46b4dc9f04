// Package checkout drives a single checkout attempt against the payment
// backend and the provider: create an intent, then confirm it with a payment
// method, funneling every failure through the shared PaymentError contract.
//
// A successful confirmation ends in a redirect to the return URL. The flow
// never marks a payment succeeded on its own; the webhook reconciliation
// handler is the only authority on recorded status, and it races the redirect.
package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"portfolio-payments/internal/domain/payments"
	stripegw "portfolio-payments/internal/infra/stripe"

	"github.com/stripe/stripe-go/v75"
)

// State is the client-visible position within one checkout attempt. There is
// deliberately no succeeded state: success is inferred only by arrival at the
// redirect target.
type State string

const (
	StateDetailsEntry  State = "details-entry"
	StateIntentCreated State = "intent-created"
	StateConfirming    State = "confirming"
	StateRedirected    State = "redirected"
	StateError         State = "error"
)

// Confirmer is the provider-side confirm operation. *stripegw.Gateway
// satisfies it.
type Confirmer interface {
	ConfirmIntent(ctx context.Context, id string, p stripegw.ConfirmParams) (*stripe.PaymentIntent, error)
}

// CreateParams mirrors the create-intent request body.
type CreateParams struct {
	AmountCents   int64
	Currency      payments.Currency
	CustomerEmail string
	CustomerName  string
	Description   string
	Metadata      map[string]any
}

// CreateResult is what the flow retains from a successful intent creation.
type CreateResult struct {
	PaymentID     uint
	ClientSecret  string
	InvoiceNumber string
}

// Flow owns the state machine for one checkout attempt.
type Flow struct {
	baseURL    string
	httpClient *http.Client
	confirmer  Confirmer

	state         State
	lastErr       *payments.PaymentError
	intentID      string
	customerEmail string
	redirectURL   string
}

func New(baseURL string, httpClient *http.Client, confirmer Confirmer) *Flow {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Flow{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		confirmer:  confirmer,
		state:      StateDetailsEntry,
	}
}

func (f *Flow) State() State { return f.state }

// Err returns the error from the last failed step, if any.
func (f *Flow) Err() *payments.PaymentError { return f.lastErr }

// CanRetry reports whether the last error permits re-confirming with the
// same details.
func (f *Flow) CanRetry() bool { return f.lastErr != nil && f.lastErr.Retryable }

// RedirectURL is set once the flow reaches the redirected state.
func (f *Flow) RedirectURL() string { return f.redirectURL }

// Reset returns the flow to details entry, the path out of a non-retryable
// error.
func (f *Flow) Reset() {
	f.state = StateDetailsEntry
	f.lastErr = nil
	f.intentID = ""
	f.customerEmail = ""
	f.redirectURL = ""
}

// CreatePayment asks the backend for a payment intent. On failure the flow
// stays at details entry so the caller can correct input and resubmit.
func (f *Flow) CreatePayment(ctx context.Context, p CreateParams) (*CreateResult, error) {
	if f.state != StateDetailsEntry {
		return nil, f.fail(StateDetailsEntry, &payments.PaymentError{
			Code:      payments.ErrProcessingError,
			Message:   "A checkout is already in progress.",
			Retryable: false,
		})
	}
	f.lastErr = nil

	body, err := json.Marshal(map[string]any{
		"amount":        p.AmountCents,
		"currency":      p.Currency,
		"customerEmail": p.CustomerEmail,
		"customerName":  p.CustomerName,
		"description":   p.Description,
		"metadata":      p.Metadata,
	})
	if err != nil {
		return nil, f.fail(StateDetailsEntry, &payments.PaymentError{
			Code:      payments.ErrProcessingError,
			Message:   "Failed to prepare the payment request.",
			Details:   err.Error(),
			Retryable: false,
		})
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		f.baseURL+"/api/payment/create-intent", bytes.NewReader(body))
	if err != nil {
		return nil, f.fail(StateDetailsEntry, networkError(err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, f.fail(StateDetailsEntry, networkError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var serverErr struct {
			Error     string             `json:"error"`
			Code      payments.ErrorCode `json:"code"`
			Retryable *bool              `json:"retryable"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&serverErr)
		perr := &payments.PaymentError{
			Code:      serverErr.Code,
			Message:   serverErr.Error,
			Retryable: serverErr.Retryable == nil || *serverErr.Retryable,
		}
		if perr.Code == "" {
			perr.Code = payments.ErrProcessingError
		}
		if perr.Message == "" {
			perr.Message = "Failed to create payment."
		}
		return nil, f.fail(StateDetailsEntry, perr)
	}

	var created struct {
		PaymentID     uint   `json:"paymentId"`
		ClientSecret  string `json:"clientSecret"`
		InvoiceNumber string `json:"invoiceNumber"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, f.fail(StateDetailsEntry, &payments.PaymentError{
			Code:      payments.ErrProcessingError,
			Message:   "Unexpected response from the payment service.",
			Details:   err.Error(),
			Retryable: true,
		})
	}

	f.intentID = intentIDFromClientSecret(created.ClientSecret)
	f.customerEmail = p.CustomerEmail
	f.state = StateIntentCreated
	return &CreateResult{
		PaymentID:     created.PaymentID,
		ClientSecret:  created.ClientSecret,
		InvoiceNumber: created.InvoiceNumber,
	}, nil
}

// Confirm submits the payment method to the provider. The return URL carries
// the customer email for the post-redirect success page. Allowed from
// intent-created, or from error when the last error was retryable.
func (f *Flow) Confirm(ctx context.Context, paymentMethodID, returnURLBase string) error {
	switch f.state {
	case StateIntentCreated:
	case StateError:
		if !f.CanRetry() {
			return f.fail(StateError, f.lastErr)
		}
	default:
		return f.fail(f.state, &payments.PaymentError{
			Code:      payments.ErrProcessingError,
			Message:   "No payment intent to confirm.",
			Retryable: false,
		})
	}

	// Local validation stands in for the widget's tokenization step: bad
	// details never reach the network.
	if paymentMethodID == "" {
		f.lastErr = &payments.PaymentError{
			Code:      payments.ErrInvalidCard,
			Message:   "Invalid payment details",
			Retryable: true,
		}
		f.state = StateError
		return f.lastErr
	}

	f.state = StateConfirming
	f.lastErr = nil

	returnURL := returnURLBase + "?" + url.Values{"email": {f.customerEmail}}.Encode()
	_, err := f.confirmer.ConfirmIntent(ctx, f.intentID, stripegw.ConfirmParams{
		PaymentMethodID: paymentMethodID,
		ReturnURL:       returnURL,
	})
	if err != nil {
		f.lastErr = stripegw.MapError(err)
		f.state = StateError
		return f.lastErr
	}

	f.redirectURL = returnURL
	f.state = StateRedirected
	return nil
}

func (f *Flow) fail(state State, perr *payments.PaymentError) error {
	f.state = state
	f.lastErr = perr
	return perr
}

func networkError(err error) *payments.PaymentError {
	return &payments.PaymentError{
		Code:      payments.ErrNetworkError,
		Message:   "Network error. Please check your connection and try again.",
		Details:   err.Error(),
		Retryable: true,
	}
}

// intentIDFromClientSecret recovers the intent id from a client secret of the
// form pi_XXX_secret_YYY.
func intentIDFromClientSecret(clientSecret string) string {
	id, _, _ := strings.Cut(clientSecret, "_secret")
	return id
}
