package payments

// ErrorCode is the flat, provider-agnostic error taxonomy surfaced to
// checkout callers.
type ErrorCode string

const (
	ErrCardDeclined        ErrorCode = "CARD_DECLINED"
	ErrInsufficientFunds   ErrorCode = "INSUFFICIENT_FUNDS"
	ErrInvalidCard         ErrorCode = "INVALID_CARD"
	ErrInvalidAmount       ErrorCode = "INVALID_AMOUNT"
	ErrUnsupportedCurrency ErrorCode = "UNSUPPORTED_CURRENCY"
	ErrProcessingError     ErrorCode = "PROCESSING_ERROR"
	ErrNetworkError        ErrorCode = "NETWORK_ERROR"
	ErrRateLimitExceeded   ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrUnknownError        ErrorCode = "UNKNOWN_ERROR"
)

// PaymentError is the one error contract every failure path maps into.
// Message is safe to show the user; Details carries the technical detail and
// stays server-side (logged, never serialized).
type PaymentError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"-"`
	Retryable bool      `json:"retryable"`
}

func (e *PaymentError) Error() string {
	return e.Message
}
