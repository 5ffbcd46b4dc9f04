package payments

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CreatePaymentRequest is the body of the create-intent endpoint. Amount is
// an integer count of minor currency units.
type CreatePaymentRequest struct {
	Amount        int64          `json:"amount" validate:"required,min=50,max=100000000"`
	Currency      string         `json:"currency" validate:"required,oneof=USD EUR GBP CAD"`
	CustomerEmail string         `json:"customerEmail" validate:"required,email,max=254"`
	CustomerName  string         `json:"customerName" validate:"omitempty,max=100"`
	Description   string         `json:"description" validate:"omitempty,max=500"`
	Metadata      map[string]any `json:"metadata"`
}

// FieldError is one entry of the 400-response details list.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateCreateRequest checks the creation request against the schema and
// returns one (field, message) pair per violation. It never panics into the
// caller; an empty slice means the request is valid.
func ValidateCreateRequest(req *CreatePaymentRequest) []FieldError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "request", Message: "Invalid request"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "amount":
		switch fe.Tag() {
		case "required":
			return "Amount is required"
		case "min":
			return fmt.Sprintf("Minimum amount is %s", FormatCurrency(MinAmountCents, CurrencyUSD, true))
		case "max":
			return fmt.Sprintf("Maximum amount is %s", FormatCurrency(MaxAmountCents, CurrencyUSD, true))
		}
	case "currency":
		if fe.Tag() == "required" {
			return "Currency is required"
		}
		return "Invalid currency"
	case "customerEmail":
		switch fe.Tag() {
		case "required":
			return "Email is required"
		case "email":
			return "Invalid email address"
		case "max":
			return "Email too long"
		}
	case "customerName":
		return "Name too long"
	case "description":
		return "Description too long"
	}
	return fmt.Sprintf("Invalid value for %s", fe.Field())
}
