package payments

import (
	"strings"
	"testing"
)

func validRequest() CreatePaymentRequest {
	return CreatePaymentRequest{
		Amount:        10000,
		Currency:      "USD",
		CustomerEmail: "a@b.com",
	}
}

func errorFor(errs []FieldError, field string) (FieldError, bool) {
	for _, e := range errs {
		if e.Field == field {
			return e, true
		}
	}
	return FieldError{}, false
}

func TestValidateCreateRequestValid(t *testing.T) {
	req := validRequest()
	if errs := ValidateCreateRequest(&req); len(errs) != 0 {
		t.Fatalf("valid request produced errors: %v", errs)
	}

	req = validRequest()
	req.CustomerName = "Ada Lovelace"
	req.Description = "Consulting"
	req.Metadata = map[string]any{"project": "site"}
	if errs := ValidateCreateRequest(&req); len(errs) != 0 {
		t.Fatalf("valid request with optional fields produced errors: %v", errs)
	}
}

func TestValidateCreateRequestAmount(t *testing.T) {
	req := validRequest()
	req.Amount = -5
	errs := ValidateCreateRequest(&req)
	fe, ok := errorFor(errs, "amount")
	if !ok {
		t.Fatalf("expected amount error, got %v", errs)
	}
	if fe.Message != "Minimum amount is $0.50" {
		t.Errorf("message = %q", fe.Message)
	}

	req = validRequest()
	req.Amount = 49
	if _, ok := errorFor(ValidateCreateRequest(&req), "amount"); !ok {
		t.Error("amount 49 should fail")
	}

	req = validRequest()
	req.Amount = 100000001
	errs = ValidateCreateRequest(&req)
	fe, ok = errorFor(errs, "amount")
	if !ok {
		t.Fatalf("expected amount error, got %v", errs)
	}
	if fe.Message != "Maximum amount is $1,000,000.00" {
		t.Errorf("message = %q", fe.Message)
	}

	req = validRequest()
	req.Amount = 0
	if _, ok := errorFor(ValidateCreateRequest(&req), "amount"); !ok {
		t.Error("missing amount should fail")
	}
}

func TestValidateCreateRequestCurrency(t *testing.T) {
	req := validRequest()
	req.Currency = "JPY"
	fe, ok := errorFor(ValidateCreateRequest(&req), "currency")
	if !ok {
		t.Fatal("expected currency error")
	}
	if fe.Message != "Invalid currency" {
		t.Errorf("message = %q", fe.Message)
	}

	for _, c := range []string{"USD", "EUR", "GBP", "CAD"} {
		req := validRequest()
		req.Currency = c
		if errs := ValidateCreateRequest(&req); len(errs) != 0 {
			t.Errorf("currency %s should be valid: %v", c, errs)
		}
	}
}

func TestValidateCreateRequestEmail(t *testing.T) {
	req := validRequest()
	req.CustomerEmail = ""
	fe, ok := errorFor(ValidateCreateRequest(&req), "customerEmail")
	if !ok {
		t.Fatal("expected customerEmail error")
	}
	if fe.Message != "Email is required" {
		t.Errorf("message = %q", fe.Message)
	}

	req = validRequest()
	req.CustomerEmail = "not-an-email"
	if _, ok := errorFor(ValidateCreateRequest(&req), "customerEmail"); !ok {
		t.Error("malformed email should fail")
	}

	req = validRequest()
	req.CustomerEmail = strings.Repeat("a", 250) + "@b.com"
	if _, ok := errorFor(ValidateCreateRequest(&req), "customerEmail"); !ok {
		t.Error("overlong email should fail")
	}
}

func TestValidateCreateRequestOptionalLengths(t *testing.T) {
	req := validRequest()
	req.Description = strings.Repeat("x", 501)
	if _, ok := errorFor(ValidateCreateRequest(&req), "description"); !ok {
		t.Error("overlong description should fail")
	}

	req = validRequest()
	req.CustomerName = strings.Repeat("x", 101)
	if _, ok := errorFor(ValidateCreateRequest(&req), "customerName"); !ok {
		t.Error("overlong name should fail")
	}
}

func TestValidateCreateRequestCollectsAllErrors(t *testing.T) {
	req := CreatePaymentRequest{}
	errs := ValidateCreateRequest(&req)
	if len(errs) < 3 {
		t.Fatalf("empty request should report every missing field, got %v", errs)
	}
	for _, field := range []string{"amount", "currency", "customerEmail"} {
		if _, ok := errorFor(errs, field); !ok {
			t.Errorf("missing error for %s", field)
		}
	}
}
