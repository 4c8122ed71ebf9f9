package domain

import (
	"errors"
	"testing"
)

func TestPaymentStatusIsValid(t *testing.T) {
	if !StatusPending.IsValid() || !StatusApproved.IsValid() {
		t.Error("defined states must be valid")
	}
	if PaymentStatus("Rejected").IsValid() {
		t.Error("undefined status accepted")
	}
	if PaymentStatus("").IsValid() {
		t.Error("empty status accepted")
	}
}

func TestCurrencyMembership(t *testing.T) {
	for _, code := range []string{"USD", "GBP", "EUR", "SGD", "HKD", "JPY"} {
		if !IsValidCurrency(code) {
			t.Errorf("supported currency %q rejected", code)
		}
	}
	if IsValidCurrency("AUD") || IsValidCurrency("gbp") {
		t.Error("unsupported currency accepted")
	}
}

func TestCountryMembership(t *testing.T) {
	if !IsValidCountry("United Kingdom") {
		t.Error("United Kingdom rejected")
	}
	if IsValidCountry("Atlantis") || IsValidCountry("") {
		t.Error("unknown country accepted")
	}
}

func TestSanitizeNotes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain note`, "plain note"},
		{`O'Brien`, "OBrien"},
		{`a;b;c`, "abc"},
		{`say "hi"`, "say hi"},
		{"back`tick", "backtick"},
	}
	for _, tt := range tests {
		if got := SanitizeNotes(tt.in); got != tt.want {
			t.Errorf("SanitizeNotes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestErrorTaxonomyMatching(t *testing.T) {
	var nf *NotFoundError
	err := error(NewNotFoundError(EntityPayment, 7))
	if !errors.As(err, &nf) {
		t.Fatal("NotFoundError not matched by errors.As")
	}
	if nf.Entity != EntityPayment || nf.ID != 7 {
		t.Errorf("wrong detail: %+v", nf)
	}

	var ve *ValidationError
	err = NewValidationError(map[string]string{"amount": "must be greater than 0"})
	if !errors.As(err, &ve) {
		t.Fatal("ValidationError not matched by errors.As")
	}
	if ve.Fields["amount"] == "" {
		t.Error("field map lost")
	}

	var te *TransitionError
	err = &TransitionError{From: "Approved", To: "Pending"}
	if !errors.As(err, &te) {
		t.Fatal("TransitionError not matched by errors.As")
	}
}
