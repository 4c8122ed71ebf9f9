package validation

import (
	"testing"

	"github.com/shopspring/decimal"
)

type sample struct {
	Name    string `json:"name" validate:"required,alpha,max=5"`
	Phone   string `json:"phone" validate:"required,phone"`
	Address string `json:"address,omitempty" validate:"omitempty,addrline,max=100"`
	Bank    string `json:"bank,omitempty" validate:"omitempty,bankname,max=50"`
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	fields := Struct(&sample{Name: "Jane1", Phone: "+442079460000"})
	if fields == nil {
		t.Fatal("expected violations")
	}
	if _, ok := fields["name"]; !ok {
		t.Errorf("expected key to be the json tag name, got %v", fields)
	}
}

func TestStructCollectsAllViolations(t *testing.T) {
	fields := Struct(&sample{})
	if len(fields) != 2 {
		t.Fatalf("expected 2 violations, got %v", fields)
	}
	for _, key := range []string{"name", "phone"} {
		if fields[key] != "is required" {
			t.Errorf("field %q: got %q", key, fields[key])
		}
	}
}

func TestStructValid(t *testing.T) {
	fields := Struct(&sample{Name: "Jane", Phone: "+442079460000", Address: "1 Main St, Flat 2-B."})
	if fields != nil {
		t.Errorf("expected no violations, got %v", fields)
	}
}

func TestPhoneRule(t *testing.T) {
	tests := []struct {
		phone string
		ok    bool
	}{
		{"+442079460000", true},
		{"0123456789", true},
		{"123456", false},           // too short
		{"+4420794600001234", false}, // too long
		{"12ab34567", false},
		{"", false},
	}
	for _, tt := range tests {
		fields := Struct(&sample{Name: "Jane", Phone: tt.phone})
		_, bad := fields["phone"]
		if tt.ok && bad {
			t.Errorf("phone %q: unexpected violation %q", tt.phone, fields["phone"])
		}
		if !tt.ok && !bad {
			t.Errorf("phone %q: expected violation", tt.phone)
		}
	}
}

func TestBankNameRule(t *testing.T) {
	tests := []struct {
		bank string
		ok   bool
	}{
		{"Example Bank", true},
		{"First-National, Ltd.", true},
		{"Bank 24", false},
		{"Bank!", false},
	}
	for _, tt := range tests {
		fields := Struct(&sample{Name: "Jane", Phone: "+442079460000", Bank: tt.bank})
		_, bad := fields["bank"]
		if tt.ok && bad {
			t.Errorf("bank %q: unexpected violation", tt.bank)
		}
		if !tt.ok && !bad {
			t.Errorf("bank %q: expected violation", tt.bank)
		}
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		amount string
		ok     bool
	}{
		{"100.00", true},
		{"0.01", true},
		{"250", true},
		{"0", false},
		{"-5.00", false},
		{"10.005", false},
	}
	for _, tt := range tests {
		msg := Amount(decimal.RequireFromString(tt.amount))
		if tt.ok && msg != "" {
			t.Errorf("amount %s: unexpected violation %q", tt.amount, msg)
		}
		if !tt.ok && msg == "" {
			t.Errorf("amount %s: expected violation", tt.amount)
		}
	}
}
