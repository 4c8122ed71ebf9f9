package domain

import "strings"

// PaymentStatus represents the approval state of a payment
type PaymentStatus string

const (
	StatusPending  PaymentStatus = "Pending"
	StatusApproved PaymentStatus = "Approved"
)

// IsValid reports whether the status is one of the defined states
func (s PaymentStatus) IsValid() bool {
	return s == StatusPending || s == StatusApproved
}

// Currency represents a supported payment currency
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
	CurrencyEUR Currency = "EUR"
	CurrencySGD Currency = "SGD"
	CurrencyHKD Currency = "HKD"
	CurrencyJPY Currency = "JPY"
)

// Currencies lists the supported payment currencies
var Currencies = []Currency{
	CurrencyUSD,
	CurrencyGBP,
	CurrencyEUR,
	CurrencySGD,
	CurrencyHKD,
	CurrencyJPY,
}

// IsValidCurrency reports whether code is a supported currency
func IsValidCurrency(code string) bool {
	for _, c := range Currencies {
		if string(c) == code {
			return true
		}
	}
	return false
}

// Countries is the fixed list of countries a client may be registered in
var Countries = []string{
	"Australia",
	"Austria",
	"Belgium",
	"Canada",
	"China",
	"Denmark",
	"Finland",
	"France",
	"Germany",
	"Hong Kong",
	"India",
	"Indonesia",
	"Ireland",
	"Italy",
	"Japan",
	"Luxembourg",
	"Malaysia",
	"Netherlands",
	"New Zealand",
	"Norway",
	"Philippines",
	"Portugal",
	"Singapore",
	"South Korea",
	"Spain",
	"Sweden",
	"Switzerland",
	"Taiwan",
	"Thailand",
	"United Arab Emirates",
	"United Kingdom",
	"United States",
	"Vietnam",
}

// IsValidCountry reports whether name is a member of the country list
func IsValidCountry(name string) bool {
	for _, c := range Countries {
		if c == name {
			return true
		}
	}
	return false
}

// SanitizeNotes strips quote and semicolon characters from free-text notes
// before they reach storage
func SanitizeNotes(notes string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\'', '"', '`', ';':
			return -1
		}
		return r
	}, notes)
}
