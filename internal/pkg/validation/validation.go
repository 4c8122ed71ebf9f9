package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"paydesk/internal/core/domain"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	phoneRegex    = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	addrLineRegex = regexp.MustCompile(`^[A-Za-z0-9 ,.\-]+$`)
	bankNameRegex = regexp.MustCompile(`^[A-Za-z ,.\-]+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report field names as their json tags so error maps match the wire shape
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("addrline", func(fl validator.FieldLevel) bool {
		return addrLineRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("bankname", func(fl validator.FieldLevel) bool {
		return bankNameRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("country", func(fl validator.FieldLevel) bool {
		return domain.IsValidCountry(fl.Field().String())
	})
	v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return domain.IsValidCurrency(fl.Field().String())
	})

	return v
}

// Struct validates every tagged field of s and returns the full set of
// violations keyed by json field name. A nil map means s is valid.
func Struct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Non-struct input is a programming error, not a field violation
		panic(err)
	}

	fields := make(map[string]string)
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return fields
}

// Amount checks a payment amount: strictly positive with at most two
// fractional digits. Returns "" when the amount is valid.
func Amount(amount decimal.Decimal) string {
	if amount.LessThanOrEqual(decimal.Zero) {
		return "must be greater than 0"
	}
	if amount.Exponent() < -2 {
		return "must have at most 2 decimal places"
	}
	return ""
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "alpha":
		return "must contain only letters"
	case "alphanum":
		return "must contain only letters and digits"
	case "number":
		return "must contain only digits"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "phone":
		return "must be a valid phone number"
	case "addrline":
		return "must contain only letters, digits, spaces, commas, periods or dashes"
	case "bankname":
		return "must contain only letters, spaces, commas, periods or dashes"
	case "country":
		return "must be a recognised country"
	case "currency":
		return "must be one of USD, GBP, EUR, SGD, HKD, JPY"
	default:
		return "is invalid"
	}
}
