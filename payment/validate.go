package payment

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	digitsPattern   = regexp.MustCompile(`^\d+$`)
	expiryPattern   = regexp.MustCompile(`^(\d{2})/(\d{2})$`)
	holderPattern   = regexp.MustCompile(`^[a-zA-Z ]+$`)
	egMobilePattern = regexp.MustCompile(`^01[0125]\d{8}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	registrations := map[string]validator.Func{
		"cardnumber": validateCardNumber,
		"expiry":     validateExpiry,
		"notpast":    validateNotPast,
		"alphaspace": validateAlphaSpace,
		"egmobile":   validateEgMobile,
	}
	for tag, fn := range registrations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register %q validation: %v", tag, err)
		}
	}
	return v
}

// validateCardNumber checks an already-normalized card number against the
// digit-count bounds given in the tag parameter, e.g. cardnumber=13-19.
func validateCardNumber(fl validator.FieldLevel) bool {
	bounds := strings.SplitN(fl.Param(), "-", 2)
	if len(bounds) != 2 {
		return false
	}
	minDigits, _ := strconv.Atoi(bounds[0])
	maxDigits, _ := strconv.Atoi(bounds[1])

	value := fl.Field().String()
	if !digitsPattern.MatchString(value) {
		return false
	}
	return len(value) >= minDigits && len(value) <= maxDigits
}

func validateExpiry(fl validator.FieldLevel) bool {
	matches := expiryPattern.FindStringSubmatch(fl.Field().String())
	if matches == nil {
		return false
	}
	month, _ := strconv.Atoi(matches[1])
	return month >= 1 && month <= 12
}

// validateNotPast rejects expiry dates before the current month. Values the
// expiry tag already rejects pass through so the user sees the format error,
// not two errors for the same field.
func validateNotPast(fl validator.FieldLevel) bool {
	matches := expiryPattern.FindStringSubmatch(fl.Field().String())
	if matches == nil {
		return true
	}
	month, _ := strconv.Atoi(matches[1])
	if month < 1 || month > 12 {
		return true
	}
	year, _ := strconv.Atoi(matches[2])
	year += 2000

	now := time.Now()
	if year != now.Year() {
		return year > now.Year()
	}
	return month >= int(now.Month())
}

func validateAlphaSpace(fl validator.FieldLevel) bool {
	return holderPattern.MatchString(fl.Field().String())
}

func validateEgMobile(fl validator.FieldLevel) bool {
	return egMobilePattern.MatchString(fl.Field().String())
}

// violationMessages maps struct field + failing tag to the message shown to
// the user. Wording follows the storefront's payment forms.
var violationMessages = map[string]string{
	"CreditCardForm.CardNumber.required":     "Card number is required",
	"CreditCardForm.CardNumber.cardnumber":   "Card number must be between 16 and 19 digits",
	"CreditCardForm.CardHolderName.required": "Cardholder name is required",
	"CreditCardForm.ExpiryDate.required":     "Expiry date is required",
	"CreditCardForm.ExpiryDate.expiry":       "Expiry date must be in MM/YY format (e.g., 12/25)",
	"CreditCardForm.CVV.required":            "CVV is required",
	"CreditCardForm.CVV.numeric":             "CVV must be 3 digits",
	"CreditCardForm.CVV.len":                 "CVV must be 3 digits",

	"DebitCardForm.CardNumber.required":   "Card number is required",
	"DebitCardForm.CardNumber.cardnumber": "Card number must be between 13 and 19 digits",
	"DebitCardForm.CardHolder.required":   "Cardholder name is required",
	"DebitCardForm.CardHolder.min":        "Cardholder name must be at least 3 characters",
	"DebitCardForm.CardHolder.alphaspace": "Cardholder name must contain only letters and spaces",
	"DebitCardForm.ExpiryDate.required":   "Expiry date is required",
	"DebitCardForm.ExpiryDate.expiry":     "Expiry date must be in MM/YY format (e.g., 12/25)",
	"DebitCardForm.ExpiryDate.notpast":    "Card has expired",
	"DebitCardForm.PIN.required":          "PIN is required",
	"DebitCardForm.PIN.numeric":           "PIN must be 3 or 4 digits",
	"DebitCardForm.PIN.min":               "PIN must be 3 or 4 digits",
	"DebitCardForm.PIN.max":               "PIN must be 3 or 4 digits",

	"MobileForm.PhoneNumber.required": "Mobile number is required",
	"MobileForm.PhoneNumber.egmobile": "Invalid Egyptian mobile number. Must be 11 digits starting with 010, 011, 012, or 015",
	"MobileForm.Provider.required":    "Mobile wallet provider is required",
	"MobileForm.Provider.oneof":       "Unsupported mobile wallet provider",
}

// validateForm runs validator/v10 over the (already normalized) form and
// returns every violated rule, not just the first one.
func validateForm(form any) []string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Payment details could not be validated"}
	}

	violations := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		key := fieldError.StructNamespace() + "." + fieldError.Tag()
		if message, found := violationMessages[key]; found {
			violations = append(violations, message)
		} else {
			violations = append(violations, fmt.Sprintf("Invalid value for %s", fieldError.Field()))
		}
	}
	return violations
}

// ValidationError aggregates every violated rule from one validation pass.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "Please fix the following errors: " + strings.Join(e.Violations, "; ")
}
