// Package validation checks form input before it reaches the store. Field
// rules live in `validate` struct tags; failures come back as one validation
// error listing every bad field under "fields".
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/spec-kit/storefront/pkg/util/errorutil"
)

// Form messages shown verbatim to the user.
const (
	MsgFillAllFields     = "Please fill in all fields"
	MsgPasswordsMismatch = "Passwords do not match"
	MsgPasswordTooShort  = "Password must be at least 6 characters"
	MsgInvalidEmail      = "Please enter a valid email address"
	MsgWeakPassword      = "Password does not meet the password policy"
	MsgInvalidInput      = "Please correct the highlighted fields"
)

const (
	MinStrongPasswordLength = 8
	maxInputLength          = 255
	strongPasswordSpecials  = "!@#$%^&*"
)

var expiryFormat = regexp.MustCompile(`^(\d{2})/(\d{2})$`)

// messagePriority decides which message a multi-field failure reports, in
// the order the signup form checks its rules. An empty field matches any.
var messagePriority = []struct {
	tag, field, message string
}{
	{"required", "", MsgFillAllFields},
	{"eqfield", "", MsgPasswordsMismatch},
	{"min", "password", MsgPasswordTooShort},
	{"email", "", MsgInvalidEmail},
	{"max", "email", MsgInvalidEmail},
	{"strong_password", "", MsgWeakPassword},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		}
		return name
	})
	// oneofci is oneof ignoring case and surrounding spaces.
	if err := v.RegisterValidation("oneofci", func(fl validator.FieldLevel) bool {
		value := strings.TrimSpace(fl.Field().String())
		for _, option := range strings.Fields(fl.Param()) {
			if strings.EqualFold(value, option) {
				return true
			}
		}
		return false
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("strong_password", func(fl validator.FieldLevel) bool {
		reason, _ := PasswordWeakness(fl.Field().String())
		return reason == ""
	}); err != nil {
		panic(err)
	}
	return v
}

// Struct runs the validate tags of v.
func Struct(v any) error {
	fields, err := fieldErrors(validate.Struct(v))
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	return apperrors.NewValidationError(messageFor(fields), map[string]any{"fields": fields})
}

// fieldErrors turns validator output into field name → reason.
func fieldErrors(err error) (map[string]any, error) {
	if err == nil {
		return nil, nil
	}
	var failures validator.ValidationErrors
	if !errors.As(err, &failures) {
		return nil, apperrors.NewInternalError(err)
	}
	fields := make(map[string]any, len(failures))
	for _, fe := range failures {
		fields[fe.Field()] = reasonFor(fe.Tag())
	}
	return fields, nil
}

func reasonFor(tag string) string {
	switch tag {
	case "required":
		return "required"
	case "eqfield":
		return "mismatch"
	case "min":
		return "too_short"
	case "max":
		return "too_long"
	case "strong_password":
		return "weak"
	}
	return "invalid"
}

func messageFor(fields map[string]any) string {
	for _, rule := range messagePriority {
		for field, reason := range fields {
			if reason == reasonFor(rule.tag) && (rule.field == "" || rule.field == field) &&
				(rule.tag != "email" || field == "email") {
				return rule.message
			}
		}
	}
	return MsgInvalidInput
}

// SignupForm mirrors the registration form.
type SignupForm struct {
	Name            string `json:"name" validate:"required,max=255"`
	Email           string `json:"email" validate:"required,email,max=254"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// ValidateSignup checks the signup form. With several problems the message
// follows the form's own order: missing fields, mismatch, length, email.
func ValidateSignup(form SignupForm) error {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	return Struct(form)
}

// IsValidEmail accepts addresses up to 254 characters.
func IsValidEmail(email string) bool {
	return validate.Var(strings.TrimSpace(email), "required,email,max=254") == nil
}

// PasswordWeakness returns the first rule of the admin password policy that
// password breaks, as a reason code and a message. Both are empty for a
// strong password.
func PasswordWeakness(password string) (reason, message string) {
	if len([]rune(password)) < MinStrongPasswordLength {
		return "too_short", "Password must be at least 8 characters long"
	}
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(strongPasswordSpecials, r):
			special = true
		}
	}
	switch {
	case !lower:
		return "no_lowercase", "Password must contain at least one lowercase letter"
	case !upper:
		return "no_uppercase", "Password must contain at least one uppercase letter"
	case !digit:
		return "no_digit", "Password must contain at least one number"
	case !special:
		return "no_special", "Password must contain at least one special character (!@#$%^&*)"
	}
	return "", ""
}

// ValidatePasswordStrength enforces the admin-side password policy.
func ValidatePasswordStrength(password string) error {
	if reason, message := PasswordWeakness(password); reason != "" {
		return apperrors.NewValidationError(message, map[string]any{
			"fields": map[string]any{"password": reason},
		})
	}
	return nil
}

// SanitizeInput trims, drops angle brackets and quotes, and caps the length.
func SanitizeInput(input string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '\'', '"':
			return -1
		}
		return r
	}, strings.TrimSpace(input))
	runes := []rune(cleaned)
	if len(runes) > maxInputLength {
		runes = runes[:maxInputLength]
	}
	return string(runes)
}

// Card is the payment form.
type Card struct {
	Number     string `json:"card_number" validate:"required,min=13,max=19,credit_card"`
	HolderName string `json:"card_name" validate:"required,max=255"`
	Expiry     string `json:"expiry_date" validate:"required"`
	CVV        string `json:"cvv" validate:"required,number,min=3,max=4"`
}

// NormalizeCardNumber strips spaces and dashes.
func NormalizeCardNumber(number string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(number)
}

// ExpiryValid reports whether an MM/YY expiry is still usable at now. A card
// is good through the last day of its expiry month.
func ExpiryValid(expiry string, now time.Time) bool {
	match := expiryFormat.FindStringSubmatch(strings.TrimSpace(expiry))
	if match == nil {
		return false
	}
	month, _ := strconv.Atoi(match[1])
	year, _ := strconv.Atoi(match[2])
	if month < 1 || month > 12 {
		return false
	}
	end := time.Date(2000+year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return now.UTC().Before(end)
}

// ValidateCard checks every card field and reports all failures together.
func ValidateCard(card Card, now time.Time) error {
	card.Number = NormalizeCardNumber(card.Number)
	card.HolderName = strings.TrimSpace(card.HolderName)
	card.Expiry = strings.TrimSpace(card.Expiry)
	card.CVV = strings.TrimSpace(card.CVV)

	fields, err := fieldErrors(validate.Struct(card))
	if err != nil {
		return err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	if _, flagged := fields["expiry_date"]; !flagged && !ExpiryValid(card.Expiry, now) {
		fields["expiry_date"] = "invalid"
	}
	if len(fields) > 0 {
		return apperrors.NewValidationError("invalid payment details", map[string]any{"fields": fields})
	}
	return nil
}
