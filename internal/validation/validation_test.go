package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "github.com/spec-kit/storefront/pkg/util/errorutil"
)

func messageOf(t *testing.T, err error) string {
	t.Helper()
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected domain error, got %v", err)
	}
	if domainErr.Code != apperrors.CodeValidation {
		t.Fatalf("expected validation code, got %s", domainErr.Code)
	}
	return domainErr.Message
}

func TestValidateSignup(t *testing.T) {
	cases := []struct {
		name string
		form SignupForm
		want string
	}{
		{"missing name", SignupForm{Email: "a@b.co", Password: "secret1", ConfirmPassword: "secret1"}, MsgFillAllFields},
		{"mismatch", SignupForm{Name: "A", Email: "a@b.co", Password: "abcdef", ConfirmPassword: "abcdeg"}, MsgPasswordsMismatch},
		{"short", SignupForm{Name: "A", Email: "a@b.co", Password: "abc", ConfirmPassword: "abc"}, MsgPasswordTooShort},
		{"bad email", SignupForm{Name: "A", Email: "not-an-email", Password: "abcdef", ConfirmPassword: "abcdef"}, MsgInvalidEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := messageOf(t, ValidateSignup(tc.form)); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}

	ok := SignupForm{Name: "Ana", Email: "ana@example.com", Password: "abcdef", ConfirmPassword: "abcdef"}
	if err := ValidateSignup(ok); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}
}

func TestIsValidEmail(t *testing.T) {
	if !IsValidEmail("john@example.com") {
		t.Fatalf("expected valid")
	}
	for _, bad := range []string{"", "john", "jo hn@example.com", strings.Repeat("a", 250) + "@b.co"} {
		if IsValidEmail(bad) {
			t.Errorf("%q should be invalid", bad)
		}
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	if err := ValidatePasswordStrength("Str0ng!pw"); err != nil {
		t.Fatalf("strong password rejected: %v", err)
	}
	for _, weak := range []string{"Sh0rt!", "alllower1!", "ALLUPPER1!", "NoDigits!!", "NoSpecial12"} {
		if err := ValidatePasswordStrength(weak); err == nil {
			t.Errorf("%q should be rejected", weak)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  <b>\"hi\" it's</b> "); got != "bhi its/b" {
		t.Fatalf("unexpected sanitize result %q", got)
	}
	if got := SanitizeInput(strings.Repeat("é", 300)); len([]rune(got)) != 255 {
		t.Fatalf("expected 255 runes, got %d", len([]rune(got)))
	}
}

func TestExpiryValid(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	cases := map[string]bool{
		"06/25": true,
		"07/25": true,
		"05/25": false,
		"13/26": false,
		"6/26":  false,
		"12/30": true,
	}
	for expiry, want := range cases {
		if got := ExpiryValid(expiry, now); got != want {
			t.Errorf("ExpiryValid(%q) = %v, want %v", expiry, got, want)
		}
	}
}

func TestValidateCard(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	good := Card{Number: "4242 4242 4242 4242", HolderName: "John Smith", Expiry: "12/27", CVV: "123"}
	if err := ValidateCard(good, now); err != nil {
		t.Fatalf("valid card rejected: %v", err)
	}

	err := ValidateCard(Card{Number: "1234", Expiry: "01/20", CVV: "12"}, now)
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected domain error, got %v", err)
	}
	fields := domainErr.Details["fields"].(map[string]any)
	for _, key := range []string{"card_number", "card_name", "expiry_date", "cvv"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("expected %s to be flagged", key)
		}
	}
}

func TestValidateSignupReportsEveryField(t *testing.T) {
	err := ValidateSignup(SignupForm{Email: "nope", Password: "abc", ConfirmPassword: "abd"})
	if got := messageOf(t, err); got != MsgFillAllFields {
		t.Fatalf("got %q, want %q", got, MsgFillAllFields)
	}
	var domainErr *apperrors.DomainError
	errors.As(err, &domainErr)
	fields := domainErr.Details["fields"].(map[string]any)
	want := map[string]string{
		"name":             "required",
		"email":            "invalid",
		"password":         "too_short",
		"confirm_password": "mismatch",
	}
	for field, reason := range want {
		if fields[field] != reason {
			t.Errorf("fields[%s] = %v, want %s", field, fields[field], reason)
		}
	}
}

type prefsForm struct {
	Role     string `json:"role" validate:"omitempty,oneofci=admin user"`
	Password string `json:"password" validate:"required,strong_password"`
}

func TestStructCustomTags(t *testing.T) {
	if err := Struct(prefsForm{Role: " Admin ", Password: "Str0ng!pw"}); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}
	if err := Struct(prefsForm{Password: "Str0ng!pw"}); err != nil {
		t.Fatalf("empty optional role rejected: %v", err)
	}

	err := Struct(prefsForm{Role: "owner", Password: "weakpass"})
	if got := messageOf(t, err); got != MsgWeakPassword {
		t.Fatalf("got %q, want %q", got, MsgWeakPassword)
	}
	var domainErr *apperrors.DomainError
	errors.As(err, &domainErr)
	fields := domainErr.Details["fields"].(map[string]any)
	if fields["role"] != "invalid" || fields["password"] != "weak" {
		t.Fatalf("unexpected fields %v", fields)
	}
}

func TestPasswordWeakness(t *testing.T) {
	cases := map[string]string{
		"Str0ng!pw":   "",
		"Sh0rt!":      "too_short",
		"ALLUPPER1!":  "no_lowercase",
		"alllower1!":  "no_uppercase",
		"NoDigits!!":  "no_digit",
		"NoSpecial12": "no_special",
	}
	for password, want := range cases {
		if got, _ := PasswordWeakness(password); got != want {
			t.Errorf("PasswordWeakness(%q) = %q, want %q", password, got, want)
		}
	}
}
