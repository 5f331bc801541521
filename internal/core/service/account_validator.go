package service

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/secourse/clinic-scheduler/internal/core/domain"
)

var (
	hasLetter  = regexp.MustCompile(`[A-Za-z]`)
	hasDigit   = regexp.MustCompile(`[0-9]`)
	personName = regexp.MustCompile(`^[A-Z][A-Za-z ]*$`)
	// coarseEmail purposely accepts only word@word.word.
	coarseEmail = regexp.MustCompile(`^\w+@\w+\.\w+$`)
)

// accountRules lists the field checks in the order they are applied.
var accountRules = []struct {
	field string
	tag   string
}{
	{domain.FieldUsername, "required,max=64"},
	{domain.FieldPassword, "min=8,max=128,has_letter,has_digit"},
	{domain.FieldName, "person_name"},
	{domain.FieldEmail, "coarse_email"},
}

// AccountValidator checks the shape of account fields before any mutation
// reaches the directory. It holds no state beyond the compiled rules.
type AccountValidator struct {
	v     *validator.Validate
	rules map[string]string
}

func NewAccountValidator() *AccountValidator {
	v := validator.New()
	mustRegister(v, "has_letter", hasLetter)
	mustRegister(v, "has_digit", hasDigit)
	mustRegister(v, "person_name", personName)
	mustRegister(v, "coarse_email", coarseEmail)

	rules := make(map[string]string, len(accountRules))
	for _, r := range accountRules {
		rules[r.field] = r.tag
	}
	return &AccountValidator{v: v, rules: rules}
}

func mustRegister(v *validator.Validate, tag string, re *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("validator: register %s: %v", tag, err))
	}
}

// ValidateAccount checks username, password, name and email in that order
// and stops at the first failure.
func (av *AccountValidator) ValidateAccount(username, password, name, email string) error {
	values := map[string]string{
		domain.FieldUsername: username,
		domain.FieldPassword: password,
		domain.FieldName:     name,
		domain.FieldEmail:    email,
	}
	for _, r := range accountRules {
		if err := av.ValidateField(r.field, values[r.field]); err != nil {
			return err
		}
	}
	return nil
}

// ValidateField checks a single named field.
func (av *AccountValidator) ValidateField(field, value string) error {
	tag, ok := av.rules[field]
	if !ok {
		return &domain.ValidationError{Field: field, Reason: "unknown field"}
	}
	if err := av.v.Var(value, tag); err != nil {
		return &domain.ValidationError{Field: field, Reason: reason(err)}
	}
	return nil
}

// reason converts the first failed rule into a human-readable message.
func reason(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return err.Error()
	}
	fe := ve[0]
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "has_letter":
		return "must contain a letter"
	case "has_digit":
		return "must contain a digit"
	case "person_name":
		return "must start with an uppercase letter and contain only letters and spaces"
	case "coarse_email":
		return "must look like user@domain.tld"
	default:
		return fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}
