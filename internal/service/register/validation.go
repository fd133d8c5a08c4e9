package register

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/edunexus/auth-client/internal/client/authapi"
)

// Field length limits mirror what the server enforces.
const (
	idNumberMinLength = 2
	idNumberMaxLength = 15
	nameMinLength     = 2
	nameMaxLength     = 50
	emailMaxLength    = 100
	passwordMinLength = 8
	passwordMaxLength = 100

	minimumAge = 13

	birthDateLayout = "2006-01-02"
)

// passwordSymbols is the set of special characters the server accepts.
const passwordSymbols = "@#$%^&+=!"

var (
	idNumberPattern = regexp.MustCompile(`^[0-9A-Za-z-]+$`)
	namePattern     = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÑáéíóúñ ]+$`)
	phonePattern    = regexp.MustCompile(`^[+]?[0-9]{10,15}$`)
)

// validateStep checks the fields owned by a single step.
func (f *Form) validateStep(step Step) error {
	switch step {
	case StepIdentity:
		return validation.ValidateStruct(f,
			validation.Field(&f.IDNumber,
				validation.Required.Error("ID number is required"),
				validation.Length(idNumberMinLength, idNumberMaxLength).
					Error(fmt.Sprintf("ID number must be %d-%d characters", idNumberMinLength, idNumberMaxLength)),
				validation.Match(idNumberPattern).Error("ID number may only contain letters, digits and dashes"),
			),
			validation.Field(&f.Name,
				validation.Required.Error("Name is required"),
				validation.Length(nameMinLength, nameMaxLength).
					Error(fmt.Sprintf("Name must be %d-%d characters", nameMinLength, nameMaxLength)),
				validation.Match(namePattern).Error("Name may only contain letters and spaces"),
			),
			validation.Field(&f.LastName,
				validation.Required.Error("Last name is required"),
				validation.Length(nameMinLength, nameMaxLength).
					Error(fmt.Sprintf("Last name must be %d-%d characters", nameMinLength, nameMaxLength)),
				validation.Match(namePattern).Error("Last name may only contain letters and spaces"),
			),
			validation.Field(&f.DateOfBirth,
				validation.By(validateBirthDate),
			),
		)
	case StepContact:
		return validation.ValidateStruct(f,
			validation.Field(&f.Email,
				validation.Required.Error("Email is required"),
				validation.Length(0, emailMaxLength).
					Error(fmt.Sprintf("Email must be at most %d characters", emailMaxLength)),
				is.Email.Error("Email must be a valid email address"),
			),
			validation.Field(&f.PhoneNumber,
				validation.Match(phonePattern).Error("Phone number must be 10-15 digits, optionally prefixed with +"),
			),
		)
	case StepCredentials:
		return validation.ValidateStruct(f,
			validation.Field(&f.Password,
				validation.Required.Error("Password is required"),
				validation.Length(passwordMinLength, passwordMaxLength).
					Error(fmt.Sprintf("Password must be %d-%d characters", passwordMinLength, passwordMaxLength)),
				validation.By(validatePasswordComplexity),
			),
			validation.Field(&f.ConfirmPassword,
				validation.Required.Error("Please confirm your password"),
				validation.By(f.validatePasswordsMatch),
			),
			validation.Field(&f.TermsAccepted,
				validation.Required.Error("You must accept the terms and conditions"),
			),
		)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownStep, step)
	}
}

// validateAll checks every step, merging per-field errors across steps.
func (f *Form) validateAll() error {
	merged := validation.Errors{}

	for _, step := range []Step{StepIdentity, StepContact, StepCredentials} {
		err := f.validateStep(step)
		if err == nil {
			continue
		}

		var fieldErrors validation.Errors
		if !errors.As(err, &fieldErrors) {
			return err
		}

		for field, fieldErr := range fieldErrors {
			merged[field] = fieldErr
		}
	}

	if len(merged) == 0 {
		return nil
	}

	return merged
}

// validatePasswordComplexity requires at least one uppercase letter, one
// lowercase letter, one digit and one symbol from the accepted set.
// RE2 has no lookahead, so the character classes are checked one by one.
func validatePasswordComplexity(value interface{}) error {
	password, _ := value.(string)
	if password == "" {
		return nil
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool

	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit || !hasSymbol {
		return fmt.Errorf(
			"password must contain an uppercase letter, a lowercase letter, a digit and one of %s",
			passwordSymbols)
	}

	return nil
}

func (f *Form) validatePasswordsMatch(value interface{}) error {
	confirm, _ := value.(string)
	if confirm != f.Password {
		return errors.New("passwords do not match")
	}

	return nil
}

// validateBirthDate accepts an empty value, otherwise requires a past date
// and a holder at least minimumAge years old.
func validateBirthDate(value interface{}) error {
	raw, _ := value.(string)
	if raw == "" {
		return nil
	}

	birthDate, err := time.Parse(birthDateLayout, raw)
	if err != nil {
		return errors.New("date of birth must be in YYYY-MM-DD format")
	}

	now := time.Now()
	if !birthDate.Before(now) {
		return errors.New("date of birth must be in the past")
	}

	if ageAt(birthDate, now) < minimumAge {
		return fmt.Errorf("you must be at least %d years old", minimumAge)
	}

	return nil
}

// ageAt computes full years between birthDate and now, counting the birthday
// itself as completed.
func ageAt(birthDate, now time.Time) int {
	years := now.Year() - birthDate.Year()

	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		years--
	}

	return years
}

// FieldErrors flattens a validation failure into field-to-message pairs for
// display. Both local validation errors and the server's per-field rejection
// map are understood. Returns nil when the error carries no per-field detail.
func FieldErrors(err error) map[string]string {
	var fieldErrors validation.Errors
	if errors.As(err, &fieldErrors) {
		messages := make(map[string]string, len(fieldErrors))
		for field, fieldErr := range fieldErrors {
			messages[field] = fieldErr.Error()
		}

		return messages
	}

	if apiError, ok := authapi.AsError(err); ok && len(apiError.Fields) > 0 {
		messages := make(map[string]string, len(apiError.Fields))
		for field, message := range apiError.Fields {
			messages[field] = message
		}

		return messages
	}

	return nil
}
