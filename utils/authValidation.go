package utils

import (
	"MediBook/models"
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validation errors
var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordNotComplex = errors.New("password must include at least one uppercase letter, one lowercase letter, one digit, and one special character")
)

// RegistrationInput carries the register form fields.
type RegistrationInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateRegistration validates a registration request.
func ValidateRegistration(in RegistrationInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Username, validation.Required, validation.Length(3, 80)),
		validation.Field(&in.Email, is.Email),
		validation.Field(&in.Password, validation.Required.Error("password cannot be blank"), validation.By(validatePassword)),
	)
}

// ValidatePasswordReset validates the reset code and new password.
func ValidatePasswordReset(resetCode, newPassword string) error {
	return validation.Errors{
		"resetCode": validation.Validate(resetCode, validation.Required.Error("invalid reset code")),
		"password":  validation.Validate(newPassword, validation.Required, validation.By(validatePassword)),
	}.Filter()
}

// ValidateSlot validates a calendar date and clock time pair as received
// from clients ("YYYY-MM-DD" and "HH:MM").
func ValidateSlot(date, clock string) error {
	return validation.Errors{
		"date": validation.Validate(date, validation.Required, validation.Date(models.DateLayout)),
		"time": validation.Validate(clock, validation.Required, validation.Date(models.TimeLayout)),
	}.Filter()
}

// ValidateWindow validates an availability window submission.
func ValidateWindow(date, start, end string) error {
	return validation.Errors{
		"date":       validation.Validate(date, validation.Required, validation.Date(models.DateLayout)),
		"start_time": validation.Validate(start, validation.Required, validation.Date(models.TimeLayout)),
		"end_time":   validation.Validate(end, validation.Required, validation.Date(models.TimeLayout)),
	}.Filter()
}

// validatePassword checks the password for length and complexity.
func validatePassword(value interface{}) error {
	password, _ := value.(string)

	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	var (
		lowercaseRegex = regexp.MustCompile(`[a-z]`)
		uppercaseRegex = regexp.MustCompile(`[A-Z]`)
		digitRegex     = regexp.MustCompile(`\d`)
		specialRegex   = regexp.MustCompile(`[@$!%*?&]`)
	)

	if !lowercaseRegex.MatchString(password) ||
		!uppercaseRegex.MatchString(password) ||
		!digitRegex.MatchString(password) ||
		!specialRegex.MatchString(password) {
		return ErrPasswordNotComplex
	}

	return nil
}
