package session

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

const MinPasswordLength = 8

var (
	ErrInvalidEmail      = errors.New("enter a valid email address")
	ErrEmptyPassword     = errors.New("enter a password")
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters long")
	ErrPasswordNoDigit   = errors.New("password must contain at least one digit")
	ErrPasswordNoLetter  = errors.New("password must contain at least one letter")
	ErrPasswordsMismatch = errors.New("passwords do not match")
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// ValidatePassword checks the registration password rules.
func ValidatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len([]rune(password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	var hasDigit, hasLetter bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLetter(r):
			hasLetter = true
		}
	}
	if !hasDigit {
		return ErrPasswordNoDigit
	}
	if !hasLetter {
		return ErrPasswordNoLetter
	}

	return nil
}

func PasswordsMatch(password, confirm string) bool {
	return password == confirm
}

func validateLogin(email, password string) error {
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}
	if password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func validateRegistration(email, password, confirm string) error {
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	if !PasswordsMatch(password, confirm) {
		return ErrPasswordsMismatch
	}
	return nil
}

// IsValidationError reports whether err is one of the input checks above,
// i.e. it was raised before anything was sent to the API.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrInvalidEmail,
		ErrEmptyPassword,
		ErrPasswordTooShort,
		ErrPasswordNoDigit,
		ErrPasswordNoLetter,
		ErrPasswordsMismatch,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
