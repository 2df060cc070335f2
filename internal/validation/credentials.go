// Package validation holds input checks shared by the client and the server.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"
)

var (
	// ErrInvalidUsername indicates a username outside the allowed format
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidPassword indicates a password that is too short or too long
	ErrInvalidPassword = errors.New("invalid password")
)

// usernamePattern латинские буквы, цифры и подчеркивание
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 3
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 32
	// MinPasswordLen минимальная длина пароля в символах
	MinPasswordLen = 8
	// MaxPasswordBytes ограничение bcrypt на длину пароля
	MaxPasswordBytes = 72
)

// ValidateUsername checks length (3-32) and charset [a-zA-Z0-9_].
func ValidateUsername(username string) error {
	switch {
	case username == "":
		return fmt.Errorf("%w: username cannot be empty", ErrInvalidUsername)
	case len(username) < MinUsernameLen:
		return fmt.Errorf("%w: must be at least %d characters long", ErrInvalidUsername, MinUsernameLen)
	case len(username) > MaxUsernameLen:
		return fmt.Errorf("%w: must not exceed %d characters", ErrInvalidUsername, MaxUsernameLen)
	case !usernamePattern.MatchString(username):
		return fmt.Errorf("%w: only letters, digits and underscores are allowed", ErrInvalidUsername)
	}
	return nil
}

// ValidatePassword checks that the password has at least MinPasswordLen
// characters and fits into bcrypt's input limit.
func ValidatePassword(password string) error {
	switch {
	case password == "":
		return fmt.Errorf("%w: password cannot be empty", ErrInvalidPassword)
	case utf8.RuneCountInString(password) < MinPasswordLen:
		return fmt.Errorf("%w: must be at least %d characters long", ErrInvalidPassword, MinPasswordLen)
	case len(password) > MaxPasswordBytes:
		return fmt.Errorf("%w: must not exceed %d bytes", ErrInvalidPassword, MaxPasswordBytes)
	}
	return nil
}
