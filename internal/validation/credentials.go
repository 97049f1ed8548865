package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// EmailPattern упрощенная проверка формата email: local@domain.tld
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 6
	// MaxEmailLen максимальная длина email
	MaxEmailLen = 254
)

// ValidateEmail проверяет, что email непустой и похож на адрес
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email cannot be empty", ErrInvalidInput)
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("%w: email must not exceed %d characters", ErrInvalidInput, MaxEmailLen)
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("%w: email %q is not a valid address", ErrInvalidInput, email)
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", ErrInvalidInput)
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters long", ErrInvalidInput, MinPasswordLen)
	}

	return nil
}
