package auth

import "errors"

var (
	// ErrNotAuthenticated сессии нет или срок токена истек
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrForbidden операция доступна только администратору
	ErrForbidden = errors.New("admin role required")
)
