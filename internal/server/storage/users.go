package storage

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/bookkeeper/internal/models"
)

//go:generate moq -out users_mock.go . UserStorage

// UserStorage defines interface for looking up accounts
type UserStorage interface {
	// GetUserByEmail retrieves user by email (case-insensitive)
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// DemoAccount учетная запись демо справочника
type DemoAccount struct {
	Email    string
	Password string
	Role     models.Role
}

// DemoAccounts зашитые учетные записи сервера
var DemoAccounts = []DemoAccount{
	{Email: "admin@gmail.com", Password: "admin123", Role: models.RoleAdmin},
	{Email: "user@gmail.com", Password: "user123", Role: models.RoleUser},
}

// Directory неизменяемый справочник пользователей в памяти
type Directory struct {
	users map[string]models.User
}

// NewDirectory хеширует пароли аккаунтов bcrypt'ом.
// cost <= 0 означает bcrypt.DefaultCost.
func NewDirectory(accounts []DemoAccount, cost int) (*Directory, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}

	d := &Directory{users: make(map[string]models.User, len(accounts))}
	for _, acc := range accounts {
		if !acc.Role.IsValid() {
			return nil, fmt.Errorf("account %s: unknown role %q", acc.Email, acc.Role)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(acc.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", acc.Email, err)
		}

		email := normalizeEmail(acc.Email)
		d.users[email] = models.User{
			Email:        email,
			PasswordHash: hash,
			Role:         acc.Role,
		}
	}

	return d, nil
}

// GetUserByEmail retrieves user by email
func (d *Directory) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := d.users[normalizeEmail(email)]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
