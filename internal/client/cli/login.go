package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/bookkeeper/internal/client/auth"
)

// RunLogin входит на сервер и сохраняет сессию.
// Пустой email запрашивается интерактивно.
func (c *Cli) RunLogin(ctx context.Context, email string) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	if email == "" {
		var err error
		email, err = c.io.ReadInput("Email: ")
		if err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	session, err := c.auth.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Email: %s\n", session.Email)
	c.io.Printf("Role:  %s\n", session.Role)
	c.io.Printf("Token expires: %s\n", time.Unix(session.ExpiresAt, 0).Format(time.RFC3339))

	return nil
}

// RunLogout удаляет сохраненную сессию
func (c *Cli) RunLogout(ctx context.Context) error {
	err := c.auth.Logout(ctx)
	if errors.Is(err, auth.ErrNotAuthenticated) {
		c.io.Println("Not logged in.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logged out.")
	return nil
}
