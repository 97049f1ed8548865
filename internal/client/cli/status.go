package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/bookkeeper/internal/client/auth"
)

// RunStatus показывает сессию и итог последней сверки
func (c *Cli) RunStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	session, err := c.auth.Current(ctx)
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		c.io.Println("Status: Not authenticated")
		c.io.Println("Run 'bookkeeper login' to authenticate.")
	case err != nil:
		return fmt.Errorf("failed to check authentication: %w", err)
	default:
		c.io.Println("Status: Authenticated")
		c.io.Printf("Email: %s\n", session.Email)
		c.io.Printf("Role:  %s\n", session.Role)
		c.io.Printf("Token expires: %s\n", time.Unix(session.ExpiresAt, 0).Format(time.RFC3339))
	}

	info, err := c.reconciler.LastSync(ctx)
	if err != nil {
		// статус сверки не критичен
		c.io.Printf("\nWarning: failed to read last sync: %v\n", err)
		return nil
	}

	c.io.Println()
	if info.FinishedAt.IsZero() {
		c.io.Println("Never synchronized. Run 'bookkeeper sync'.")
		return nil
	}

	c.io.Printf("Last sync: %s (pass %s)\n", info.FinishedAt.Format(time.RFC3339), info.PassID)
	c.io.Printf("Pushed %d, pulled %d, updated %d, failed %d\n", info.Pushed, info.Pulled, info.Updated, info.Failed)

	return nil
}
