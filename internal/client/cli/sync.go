package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/bookkeeper/internal/client/sync"
)

// RunSync выполняет один проход сверки и печатает счетчики
func (c *Cli) RunSync(ctx context.Context) error {
	if err := c.requireSession(ctx); err != nil {
		return err
	}

	c.io.Println("Starting synchronization with server...")

	result, err := c.reconciler.Sync(ctx)
	if errors.Is(err, sync.ErrPassInProgress) {
		return fmt.Errorf("another synchronization is running: %w", err)
	}
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	return c.render("sync", syncResultTemplate, result)
}
