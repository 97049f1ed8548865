package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/models"
)

// RunDelete удаляет книгу локально и на сервере.
// Без yes запрашивается подтверждение.
func (c *Cli) RunDelete(ctx context.Context, id int64, yes bool) error {
	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	book, err := c.books.Get(ctx, id)
	if errors.Is(err, storage.ErrBookNotFound) {
		return fmt.Errorf("book not found with ID: %d", id)
	}
	if err != nil {
		return fmt.Errorf("failed to get book: %w", err)
	}

	c.io.Println("About to delete:")
	c.io.Printf("  Title: %s\n", book.Title)
	c.io.Printf("  ID:    %d\n", book.ID)
	c.io.Println()

	if !yes {
		confirm, err := c.io.ReadInput("Are you sure you want to delete this book? (yes/no): ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		confirm = strings.ToLower(confirm)
		if confirm != "yes" && confirm != "y" {
			c.io.Println("Deletion cancelled.")
			return nil
		}
	}

	err = c.books.Delete(ctx, id)
	if models.IsKind(err, models.KindRemoteWrite) {
		c.io.Println("Deleted locally, but the server delete failed.")
	}
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	c.io.Println("✓ Book deleted successfully!")
	return nil
}
