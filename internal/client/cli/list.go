package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/bookkeeper/internal/client/storage"
)

// RunList выполняет сверку и печатает объединенный список
func (c *Cli) RunList(ctx context.Context) error {
	if err := c.requireSession(ctx); err != nil {
		return err
	}

	list, err := c.books.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list books: %w", err)
	}

	return c.render("books", booksListTemplate, list)
}

// RunGet печатает одну книгу
func (c *Cli) RunGet(ctx context.Context, id int64) error {
	if err := c.requireSession(ctx); err != nil {
		return err
	}

	book, err := c.books.Get(ctx, id)
	if errors.Is(err, storage.ErrBookNotFound) {
		return fmt.Errorf("book not found with ID: %d", id)
	}
	if err != nil {
		return fmt.Errorf("failed to get book: %w", err)
	}

	return c.render("book", bookTemplate, book)
}
