package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/iudanet/bookkeeper/internal/client/books"
	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/internal/models"
	"github.com/iudanet/bookkeeper/internal/validation"
)

// RunAdd создает книгу. Незаполненные поля формы запрашиваются.
func (c *Cli) RunAdd(ctx context.Context, form validation.BookForm) error {
	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	c.io.Println("=== Add Book ===")
	c.io.Println()

	form, err := c.promptForm(form)
	if err != nil {
		return err
	}

	book, err := c.books.Create(ctx, form)
	if errors.Is(err, books.ErrDuplicateTitle) {
		return fmt.Errorf("book %q already exists", form.Title)
	}
	if models.IsKind(err, models.KindRemoteWrite) {
		// локальная запись уже создана, следующая сверка отправит ее
		c.io.Println("Saved locally, but the server write failed.")
		c.io.Println("Run 'bookkeeper sync' to retry.")
	}
	if err != nil {
		return fmt.Errorf("failed to add book: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Book added successfully!")
	c.io.Printf("ID: %d\n", book.ID)

	return nil
}

// RunUpdate заменяет книгу. Поля, не заданные флагами, берутся из текущей записи.
func (c *Cli) RunUpdate(ctx context.Context, id int64, form validation.BookForm) error {
	if err := c.requireAdmin(ctx); err != nil {
		return err
	}

	current, err := c.books.Get(ctx, id)
	if errors.Is(err, storage.ErrBookNotFound) {
		return fmt.Errorf("book not found with ID: %d", id)
	}
	if err != nil {
		return fmt.Errorf("failed to get book: %w", err)
	}

	if form.Title == "" {
		form.Title = current.Title
	}
	if form.Description == "" {
		form.Description = current.Description
	}
	if form.Image == "" {
		form.Image = current.Image
	}
	if form.Price == "" {
		form.Price = strconv.FormatFloat(current.Price, 'f', -1, 64)
	}

	_, err = c.books.Update(ctx, id, form)
	if models.IsKind(err, models.KindRemoteWrite) {
		c.io.Println("Updated locally, but the server write failed.")
		c.io.Println("Run 'bookkeeper sync' to retry.")
	}
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}

	c.io.Println("✓ Book updated successfully!")
	return nil
}

func (c *Cli) promptForm(form validation.BookForm) (validation.BookForm, error) {
	fields := []struct {
		prompt string
		value  *string
	}{
		{"Title: ", &form.Title},
		{"Description: ", &form.Description},
		{"Price: ", &form.Price},
		{"Image URL: ", &form.Image},
	}

	for _, f := range fields {
		if *f.value != "" {
			continue
		}
		v, err := c.io.ReadInput(f.prompt)
		if err != nil {
			return form, fmt.Errorf("failed to read %s: %w", f.prompt, err)
		}
		*f.value = v
	}

	return form, nil
}
