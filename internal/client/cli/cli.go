package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/iudanet/bookkeeper/internal/client/auth"
	"github.com/iudanet/bookkeeper/internal/client/books"
	"github.com/iudanet/bookkeeper/internal/client/iocli"
	"github.com/iudanet/bookkeeper/internal/client/sync"
)

// Cli команды клиента поверх сервисов сессии
type Cli struct {
	io         iocli.IO
	auth       auth.Service
	books      books.Service
	reconciler sync.Service
}

func New(io iocli.IO, authService auth.Service, booksService books.Service, reconciler sync.Service) *Cli {
	return &Cli{
		io:         io,
		auth:       authService,
		books:      booksService,
		reconciler: reconciler,
	}
}

// ParseID разбирает id книги из аргумента команды
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid book id %q", raw)
	}
	return id, nil
}

// render выполняет шаблон в вывод команды
func (c *Cli) render(name, text string, data any) error {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	if err := tmpl.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

// requireAdmin проверяет роль перед изменяющей командой
func (c *Cli) requireAdmin(ctx context.Context) error {
	_, err := c.auth.RequireAdmin(ctx)
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		return fmt.Errorf("%w. Please run 'bookkeeper login' first", err)
	case errors.Is(err, auth.ErrForbidden):
		return fmt.Errorf("this command is available to admin users only: %w", err)
	case err != nil:
		return fmt.Errorf("failed to check session: %w", err)
	}
	return nil
}

// requireSession проверяет, что пользователь вошел
func (c *Cli) requireSession(ctx context.Context) error {
	_, err := c.auth.Current(ctx)
	if errors.Is(err, auth.ErrNotAuthenticated) {
		return fmt.Errorf("%w. Please run 'bookkeeper login' first", err)
	}
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}
	return nil
}
