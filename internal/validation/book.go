package validation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iudanet/bookkeeper/internal/models"
)

// ErrInvalidInput ошибка пользовательского ввода
var ErrInvalidInput = errors.New("invalid input")

// BookForm сырые значения формы книги в том виде, как их ввел пользователь
type BookForm struct {
	Title       string
	Description string
	Price       string
	Image       string
}

// ParseBookForm проверяет форму и возвращает книгу без ID.
// Все поля обязательны, цена должна быть числом >= 0.
func ParseBookForm(form BookForm) (models.Book, error) {
	book := models.Book{
		Title:       strings.TrimSpace(form.Title),
		Description: strings.TrimSpace(form.Description),
		Image:       strings.TrimSpace(form.Image),
	}

	var missing []string
	if book.Title == "" {
		missing = append(missing, "title")
	}
	if book.Description == "" {
		missing = append(missing, "description")
	}
	priceRaw := strings.TrimSpace(form.Price)
	if priceRaw == "" {
		missing = append(missing, "price")
	}
	if book.Image == "" {
		missing = append(missing, "image")
	}
	if len(missing) > 0 {
		return models.Book{}, fmt.Errorf("%w: required fields are empty: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}

	price, err := ParsePrice(priceRaw)
	if err != nil {
		return models.Book{}, err
	}
	book.Price = price

	return book, nil
}

// ParsePrice разбирает цену: конечное число >= 0
func ParsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: price %q is not a number", ErrInvalidInput, raw)
	}

	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("%w: price %q is not a finite number", ErrInvalidInput, raw)
	}

	if price < 0 {
		return 0, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	return price, nil
}
