package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/iudanet/bookkeeper/internal/models"
)

// ErrNonNumericID id записи сервера не целое число (json-server v1 выдает id вида "a7f3")
var ErrNonNumericID = errors.New("book id is not numeric")

// BookID идентификатор книги на сервере.
// json-server отдает id то числом, то строкой, поэтому принимаем оба варианта.
type BookID int64

// UnmarshalJSON принимает 12, "12" и null
func (id *BookID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}

	// Строковое представление
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid book id: %w", err)
		}
		if s == "" {
			*id = 0
			return nil
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("book id %q is not numeric: %w", s, err)
		}
		*id = BookID(v)
		return nil
	}

	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid book id: %w", err)
	}
	*id = BookID(v)
	return nil
}

// Book представляет книгу в формате обмена с сервером
type Book struct {
	Title       string  `json:"title"`        // Title название книги
	Description string  `json:"description"`  // Description описание
	Image       string  `json:"image"`        // Image URL обложки
	ID          BookID  `json:"id,omitempty"` // ID опционален при создании
	Price       float64 `json:"price"`        // Price цена
}

// BookFromModel конвертирует доменную модель в API формат
func BookFromModel(b models.Book) Book {
	return Book{
		ID:          BookID(b.ID),
		Title:       b.Title,
		Description: b.Description,
		Price:       b.Price,
		Image:       b.Image,
	}
}

// ToModel конвертирует API формат в доменную модель
func (b Book) ToModel() models.Book {
	return models.Book{
		ID:          int64(b.ID),
		Title:       b.Title,
		Description: b.Description,
		Price:       b.Price,
		Image:       b.Image,
	}
}

// DecodeBook декодирует одну запись сервера. Если id не число, остальные поля
// заполнены, ID равен 0, а ошибка оборачивает ErrNonNumericID.
func DecodeBook(data []byte) (Book, error) {
	var raw struct {
		Book
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Book{}, fmt.Errorf("invalid book: %w", err)
	}

	book := raw.Book
	if err := book.ID.UnmarshalJSON(raw.ID); err != nil {
		book.ID = 0
		return book, fmt.Errorf("%w: %s", ErrNonNumericID, raw.ID)
	}
	return book, nil
}

// ListReport записи списка, которые не удалось разобрать полностью
type ListReport struct {
	NonNumericID int // оставлены в списке с ID 0
	Malformed    int // пропущены
}

// DecodeBookList декодирует массив записей сервера.
// Одна плохая запись не отбрасывает весь список.
func DecodeBookList(data []byte) ([]Book, ListReport, error) {
	var report ListReport

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, report, fmt.Errorf("invalid book list: %w", err)
	}

	books := make([]Book, 0, len(items))
	for _, item := range items {
		book, err := DecodeBook(item)
		switch {
		case errors.Is(err, ErrNonNumericID):
			report.NonNumericID++
		case err != nil:
			report.Malformed++
			continue
		}
		books = append(books, book)
	}

	return books, report, nil
}
