package models

import (
	"math"
	"strings"
)

// Book представляет запись о книге.
// Title является естественным ключом при слиянии локального кэша с сервером:
// ID назначаются каждым хранилищем независимо и могут расходиться.
type Book struct {
	Title       string  `json:"title"`       // Title название книги, ключ дедупликации
	Description string  `json:"description"` // Description описание
	Image       string  `json:"image"`       // Image URL обложки или непрозрачная ссылка
	ID          int64   `json:"id"`          // ID идентификатор в конкретном хранилище
	Price       float64 `json:"price"`       // Price цена, >= 0
}

// Validate проверяет обязательные поля записи.
// ID не проверяется: при вставке его назначает хранилище.
func (b *Book) Validate() error {
	if b == nil {
		return NewKindError(KindStorageWrite, "book is nil", nil)
	}

	var missing []string
	if strings.TrimSpace(b.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(b.Description) == "" {
		missing = append(missing, "description")
	}
	if math.IsNaN(b.Price) || math.IsInf(b.Price, 0) || b.Price < 0 {
		missing = append(missing, "price")
	}
	if strings.TrimSpace(b.Image) == "" {
		missing = append(missing, "image")
	}

	if len(missing) > 0 {
		return NewKindError(KindStorageWrite, "incomplete book data: "+strings.Join(missing, ", "), nil)
	}

	return nil
}

// SameContent сравнивает поля, которые участвуют в diff фазе синхронизации:
// description, price и image. Title и ID не сравниваются.
func (b Book) SameContent(other Book) bool {
	return b.Description == other.Description &&
		b.Price == other.Price &&
		b.Image == other.Image
}

// Role роль пользователя, сохраняемая после входа
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValid возвращает true для известных ролей
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}
