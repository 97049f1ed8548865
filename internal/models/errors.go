package models

import (
	"errors"
	"fmt"
)

// ErrorKind тип ошибки хранилища или удаленного API.
// Позволяет вызывающему коду ветвиться по виду ошибки, а не по тексту.
type ErrorKind int

const (
	// KindStorageInit локальная таблица не создана или хранилище закрыто
	KindStorageInit ErrorKind = iota + 1
	// KindStorageWrite не прошла валидация или запись в локальное хранилище
	KindStorageWrite
	// KindRemoteWrite сервер ответил неуспешным статусом на create/update/delete
	KindRemoteWrite
)

// String возвращает имя вида ошибки
func (k ErrorKind) String() string {
	switch k {
	case KindStorageInit:
		return "StorageInitError"
	case KindStorageWrite:
		return "StorageWriteError"
	case KindRemoteWrite:
		return "RemoteWriteError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// KindError ошибка с тегом вида, сообщением и исходной причиной
type KindError struct {
	Err     error
	Message string
	Kind    ErrorKind
}

// NewKindError создает ошибку указанного вида
func NewKindError(kind ErrorKind, message string, cause error) *KindError {
	return &KindError{
		Kind:    kind,
		Message: message,
		Err:     cause,
	}
}

// Error реализует интерфейс error
func (e *KindError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap возвращает исходную причину
func (e *KindError) Unwrap() error {
	return e.Err
}

// KindOf извлекает вид ошибки из цепочки.
// Возвращает false, если в цепочке нет *KindError.
func KindOf(err error) (ErrorKind, bool) {
	var kerr *KindError
	if errors.As(err, &kerr) {
		return kerr.Kind, true
	}
	return 0, false
}

// IsKind проверяет, что в цепочке ошибок есть ошибка указанного вида
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
