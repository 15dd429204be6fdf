package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrClientExists возвращается при попытке сохранить клиента с уже занятым телефоном.
	ErrClientExists = errors.New("client with this phone already exists")
	// ErrClientNotFound возвращается, если клиент с указанным телефоном не найден в хранилище.
	ErrClientNotFound = errors.New("client not found")
)

// ValidationError описывает нарушение инварианта поля при конструировании сущности.
// Ошибка поднимается сразу при создании значения, до любого обращения к хранилищу.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation проверяет, является ли ошибка ошибкой валидации.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
