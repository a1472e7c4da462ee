package service

import (
	"Nuremento/internal/clock"
	"errors"
	"fmt"
)

// ErrNotFound - записи нет или она принадлежит другому владельцу. Эти случаи не различаются.
var ErrNotFound = errors.New("not found")

// ErrStorageDisabled - фото прислали, но хранилище объектов не настроено.
var ErrStorageDisabled = errors.New("image uploads are not configured")

// ValidationError описывает некорректный ввод пользователя.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// LockedError возвращается при попытке открыть капсулу раньше срока.
type LockedError struct {
	OpenOn clock.Day
}

func (e *LockedError) Error() string {
	return "time capsule is locked until " + e.OpenOn.String()
}
