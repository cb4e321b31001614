package apperr

import (
	"errors"
	"fmt"
)

// Категории ошибок ядра. Обработчики превращают их в HTTP-статусы через errors.Is.
var (
	ErrValidation = errors.New("некорректные данные запроса")
	ErrNotFound   = errors.New("запись не найдена")
	ErrForbidden  = errors.New("доступ запрещен")
	ErrDependency = errors.New("ошибка внешней зависимости")
)

func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

func NotFound(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrNotFound}, args...)...)
}

func Forbidden(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrForbidden}, args...)...)
}

func Dependency(err error, context string) error {
	return fmt.Errorf("%w: %s: %v", ErrDependency, context, err)
}
