package models

import "fmt"

// ValidationError описывает недопустимый параметр запроса с указанием поля.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"reason"`
}

// NewValidationError создает ошибку валидации для конкретного поля.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// Реализация метода Error() для удовлетворения интерфейса error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
