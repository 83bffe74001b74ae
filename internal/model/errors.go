package model

import "errors"

// Ошибки доменного уровня. Хранилище и сервис возвращают именно их,
// транспорт переводит в HTTP-статусы.
var (
	// ErrLinkNotFound — живой ссылки с таким кодом нет (в том числе после ленивого
	// удаления по истечении срока).
	ErrLinkNotFound = errors.New("link not found")

	// ErrDuplicateAlias — пользовательский алиас уже занят живой ссылкой.
	ErrDuplicateAlias = errors.New("custom alias already exists")
)

// ValidationError — нарушение формата входных данных или бизнес-правила
// (например, срок истечения в прошлом). Не повторяется, клиентская ошибка.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError создаёт ValidationError с указанной причиной.
func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsValidation сообщает, является ли ошибка ошибкой валидации.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
