package apperrors

import "errors"

// Виды доменных ошибок сервисного слоя. Всё, что не оборачивает один из
// них, считается инфраструктурной ошибкой и пригодно для повтора вызова.
var (
	ErrUnauthorized = errors.New("user is not authorized")
	ErrForbidden    = errors.New("action is forbidden")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource already exists")
)

// IsDomain сообщает, относится ли ошибка к одному из доменных видов.
func IsDomain(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict)
}
