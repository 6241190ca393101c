package availability

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правила доступности не настроены
	ErrRuleNotFound = errors.New("availability: rule not found")

	// ErrInvalidRule возвращается при некорректных правилах
	ErrInvalidRule = errors.New("availability: invalid rule")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
