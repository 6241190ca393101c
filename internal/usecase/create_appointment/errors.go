package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrServiceInactive возвращается при попытке записаться на неактивную услугу
	ErrServiceInactive = errors.New("create_appointment: service is not active")

	// ErrDateInPast возвращается при попытке записи на прошедшую дату
	ErrDateInPast = errors.New("create_appointment: date is in the past")

	// ErrDateBlocked возвращается, когда дата заблокирована бизнесом
	ErrDateBlocked = errors.New("create_appointment: date is blocked")

	// ErrBusinessClosed возвращается, когда бизнес закрыт в указанный день
	ErrBusinessClosed = errors.New("create_appointment: business is closed on this date")

	// ErrOutsideWorkingHours возвращается, когда слот выходит за рабочие часы
	ErrOutsideWorkingHours = errors.New("create_appointment: slot is outside working hours")

	// ErrSlotConflict возвращается при двойном бронировании: слот пересекается
	// с активной записью. Запись не создается, частичного состояния нет.
	ErrSlotConflict = errors.New("create_appointment: slot conflicts with an existing appointment")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
