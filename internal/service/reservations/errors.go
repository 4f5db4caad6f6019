package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrRoomNotFound возвращается, когда комната бронирования не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на переход статуса
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	// (подтверждение не-pending бронирования, отмена отклоненного и т.п.)
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrCancellationWindow возвращается при отмене подтвержденного
	// бронирования менее чем за сутки до начала
	ErrCancellationWindow = errors.New("cancellation window has passed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
