package create_reservation

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrOutsideOperatingHours возвращается, когда запрошенный интервал
	// не лежит целиком ни в одном рабочем интервале эффективного расписания
	ErrOutsideOperatingHours = errors.New("create_reservation: interval is outside operating hours")

	// ErrTimeConflict возвращается, когда интервал пересекается с существующим
	// занимающим бронированием (pending или confirmed)
	ErrTimeConflict = errors.New("create_reservation: interval conflicts with an existing reservation")

	// ErrInvalidTimeRange возвращается при некорректном интервале (start >= end)
	ErrInvalidTimeRange = errors.New("create_reservation: invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
