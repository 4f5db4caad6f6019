package create_reservation

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: %s-%s", ErrInvalidTimeRange, req.StartTime, req.EndTime)
	}

	return nil
}

// validateWithinOperatingHours проверяет, что интервал лежит целиком хотя бы
// в одном рабочем интервале эффективного расписания дня
func validateWithinOperatingHours(day domain.DaySchedule, start, end types.TimeString) error {
	for _, interval := range day.Intervals {
		if interval.Contains(start, end) {
			return nil
		}
	}
	return ErrOutsideOperatingHours
}

// findConflict возвращает первое занимающее бронирование, пересекающее
// [start, end). Полуоткрытая семантика: бронирование, заканчивающееся ровно
// в start, не конфликтует.
func findConflict(reservations []*domain.Reservation, start, end types.TimeString) *domain.Reservation {
	for _, res := range reservations {
		if res.Occupies() && res.Overlaps(start, end) {
			return res
		}
	}
	return nil
}
