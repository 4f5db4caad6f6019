package get_availability

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Прошедшие даты допустимы: этот слой не выносит суждений о дате,
// шаблон раскрывается для любого календарного дня.
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.GranularityMinutes != 0 {
		if req.GranularityMinutes < domain.MinGranularityMinutes || req.GranularityMinutes > domain.MaxGranularityMinutes {
			return fmt.Errorf("%w: granularity must be between %d and %d minutes",
				ErrInvalidGranularity, domain.MinGranularityMinutes, domain.MaxGranularityMinutes)
		}
	}

	return nil
}
