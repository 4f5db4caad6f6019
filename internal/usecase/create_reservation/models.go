package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	RoomID    int64            // ID комнаты
	UserID    int64            // ID арендатора
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Начало интервала, включительно
	EndTime   types.TimeString // Конец интервала, исключительно
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	RoomID     int64
	UserID     int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Status     string
	TotalPrice float64

	// Денормализованные данные
	RoomName     string
	BuildingName string

	CreatedAt time.Time
	UpdatedAt time.Time
}
