package get_availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модель запроса на получение доступности комнаты
type Request struct {
	RoomID int64     // ID комнаты
	Date   time.Time // Дата, на которую запрашивается доступность (без времени)

	// GranularityMinutes гранулярность отображения (например, 60 для
	// почасовых слотов). 0 - вернуть сырые интервалы шаблона,
	// разбитые только по границам бронирований.
	GranularityMinutes int
}

// Response модель ответа с доступностью по слотам
// Slots упорядочены по времени начала.
type Response struct {
	RoomID int64
	Date   time.Time
	Slots  []domain.Slot
}
