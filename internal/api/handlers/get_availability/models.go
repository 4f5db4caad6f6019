package get_availability

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	getAvailability "github.com/m04kA/SMC-ReservationService/internal/usecase/get_availability"
)

// SlotResponse HTTP модель одного слота доступности
type SlotResponse struct {
	Start  string `json:"start"`  // "09:00"
	End    string `json:"end"`    // "10:00"
	Status string `json:"status"` // "available" | "pending" | "occupied"
}

// AvailabilityResponse HTTP модель ответа с доступностью комнаты
type AvailabilityResponse struct {
	RoomID int64          `json:"roomId"`
	Date   string         `json:"date"` // "2026-03-15"
	Slots  []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			Start:  slot.Start.String(),
			End:    slot.End.String(),
			Status: string(slot.Status),
		})
	}

	return &AvailabilityResponse{
		RoomID: resp.RoomID,
		Date:   resp.Date.Format(domain.DateFormat),
		Slots:  slots,
	}
}
